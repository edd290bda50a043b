package scheduler

import (
	"context"
	"freeread/internal/curator"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	DefaultRefreshSpec    = "0 */6 * * *"
	Timezone              = "UTC"
	TimezoneOffsetSeconds = 0
	refreshTimeout        = 10 * time.Minute
)

type Refresher interface {
	Refresh(ctx context.Context) curator.Result
}

type Scheduler struct {
	ctx       context.Context
	cron      *cron.Cron
	spec      string
	refresher Refresher
	log       *slog.Logger
}

func New(ctx context.Context, spec string, refresher Refresher, log *slog.Logger) *Scheduler {
	c := cron.New(cron.WithLocation(time.FixedZone(Timezone, TimezoneOffsetSeconds)))

	if spec == "" {
		spec = DefaultRefreshSpec
	}

	return &Scheduler{
		ctx:       ctx,
		cron:      c,
		spec:      spec,
		refresher: refresher,
		log:       log,
	}
}

func (s *Scheduler) Spec() string {
	return s.spec
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.refresh); err != nil {
		return err
	}

	s.cron.Start()

	return nil
}

// Stop stops the cron and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(s.ctx, refreshTimeout)
	defer cancel()

	select {
	case <-ctx.Done():
		s.log.InfoContext(ctx, "Scheduler context is done",
			"error", ctx.Err())
		return
	default:
	}

	result := s.refresher.Refresh(ctx)

	s.log.InfoContext(ctx, "Scheduled refresh is done",
		"origin", result.Origin,
		"count", result.Count)
}
