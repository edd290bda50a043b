package curator

import (
	"context"
	"freeread/internal/books"
	"freeread/internal/domain"
	"freeread/internal/pool"
	"freeread/internal/session"
	"log/slog"
	"sync"
	"time"
)

type StoryFetcher interface {
	FetchStories(ctx context.Context) books.Stories
}

type Result struct {
	Origin books.Origin `json:"origin"`
	Count  int          `json:"count"`
}

// Curator refreshes the session pool from remote stories.
type Curator struct {
	mu      sync.Mutex
	fetcher StoryFetcher
	session *session.Session
	local   []domain.FeedItem
	log     *slog.Logger
}

func New(
	fetcher StoryFetcher,
	sess *session.Session,
	local []domain.FeedItem,
	log *slog.Logger,
) *Curator {
	return &Curator{
		fetcher: fetcher,
		session: sess,
		local:   local,
		log:     log,
	}
}

// Refresh fetches stories, merges them with the local pool and swaps the
// session pool. Concurrent calls run one after another.
func (c *Curator) Refresh(ctx context.Context) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	stories := c.fetcher.FetchStories(ctx)

	if err := ctx.Err(); err != nil {
		c.log.WarnContext(ctx, "Refresh is canceled so current pool will be kept",
			"error", err,
			"origin", stories.Origin,
			"fetchedCount", len(stories.Items))

		return Result{Origin: stories.Origin}
	}

	items := stories.Items
	if stories.Origin != books.OriginLocal {
		items = pool.Merge(stories.Items, c.local, pool.MinRemoteItems, pool.MaxPoolItems)
	}

	if len(items) == 0 {
		c.log.WarnContext(ctx, "Refresh produced no stories so current pool will be kept",
			"origin", stories.Origin)

		return Result{Origin: stories.Origin}
	}

	c.session.SetPool(items)

	c.log.InfoContext(ctx, "Feed pool is refreshed",
		"origin", stories.Origin,
		"fetchedCount", len(stories.Items),
		"poolCount", len(items),
		"durationSeconds", time.Since(start).Seconds())

	return Result{Origin: stories.Origin, Count: len(items)}
}
