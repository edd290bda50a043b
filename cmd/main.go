package main

import (
	"context"
	"freeread/internal/books"
	"freeread/internal/config"
	"freeread/internal/curator"
	"freeread/internal/database"
	"freeread/internal/library"
	"freeread/internal/pool"
	"freeread/internal/quoter"
	"freeread/internal/ratelimiter"
	"freeread/internal/scheduler"
	"freeread/internal/server"
	"freeread/internal/session"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.LoadConfig()

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)

	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.New(ctx, cfg.DBPath, log)
	if err != nil {
		log.ErrorContext(ctx, "Failed to initialize db",
			"error", err,
			"dbPath", cfg.DBPath)

		return
	}
	defer func() {
		if err = db.Close(); err != nil {
			log.ErrorContext(ctx, "Failed to close db",
				"error", err,
				"dbPath", cfg.DBPath)
		}
	}()
	log.InfoContext(ctx, "DB is initialized",
		"dbPath", cfg.DBPath)

	lib := library.Default()
	local := pool.NewBuilder().Build(lib.Passages(), lib.Editorial())
	log.InfoContext(ctx, "Local pool is built",
		"passageCount", len(lib.Passages()),
		"itemCount", len(local))

	picker := quoter.NewPicker(initOpenAIQuoter(ctx, cfg.OpenAIAPIKey, log), log)
	fetcher := books.NewFetcher(
		initBooksClient(ctx, cfg, log),
		db,
		picker,
		local,
		books.Options{MaxPages: cfg.MaxPages, MaxBooks: cfg.MaxBooks},
		log,
	)

	sess := session.New(ctx, local, db, session.Options{
		BatchSize:         cfg.FeedBatchSize,
		PrefetchThreshold: cfg.FeedPrefetchThreshold,
		Seed:              cfg.FeedSeed,
	}, log)
	cur := curator.New(fetcher, sess, local, log)

	go func() {
		cur.Refresh(ctx)
	}()

	sched := scheduler.New(ctx, cfg.RefreshSpec, cur, log)

	if err = sched.Start(); err != nil {
		log.ErrorContext(ctx, "Failed to start scheduler",
			"error", err,
			"spec", sched.Spec(),
			"timezone", time.FixedZone(scheduler.Timezone, scheduler.TimezoneOffsetSeconds).String())

		return
	}
	defer sched.Stop()
	log.InfoContext(ctx, "Scheduler is started",
		"spec", sched.Spec(),
		"timezone", time.FixedZone(scheduler.Timezone, scheduler.TimezoneOffsetSeconds).String())

	srv := server.New(cfg.Addr, sess, cur, lib, cfg.FeedBatchSize, log)

	go func() {
		if err := srv.Start(); err != nil {
			log.ErrorContext(ctx, "Failed to serve HTTP",
				"error", err,
				"addr", srv.Addr())
			cancel()
		}
	}()
	log.InfoContext(ctx, "Server is started",
		"addr", srv.Addr())

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-c:
		log.InfoContext(ctx, "Shutdown signal is received",
			"signal", sig.String())
	case <-ctx.Done():
	}
	cancel()

	log.InfoContext(ctx, "Exiting...",
		"uptimeSeconds", time.Since(start).Seconds())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(shutdownCtx, "Failed to shut down server",
			"error", err)
	}
	log.InfoContext(shutdownCtx, "Server is stopped",
		"uptimeSeconds", time.Since(start).Seconds())
}

func initBooksClient(ctx context.Context, cfg config.Config, log *slog.Logger) *books.Client {
	if !cfg.RemoteEnabled {
		log.WarnContext(ctx, "Remote stories are disabled so cache or local pool will be used",
			"envVar", "REMOTE_ENABLED")

		return nil
	}

	limiter := ratelimiter.New(cfg.BooksRequestsPerSecond, 0, log)
	client := books.NewClient(cfg.BooksAPIURL, limiter, log)

	log.InfoContext(ctx, "Books client is initialized",
		"booksAPIURL", cfg.BooksAPIURL,
		"requestsPerSecond", cfg.BooksRequestsPerSecond)

	return client
}

func initOpenAIQuoter(ctx context.Context, apiKey string, log *slog.Logger) quoter.Quoter {
	if apiKey == "" {
		log.WarnContext(ctx, "OPENAI_API_KEY is missing so fallback will be used",
			"envVar", "OPENAI_API_KEY")

		return nil
	}

	q, err := quoter.NewOpenAIQuoter(apiKey)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create OpenAI quoter so fallback will be used",
			"error", err,
			"envVar", "OPENAI_API_KEY")

		return nil
	}

	log.InfoContext(ctx, "OpenAI quoter is initialized",
		"provider", "openai")

	return q
}
