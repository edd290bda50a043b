package server

import (
	"context"
	"errors"
	"fmt"
	"freeread/internal/curator"
	"freeread/internal/library"
	"freeread/internal/session"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	readHeaderTimeout = 10 * time.Second
	requestTimeout    = 2 * time.Minute
	maxBatchSize      = 100
	maxBodyBytes      = 1 << 16
)

type Refresher interface {
	Refresh(ctx context.Context) curator.Result
}

// Server exposes the feed session over HTTP.
type Server struct {
	session    *session.Session
	refresher  Refresher
	library    *library.Library
	batchSize  int
	router     chi.Router
	httpServer *http.Server
	log        *slog.Logger
}

func New(
	addr string,
	sess *session.Session,
	refresher Refresher,
	lib *library.Library,
	batchSize int,
	log *slog.Logger,
) *Server {
	if batchSize <= 0 {
		batchSize = session.DefaultBatchSize
	}

	s := &Server{
		session:   sess,
		refresher: refresher,
		library:   lib,
		batchSize: min(batchSize, maxBatchSize),
		log:       log,
	}
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/feed", s.handleNextBatch)
		r.Post("/feed/seen", s.handleSeen)
		r.Get("/feed/categories", s.handleGetCategories)
		r.Put("/feed/categories", s.handleSetCategories)

		r.Get("/items/{id}", s.handleItem)
		r.Post("/items/{id}/like", s.handleToggleLike)
		r.Get("/items/{id}/share", s.handleShare)
		r.Get("/likes", s.handleLikes)

		r.Get("/passages", s.handlePassages)
		r.Get("/passages/{id}", s.handlePassage)

		r.Post("/refresh", s.handleRefresh)
	})

	s.router = r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	return nil
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.InfoContext(r.Context(), "Request is served",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"requestID", middleware.GetReqID(r.Context()),
				"durationSeconds", time.Since(start).Seconds())
		})
	}
}
