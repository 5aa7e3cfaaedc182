package web

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"threadboard/internal/comment"
	"threadboard/internal/config"
	"threadboard/internal/database"
	"threadboard/internal/identity"
	"threadboard/internal/listing"
	"threadboard/internal/logger"
	"threadboard/internal/thread"
	"threadboard/internal/web/middleware"
	"threadboard/internal/web/renderer"
)

// Server holds the dependencies for the web server.
type Server struct {
	cfg         *config.Config
	threadRepo  *thread.Repository
	commentRepo *comment.Repository
	identity    *identity.Manager
	preparer    *listing.Preparer
	templates   *renderer.Templates
	limiter     *middleware.RateLimiter
	handler     http.Handler
}

// NewServer creates a new server with the given dependencies.
func NewServer(db *sql.DB, cfg *config.Config, templates *renderer.Templates) (*Server, error) {
	ident, err := identity.NewManager(cfg.Session.Key, identity.Options{
		Name:   cfg.Session.Name,
		Secure: cfg.Session.Secure,
		MaxAge: cfg.Session.MaxAge,
	})
	if err != nil {
		return nil, err
	}

	dialect := database.Dialect(cfg.Database.Driver)
	s := &Server{
		cfg:         cfg,
		threadRepo:  thread.NewRepository(db, dialect),
		commentRepo: comment.NewRepository(db, dialect),
		identity:    ident,
		preparer:    listing.NewPreparer(cfg.Limits()),
		templates:   templates,
	}
	if cfg.RateLimit.RPS > 0 {
		s.limiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}
	s.handler = s.routes()
	return s, nil
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.HTTP.Addr,
		Handler:      s,
		ReadTimeout:  s.cfg.HTTP.ReadTimeout,
		WriteTimeout: s.cfg.HTTP.WriteTimeout,
	}

	if s.limiter != nil {
		go s.limiter.Run(ctx, time.Minute)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("starting server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("error serving http: %w", err)
	case <-ctx.Done():
	}

	logger.Log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
