package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/cirocosta/todolists/internal/api"
	"github.com/cirocosta/todolists/internal/config"
	"github.com/cirocosta/todolists/internal/repository"
	"github.com/cirocosta/todolists/internal/service"
)

// Server owns the store and the HTTP server for one process lifetime
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *repository.InMemoryStore
	http   *http.Server
}

// NewServer constructs the store, seeds it when configured, and builds the
// HTTP server around the API router.
func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...repository.StoreOption) (*Server, error) {
	store := repository.NewInMemoryStore(opts...)

	if path := cfg.Store.SeedPath; path != "" {
		seed, err := repository.LoadSeed(path)
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		if err := store.Seed(ctx, seed); err != nil {
			return nil, fmt.Errorf("app: seed %s: %w", path, err)
		}

		todos, lists := store.Counts()
		logger.Info("store seeded",
			slog.String("path", path),
			slog.Int("todos", todos),
			slog.Int("lists", lists),
		)
	}

	handler := api.NewRouter(
		service.NewTodoService(store),
		service.NewListService(store),
		api.WithLogger(logger),
		api.WithAllowedOrigins(cfg.CORS.Origins()...),
		api.WithStats(store),
	)

	return &Server{
		cfg:    cfg,
		logger: logger,
		store:  store,
		http: &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
			ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
		},
	}, nil
}

// Handler returns the HTTP handler serving the API
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Store returns the backing store
func (s *Server) Store() *repository.InMemoryStore {
	return s.store
}

// ListenAndServe listens on the configured address and serves until ctx is
// done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("app: listen %s: %w", s.http.Addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", slog.String("addr", ln.Addr().String()))
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("app: serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("app: serve: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// Run loads configuration from path, then serves until ctx is done.
// A non-empty addr overrides the configured listen address.
func Run(ctx context.Context, path, addr string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	logger := NewLogger(cfg.Log, logOutput)
	logger.Info("starting application",
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr),
	)

	srv, err := NewServer(ctx, cfg, logger)
	if err != nil {
		return err
	}

	return srv.ListenAndServe(ctx)
}
