package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/artpar/menud/internal/shell/api"
	"github.com/artpar/menud/internal/shell/store"
)

// =============================================================================
// Exit Codes
// =============================================================================

const (
	ExitSuccess         = 0
	ExitConfigError     = 1
	ExitStoreError      = 2
	ExitHTTPServerError = 3
)

// =============================================================================
// Server Errors
// =============================================================================

// ServerError represents a server lifecycle error with an exit code.
type ServerError struct {
	Op       string
	Err      error
	ExitCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ServerError) Unwrap() error {
	return e.Err
}

// =============================================================================
// Server
// =============================================================================

// Server wires the menu store and HTTP API together and manages their
// lifecycle.
type Server struct {
	config     *Config
	httpServer *http.Server
	store      store.Store
	logger     *slog.Logger
}

// NewServer creates a server with an in-memory store, optionally seeded
// with the default menu.
func NewServer(cfg *Config, logger *slog.Logger) (*Server, error) {
	memStore := store.NewMemoryStore()

	if cfg.Menu.Seed {
		if err := memStore.Seed(context.Background()); err != nil {
			memStore.Close()
			return nil, &ServerError{
				Op:       "NewServer",
				Err:      fmt.Errorf("failed to seed menu: %w", err),
				ExitCode: ExitStoreError,
			}
		}
		logger.Info("seeded default menu", "items", len(store.DefaultMenu()))
	}

	handler := api.NewHandler(memStore, logger)

	httpServer := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      handler.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &Server{
		config:     cfg,
		httpServer: httpServer,
		store:      memStore,
		logger:     logger,
	}, nil
}

// Start runs the HTTP server until a shutdown signal arrives, the context
// is cancelled, or the server fails.
func (s *Server) Start(ctx context.Context) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", s.config.Server.Address())
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case sig := <-sigCh:
		s.logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return &ServerError{
			Op:       "Start",
			Err:      err,
			ExitCode: ExitHTTPServerError,
		}
	case <-ctx.Done():
		s.logger.Info("context cancelled, shutting down")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the HTTP server and closes the store.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down", "timeout", s.config.Server.ShutdownTimeout.String())

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	if err := s.store.Close(); err != nil {
		s.logger.Error("store close error", "error", err)
	}

	s.logger.Info("shutdown complete")
	return nil
}
