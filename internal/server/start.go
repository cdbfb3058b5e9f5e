package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// shutdownTimeout bounds how long in-flight requests may take to finish.
const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until ctx is cancelled or an interrupt or
// terminate signal arrives, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := notifyShutdown(ctx)
	defer stop()

	if s.watcher != nil {
		if err := s.watcher.Start(ctx); err != nil {
			// The watcher is a development aid; serving must not depend on it.
			slog.Warn("Module watcher unavailable", "error", err)
		}
		defer s.watcher.Close()
	}

	addr := s.Cfg.GetAddr()
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", addr, "modules_dir", s.Cfg.GetModulesDir(), "debug", s.Cfg.GetDebug())
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.E.Shutdown(shutdownCtx)
}
