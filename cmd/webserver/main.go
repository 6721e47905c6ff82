package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/olgkv/taskboard/internal/app"
	"github.com/olgkv/taskboard/internal/config"
	"github.com/olgkv/taskboard/internal/logger"
)

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// runHTTPServer serves until ctx is cancelled or the listener fails, then
// shuts the server down within timeout.
func runHTTPServer(ctx context.Context, srv httpServer, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, svc, closeStorage, err := app.NewServer(ctx, cfg)
	if err != nil {
		slog.Error("init server", "error", err)
		os.Exit(1)
	}
	defer closeStorage()

	slog.Info("server listening", "addr", srv.Addr, "storage", cfg.StorageBackend)
	if err := runHTTPServer(ctx, srv, cfg.ShutdownTimeout); err != nil {
		slog.Error("server stopped", "error", err)
	}

	total, completed := svc.Stats()
	slog.Info("shutdown summary", "total_tasks", total, "completed_tasks", completed)
}
