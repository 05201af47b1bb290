package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/logger"
)

// Run starts the HTTP server and the job queue, then blocks until a
// shutdown signal arrives.
func (a *App) Run(ctx context.Context) error {
	if err := a.db.River.Start(ctx); err != nil {
		return err
	}
	logger.Info("Job queue started")

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("Shutdown signal received", zap.String("signal", sig.String()))
	case <-ctx.Done():
		logger.Info("Context cancelled")
	}

	return a.Shutdown()
}

// Shutdown drains the service in dependency order: stop accepting
// requests, stop the job queue, drain the worker pools, close the
// database.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		logger.Warn("HTTP server shutdown", zap.Error(err))
	}

	a.pools.Shutdown()
	a.db.Close(ctx)

	logger.Info("Shutdown complete")
	return nil
}
