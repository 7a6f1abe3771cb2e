package host

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Run starts the HTTP server and blocks until it stops.
func (a *App) Run() error {
	addr := a.config.Server.Host + ":" + a.config.Server.Port
	a.logger.Info("Starting HTTP server", zap.String("addr", addr))

	a.server = &http.Server{
		Addr:              addr,
		Handler:           a.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops the HTTP server gracefully and flushes the logger.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down host...")

	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	a.logger.Sync()
	return nil
}
