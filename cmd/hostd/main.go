// Command hostd runs a bare host application. Real deployments embed
// host.App and register their package providers before Run; this binary
// exists for smoke-testing the HTTP surface.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tjventurini/service-provider/host"
)

func main() {
	cfg, err := host.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	app := host.NewApp(cfg)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := app.Run(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Shutdown(ctx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	case err := <-errChan:
		log.Fatalf("Server error: %v", err)
	}
}
