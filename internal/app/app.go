// Package app wires the feed poller and REST server together and manages
// application lifecycle.
package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Kamalbura/AQI/internal/cache"
	"github.com/Kamalbura/AQI/internal/controllers/poller"
	"github.com/Kamalbura/AQI/internal/controllers/restserver"
	"github.com/Kamalbura/AQI/internal/feed"
	"github.com/Kamalbura/AQI/internal/log"
	"github.com/Kamalbura/AQI/pkg/config"
	"go.uber.org/zap"
)

// App represents the main application
type App struct {
	cfg    *config.ConfigData
	logger *zap.SugaredLogger
}

// New creates a new application instance
func New(cfg *config.ConfigData, logger *zap.SugaredLogger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
	}
}

// Run starts the application and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ttl := cache.DefaultTTL
	if a.cfg.Cache.TTL != "" {
		parsed, err := time.ParseDuration(a.cfg.Cache.TTL)
		if err != nil {
			a.logger.Warnf("invalid cache.ttl %q; defaulting to %v", a.cfg.Cache.TTL, cache.DefaultTTL)
		} else {
			ttl = parsed
		}
	}
	readingCache := cache.New(ttl)

	feedClient, err := feed.NewClient(a.cfg.Feed, a.logger)
	if err != nil {
		return err
	}

	pollerController, err := poller.NewController(ctx, &wg, a.cfg.Feed, feedClient, readingCache, a.logger)
	if err != nil {
		return err
	}
	if err := pollerController.StartController(); err != nil {
		return err
	}

	restController, err := restserver.NewController(ctx, &wg, a.cfg.REST, readingCache, a.logger)
	if err != nil {
		return err
	}
	if err := restController.StartController(); err != nil {
		return err
	}

	log.Info("Application started successfully")

	// Set up signal handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	}

	// Cancel context to signal all goroutines to stop
	cancel()

	// Wait for all workers to terminate
	log.Info("waiting for all workers to terminate...")
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}
