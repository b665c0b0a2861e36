// Package poller provides the controller that keeps the reading cache
// populated from the upstream sensor feed.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/Kamalbura/AQI/internal/cache"
	"github.com/Kamalbura/AQI/internal/feed"
	"github.com/Kamalbura/AQI/pkg/aqi"
	"github.com/Kamalbura/AQI/pkg/config"
	"go.uber.org/zap"
)

const (
	// DefaultPollInterval is used when feed.poll_interval is absent.
	DefaultPollInterval = 60 * time.Second
	// MinPollInterval keeps the loop from hammering the upstream feed's
	// rate limits.
	MinPollInterval = 15 * time.Second
	// DefaultResults is how many feed entries a refresh requests when
	// feed.results is absent.
	DefaultResults = 100
)

// Controller periodically fetches the feed, runs the analyzer over the
// entries and replaces the cache snapshot.
type Controller struct {
	ctx      context.Context
	wg       *sync.WaitGroup
	client   *feed.Client
	cache    *cache.Cache
	interval time.Duration
	results  int
	logger   *zap.SugaredLogger
}

// NewController creates a poller controller from the feed configuration.
func NewController(ctx context.Context, wg *sync.WaitGroup, fc config.FeedData, client *feed.Client, readingCache *cache.Cache, logger *zap.SugaredLogger) (*Controller, error) {
	interval := DefaultPollInterval
	if fc.PollInterval != "" {
		parsed, err := time.ParseDuration(fc.PollInterval)
		if err != nil {
			logger.Warnf("invalid feed.poll_interval %q; defaulting to %v", fc.PollInterval, DefaultPollInterval)
		} else {
			interval = parsed
		}
	}
	if interval < MinPollInterval {
		logger.Infof("feed.poll_interval %v below minimum; using %v", interval, MinPollInterval)
		interval = MinPollInterval
	}

	results := fc.Results
	if results <= 0 {
		results = DefaultResults
	}

	return &Controller{
		ctx:      ctx,
		wg:       wg,
		client:   client,
		cache:    readingCache,
		interval: interval,
		results:  results,
		logger:   logger.Named("poller"),
	}, nil
}

// StartController begins the refresh loop.
func (c *Controller) StartController() error {
	c.logger.Infof("Starting feed poller: every %v, %d entries per fetch", c.interval, c.results)

	c.wg.Add(1)
	go c.run()

	return nil
}

func (c *Controller) run() {
	defer c.wg.Done()

	// Tickers only begin to fire after the interval has elapsed, so do the
	// first refresh immediately.
	c.refresh()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.refresh()
		case <-c.ctx.Done():
			c.logger.Info("Feed poller stopped")
			return
		}
	}
}

// refresh fetches and processes one snapshot. On upstream failure the
// previous snapshot stays in the cache; the REST layer serves it marked
// stale.
func (c *Controller) refresh() {
	ctx, cancel := context.WithTimeout(c.ctx, 15*time.Second)
	defer cancel()

	readings, err := c.client.Fetch(ctx, c.results)
	if err != nil {
		c.logger.Errorf("error fetching feed, keeping cached readings: %v", err)
		return
	}

	processed := make([]aqi.ProcessedReading, 0, len(readings))
	invalid := 0
	for _, r := range readings {
		p := aqi.Process(r)
		if !p.Valid {
			invalid++
		}
		processed = append(processed, p)
	}

	c.cache.Set(processed, time.Now())

	c.logger.Debugw("Cache refreshed",
		"readings", len(processed),
		"invalid", invalid)
}
