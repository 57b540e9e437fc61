package cmd

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/Ashfaaq98/openday-console/internal/cache"
	"github.com/Ashfaaq98/openday-console/internal/loader"
)

// newLoader wires the document cache and loader from configuration. The
// returned cache must be closed by the caller.
func newLoader(cfg Config, logger *log.Logger) (*loader.Loader, cache.Cache) {
	cacheLogger := logger
	if !isDebug(cfg) {
		cacheLogger = log.New(io.Discard, "", 0)
	}
	c := cache.NewCache(cfg.Cache.Redis, cacheLogger)
	if cfg.Cache.Redis != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := c.HealthCheck(ctx); err != nil {
			logger.Printf("Cache health check failed: %v", err)
		}
		cancel()
	}

	l := loader.New(loader.Options{
		Source:   cfg.Source,
		Timeout:  cfg.HTTP.Timeout,
		Cache:    c,
		CacheTTL: cfg.Cache.TTL,
		Logger:   logger,
		Debug:    isDebug(cfg),
	})
	return l, c
}
