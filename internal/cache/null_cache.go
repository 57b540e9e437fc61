package cache

import (
	"context"
	"log"
	"time"
)

// NullCache never stores anything; used when no Redis URL is configured
type NullCache struct {
	logger *log.Logger
}

// NewNullCache creates a new null cache instance
func NewNullCache(logger *log.Logger) *NullCache {
	if logger == nil {
		logger = log.New(log.Writer(), "[NullCache] ", log.LstdFlags)
	}
	return &NullCache{logger: logger}
}

// Get always misses
func (nc *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the document
func (nc *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// HealthCheck always returns nil for null cache
func (nc *NullCache) HealthCheck(ctx context.Context) error {
	return nil
}

// Close is a no-op for null cache
func (nc *NullCache) Close() error {
	return nil
}
