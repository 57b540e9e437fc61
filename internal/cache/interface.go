package cache

import (
	"context"
	"io"
	"log"
	"time"
)

// Cache stores raw event documents keyed by their source
type Cache interface {
	// Get returns the cached document for key, reporting whether it was found
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a document for key with the given time to live
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// HealthCheck performs a health check on the cache backend
	HealthCheck(ctx context.Context) error

	// Close releases the cache backend
	Close() error
}

// KeyPrefix namespaces document keys in shared backends.
const KeyPrefix = "openday:doc:"

// Key builds the cache key for a document source.
func Key(source string) string {
	return KeyPrefix + source
}

// NewCache creates a cache based on the Redis URL.
// If redisURL is empty or Redis is unreachable, returns a NullCache.
func NewCache(redisURL string, logger *log.Logger) Cache {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	if redisURL == "" {
		return NewNullCache(logger)
	}

	redisCache, err := NewRedisCache(redisURL, logger)
	if err == nil {
		return redisCache
	}

	logger.Printf("Redis cache unavailable, continuing without cache: %v", err)
	return NewNullCache(logger)
}
