package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisCache keeps event documents in Redis string keys with an expiry
type RedisCache struct {
	client *redis.Client
	logger *log.Logger
}

// NewRedisCache connects to Redis and verifies the connection with a ping
func NewRedisCache(redisURL string, logger *log.Logger) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if logger == nil {
		logger = log.New(log.Writer(), "[RedisCache] ", log.LstdFlags)
	}

	return &RedisCache{
		client: client,
		logger: logger,
	}, nil
}

// Get returns the cached document, if present
func (rc *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := rc.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, true, nil
}

// Set stores the document with the given expiry
func (rc *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := rc.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	rc.logger.Printf("Cached %d bytes under %s (ttl %s)", len(data), key, ttl)
	return nil
}

// HealthCheck pings Redis
func (rc *RedisCache) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}
