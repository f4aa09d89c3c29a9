package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotConfigured is returned when no Redis URL was supplied.
var ErrNotConfigured = errors.New("redis: UPSTASH_REDIS_URL not configured")

// Config holds Redis connection configuration
type Config struct {
	URL      string // redis://... or rediss://... for TLS (Upstash)
	Password string // overrides the password embedded in URL
}

// Connect dials Redis and verifies the connection. Callers treat an error as
// "run without Redis": the insight cache and rate limiter both degrade.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, ErrNotConfigured
	}

	// ParseURL enables TLS for the rediss scheme
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.PoolSize = 10
	opts.MinIdleConns = 2

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: connection failed: %w", err)
	}
	return client, nil
}

// HealthCheck returns nil if the client is present and answers PING.
func HealthCheck(ctx context.Context, client *redis.Client) error {
	if client == nil {
		return errors.New("redis: client not initialized")
	}
	return client.Ping(ctx).Err()
}
