package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"reelskills-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	insightKeyPrefix = "insights:profile:"
	insightGenPrefix = "insights:gen:"
)

type insightCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewInsightCache returns a Redis-backed cache. A nil client yields a cache
// that always misses, so the service runs without Redis.
func NewInsightCache(client *redis.Client, ttl time.Duration) domain.InsightCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &insightCache{client: client, ttl: ttl}
}

func insightKey(profileID string, gen int64) string {
	return insightKeyPrefix + profileID + ":" + strconv.FormatInt(gen, 10)
}

func generationKey(profileID string) string {
	return insightGenPrefix + profileID
}

// Generation returns the current generation, 0 when none was ever recorded.
func (c *insightCache) Generation(ctx context.Context, profileID string) (int64, error) {
	if c.client == nil {
		return 0, nil
	}
	gen, err := c.client.Get(ctx, generationKey(profileID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("insight cache generation: %w", err)
	}
	return gen, nil
}

func (c *insightCache) Get(ctx context.Context, profileID string, gen int64) ([]domain.Insight, bool, error) {
	if c.client == nil {
		return nil, false, nil
	}
	raw, err := c.client.Get(ctx, insightKey(profileID, gen)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("insight cache get: %w", err)
	}

	var insights []domain.Insight
	if err := json.Unmarshal(raw, &insights); err != nil {
		return nil, false, fmt.Errorf("insight cache decode: %w", err)
	}
	if insights == nil {
		insights = []domain.Insight{}
	}
	return insights, true, nil
}

func (c *insightCache) Set(ctx context.Context, profileID string, gen int64, insights []domain.Insight) error {
	if c.client == nil {
		return nil
	}
	raw, err := json.Marshal(insights)
	if err != nil {
		return fmt.Errorf("insight cache encode: %w", err)
	}
	if err := c.client.Set(ctx, insightKey(profileID, gen), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("insight cache set: %w", err)
	}
	return nil
}

// Invalidate bumps the generation. Entries under older generations are never
// read again and expire on their own.
func (c *insightCache) Invalidate(ctx context.Context, profileID string) error {
	if c.client == nil {
		return nil
	}
	if err := c.client.Incr(ctx, generationKey(profileID)).Err(); err != nil {
		return fmt.Errorf("insight cache invalidate: %w", err)
	}
	return nil
}
