package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"reelskills-backend/internal/delivery/http/response"
	"reelskills-backend/internal/domain"
	"reelskills-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis
	KeyPrefix string
	// Whether to fail closed (reject) when Redis is unavailable
	FailClosed bool
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	count   int
	resetAt time.Time
	mu      sync.Mutex
}

// RateLimiter counts requests in Redis and falls back to process memory when
// Redis is absent or failing.
type RateLimiter struct {
	client      *goredis.Client
	store       sync.Map
	cleanupOnce sync.Once
	now         func() time.Time
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// NewRateLimiter accepts a nil client, in which case counting is in-memory only.
func NewRateLimiter(client *goredis.Client) *RateLimiter {
	return &RateLimiter{client: client, now: time.Now}
}

// GlobalRateLimitConfig limits every request per client IP.
func GlobalRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:ip:",
		FailClosed: false, // Fail open by default for availability
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// VideoRateLimitConfig limits uploads and analyses per profile, since each
// one costs storage and an AI call. Unauthenticated requests fall back to IP.
func VideoRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:video:",
		FailClosed: false,
		KeyFunc: func(c *gin.Context) string {
			if s := domain.SessionFromContext(c.Request.Context()); s.Ready() {
				return s.ProfileID
			}
			return c.ClientIP()
		},
	}
}

// Middleware returns a gin handler enforcing config.
func (rl *RateLimiter) Middleware(config RateLimitConfig) gin.HandlerFunc {
	rl.cleanupOnce.Do(rl.startCleanup)

	return func(c *gin.Context) {
		fullKey := config.KeyPrefix + config.KeyFunc(c)

		var count int
		var resetAt time.Time
		var err error

		if rl.client != nil {
			count, resetAt, err = rl.checkRedis(c.Request.Context(), fullKey, config)
			if err != nil {
				logger.Log.Warn("Rate limit store unavailable", "key_prefix", config.KeyPrefix, "error", err)
				if config.FailClosed {
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
					c.Abort()
					return
				}
				count, resetAt = rl.checkInMemory(fullKey, config)
			}
		} else {
			count, resetAt = rl.checkInMemory(fullKey, config)
		}

		if count > config.Limit {
			retryAfter := int(resetAt.Sub(rl.now()).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}

			c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Warn("Rate limit exceeded",
				"request_id", c.GetString(response.RequestIDKey),
				"ip", c.ClientIP(),
				"path", c.FullPath(),
				"key_prefix", config.KeyPrefix,
			)

			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		remaining := config.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		c.Next()
	}
}

// checkRedis checks rate limit using Redis with atomic Lua script
func (rl *RateLimiter) checkRedis(ctx context.Context, key string, config RateLimitConfig) (int, time.Time, error) {
	ttlSeconds := int(config.Window.Seconds())

	result, err := rl.client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), rl.now().Add(time.Duration(ttl) * time.Second), nil
}

func (rl *RateLimiter) checkInMemory(key string, config RateLimitConfig) (int, time.Time) {
	now := rl.now()
	entryI, _ := rl.store.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(config.Window)})
	entry := entryI.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(config.Window)
	}
	entry.count++

	return entry.count, entry.resetAt
}

// startCleanup drops expired in-memory entries every few minutes.
func (rl *RateLimiter) startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			now := rl.now()
			rl.store.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					rl.store.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}()
}
