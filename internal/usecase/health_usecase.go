package usecase

import (
	"context"
	"time"

	redispkg "reelskills-backend/pkg/redis"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	db    *pgxpool.Pool
	redis *redis.Client
}

// NewHealthUsecase reports on the database and, when configured, Redis.
func NewHealthUsecase(db *pgxpool.Pool, redisClient *redis.Client) HealthUsecase {
	return &healthUsecase{db: db, redis: redisClient}
}

// Check returns per-dependency status and whether the service is healthy.
// Redis is optional and never makes the service unhealthy.
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := map[string]string{"status": "ok", "database": "ok", "redis": "disabled"}
	healthy := true

	if u.db == nil || u.db.Ping(ctx) != nil {
		status["database"] = "unavailable"
		status["status"] = "degraded"
		healthy = false
	}
	if u.redis != nil {
		if err := redispkg.HealthCheck(ctx, u.redis); err != nil {
			status["redis"] = "unavailable"
		} else {
			status["redis"] = "ok"
		}
	}
	return status, healthy
}
