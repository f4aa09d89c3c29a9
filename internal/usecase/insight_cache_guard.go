package usecase

import (
	"context"
	"sync"

	"reelskills-backend/internal/domain"
)

// insightCacheGuard remembers profiles whose invalidation failed. Their cached
// entries may predate the mutation, so reads go around the cache until an
// invalidation for that profile succeeds.
type insightCacheGuard struct {
	domain.InsightCache
	stale sync.Map
}

// GuardInsightCache wraps cache for sharing between the usecases that mutate
// skills and the one that reads insights. A nil cache stays nil.
func GuardInsightCache(cache domain.InsightCache) domain.InsightCache {
	if cache == nil {
		return nil
	}
	return &insightCacheGuard{InsightCache: cache}
}

func (g *insightCacheGuard) Generation(ctx context.Context, profileID string) (int64, error) {
	if _, stale := g.stale.Load(profileID); stale {
		if err := g.InsightCache.Invalidate(ctx, profileID); err != nil {
			return 0, err
		}
		g.stale.Delete(profileID)
	}
	return g.InsightCache.Generation(ctx, profileID)
}

func (g *insightCacheGuard) Invalidate(ctx context.Context, profileID string) error {
	if err := g.InsightCache.Invalidate(ctx, profileID); err != nil {
		g.stale.Store(profileID, struct{}{})
		return err
	}
	return nil
}
