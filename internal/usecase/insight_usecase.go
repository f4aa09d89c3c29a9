package usecase

import (
	"context"

	"reelskills-backend/internal/domain"
	"reelskills-backend/internal/engine"
	"reelskills-backend/pkg/apperror"
	"reelskills-backend/pkg/logger"
)

type insightUsecase struct {
	skillRepo   domain.SkillRepository
	profileRepo domain.ProfileRepository
	cache       domain.InsightCache
}

func NewInsightUsecase(skillRepo domain.SkillRepository, profileRepo domain.ProfileRepository, cache domain.InsightCache) domain.InsightUsecase {
	return &insightUsecase{
		skillRepo:   skillRepo,
		profileRepo: profileRepo,
		cache:       cache,
	}
}

// GetPortfolioInsights reads through the cache. The generation is read before
// the skills so a concurrent mutation makes the write-back unreachable. Cache
// errors are logged and the insights are recomputed from the store.
func (u *insightUsecase) GetPortfolioInsights(ctx context.Context) ([]domain.Insight, error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, err
	}

	useCache := u.cache != nil
	var gen int64
	if useCache {
		gen, err = u.cache.Generation(ctx, session.ProfileID)
		if err != nil {
			logger.Log.Warn("Insight cache generation unavailable", "profile_id", session.ProfileID, "error", err)
			useCache = false
		}
	}

	if useCache {
		cached, ok, err := u.cache.Get(ctx, session.ProfileID, gen)
		if err != nil {
			logger.Log.Warn("Insight cache read failed", "profile_id", session.ProfileID, "error", err)
		} else if ok {
			return cached, nil
		}
	}

	skills, err := loadSkills(ctx, u.skillRepo, session.ProfileID)
	if err != nil {
		return nil, err
	}
	insights := engine.GeneratePortfolioInsights(skills)

	if useCache {
		if err := u.cache.Set(ctx, session.ProfileID, gen, insights); err != nil {
			logger.Log.Warn("Insight cache write failed", "profile_id", session.ProfileID, "error", err)
		}
	}
	return insights, nil
}

func (u *insightUsecase) GetRecommendations(ctx context.Context) ([]domain.SkillRecommendation, error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, err
	}

	skills, err := loadSkills(ctx, u.skillRepo, session.ProfileID)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}

	recommended := engine.RecommendSkills(names)
	out := make([]domain.SkillRecommendation, 0, len(recommended))
	for _, name := range recommended {
		out = append(out, engine.SkillMarketInfo(name))
	}
	return out, nil
}

func (u *insightUsecase) GetProfileCompletion(ctx context.Context) (*domain.ProfileCompletion, error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.GetByID(ctx, session.ProfileID)
	if err != nil {
		return nil, storeError(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	skills, err := loadSkills(ctx, u.skillRepo, session.ProfileID)
	if err != nil {
		return nil, err
	}

	completion := engine.ProfileCompletion(profile, skills)
	return &completion, nil
}

func (u *insightUsecase) Invalidate(ctx context.Context, profileID string) {
	invalidateInsights(ctx, u.cache, profileID)
}
