package usecase

import (
	"context"
	"errors"
	"sort"

	"reelskills-backend/internal/domain"
	"reelskills-backend/pkg/apperror"
	"reelskills-backend/pkg/logger"
	"reelskills-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// requireSession returns the ready session of the request or 401.
func requireSession(ctx context.Context) (*domain.Session, error) {
	s := domain.SessionFromContext(ctx)
	if !s.Ready() {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	return s, nil
}

func validateStruct(v *validator.Validate, s interface{}) error {
	if err := v.Struct(s); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return apperror.Internal(err)
		}
		return apperror.Validation(validation.FormatValidationErrors(err))
	}
	return nil
}

// storeError keeps AppErrors raised by repositories and hides everything else.
func storeError(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.Internal(err)
}

// invalidateInsights bumps the cached insight generation. A failure is logged
// and the mutation still succeeds; a guarded cache then reads around the stale
// entry.
func invalidateInsights(ctx context.Context, cache domain.InsightCache, profileID string) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, profileID); err != nil {
		logger.Log.Warn("Failed to invalidate insight cache", "profile_id", profileID, "error", err)
	}
}

// sortSkills orders skills newest first, ties broken by id.
func sortSkills(skills []domain.Skill) {
	sort.SliceStable(skills, func(i, j int) bool {
		if !skills[i].CreatedAt.Equal(skills[j].CreatedAt) {
			return skills[i].CreatedAt.After(skills[j].CreatedAt)
		}
		return skills[i].ID < skills[j].ID
	})
}
