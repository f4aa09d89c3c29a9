package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"reelskills-backend/internal/domain"
	"reelskills-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		validate:    validate,
	}
}

// EnsureProfile loads the profile of an authenticated user, creating it with
// the candidate role on first sight.
func (u *profileUsecase) EnsureProfile(ctx context.Context, userID, email string) (*domain.Profile, error) {
	if userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	profile, err := u.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, storeError(err)
	}
	if profile != nil {
		return profile, nil
	}

	now := time.Now().UTC()
	profile = &domain.Profile{
		ID:        userID,
		Email:     email,
		Role:      domain.RoleCandidate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.profileRepo.Create(ctx, profile); err != nil {
		// A concurrent first request created it
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusConflict {
			existing, getErr := u.profileRepo.GetByID(ctx, userID)
			if getErr == nil && existing != nil {
				return existing, nil
			}
		}
		return nil, storeError(err)
	}
	return profile, nil
}

func (u *profileUsecase) GetProfile(ctx context.Context) (*domain.Profile, error) {
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
	return profile, nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, input *domain.UpdateProfileInput) (*domain.Profile, error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, err
	}
	if input == nil {
		return nil, apperror.BadRequest("Request body is required")
	}
	if err := validateStruct(u.validate, input); err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.GetByID(ctx, session.ProfileID)
	if err != nil {
		return nil, storeError(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}

	if input.FirstName != nil {
		profile.FirstName = trimmedOrNil(*input.FirstName)
	}
	if input.LastName != nil {
		profile.LastName = trimmedOrNil(*input.LastName)
	}
	if input.Headline != nil {
		profile.Headline = trimmedOrNil(*input.Headline)
	}
	if input.Summary != nil {
		profile.Summary = trimmedOrNil(*input.Summary)
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return nil, storeError(err)
	}
	return profile, nil
}

// trimmedOrNil clears a field when it is blank.
func trimmedOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
