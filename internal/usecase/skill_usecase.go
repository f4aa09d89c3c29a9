package usecase

import (
	"context"
	"strings"
	"time"

	"reelskills-backend/internal/domain"
	"reelskills-backend/internal/engine"
	"reelskills-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type skillUsecase struct {
	skillRepo domain.SkillRepository
	cache     domain.InsightCache
	validate  *validator.Validate
	now       func() time.Time
}

func NewSkillUsecase(skillRepo domain.SkillRepository, cache domain.InsightCache, validate *validator.Validate) domain.SkillUsecase {
	return &skillUsecase{
		skillRepo: skillRepo,
		cache:     cache,
		validate:  validate,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *skillUsecase) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, err
	}
	return loadSkills(ctx, u.skillRepo, session.ProfileID)
}

func (u *skillUsecase) GetSkill(ctx context.Context, id string) (*domain.SkillDetail, error) {
	skill, _, err := loadOwnedSkill(ctx, u.skillRepo, id)
	if err != nil {
		return nil, err
	}
	return skillDetail(skill), nil
}

func (u *skillUsecase) CreateSkill(ctx context.Context, input *domain.CreateSkillInput) (*domain.SkillDetail, error) {
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

	now := u.now()
	skill := &domain.Skill{
		ID:              uuid.NewString(),
		ProfileID:       session.ProfileID,
		Name:            strings.TrimSpace(input.Name),
		Category:        input.Category,
		Proficiency:     input.Proficiency,
		YearsExperience: input.YearsExperience,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if input.Description != nil {
		skill.Description = trimmedOrNil(*input.Description)
	}

	if err := u.skillRepo.Create(ctx, skill); err != nil {
		return nil, storeError(err)
	}
	invalidateInsights(ctx, u.cache, session.ProfileID)

	return skillDetail(skill), nil
}

func (u *skillUsecase) UpdateSkill(ctx context.Context, id string, input *domain.UpdateSkillInput) (*domain.SkillDetail, error) {
	if input == nil {
		return nil, apperror.BadRequest("Request body is required")
	}

	// An empty URL means "detach"; only a non-empty one is checked as a URL.
	edit := *input
	detachVideo := false
	if edit.VideoDemoURL != nil && strings.TrimSpace(*edit.VideoDemoURL) == "" {
		detachVideo = true
		edit.VideoDemoURL = nil
	}
	if err := validateStruct(u.validate, &edit); err != nil {
		return nil, err
	}

	skill, session, err := loadOwnedSkill(ctx, u.skillRepo, id)
	if err != nil {
		return nil, err
	}

	now := u.now()
	if edit.YearsExperience != nil {
		skill.YearsExperience = *edit.YearsExperience
	}
	if edit.Description != nil {
		skill.Description = trimmedOrNil(*edit.Description)
	}
	switch {
	case detachVideo:
		skill.VideoDemoURL = nil
		skill.VideoVerified = false
		skill.VideoUploadedAt = nil
	case edit.VideoDemoURL != nil:
		url := strings.TrimSpace(*edit.VideoDemoURL)
		if !skill.HasVideo() || *skill.VideoDemoURL != url {
			// A different video has not been analyzed yet
			skill.VideoDemoURL = &url
			skill.VideoVerified = false
			skill.VideoUploadedAt = &now
		}
	}
	skill.UpdatedAt = now

	if err := u.skillRepo.Update(ctx, skill); err != nil {
		return nil, storeError(err)
	}
	invalidateInsights(ctx, u.cache, session.ProfileID)

	return skillDetail(skill), nil
}

func (u *skillUsecase) DeleteSkill(ctx context.Context, id string) error {
	_, session, err := loadOwnedSkill(ctx, u.skillRepo, id)
	if err != nil {
		return err
	}
	if err := u.skillRepo.Delete(ctx, id); err != nil {
		return storeError(err)
	}
	invalidateInsights(ctx, u.cache, session.ProfileID)
	return nil
}

// AdvanceProficiency moves the skill one tier up. Master stays master and
// nothing is written.
func (u *skillUsecase) AdvanceProficiency(ctx context.Context, id string) (*domain.SkillDetail, error) {
	skill, session, err := loadOwnedSkill(ctx, u.skillRepo, id)
	if err != nil {
		return nil, err
	}

	next := engine.NextTier(skill.Proficiency)
	if next == skill.Proficiency {
		return skillDetail(skill), nil
	}

	skill.Proficiency = next
	skill.UpdatedAt = u.now()
	if err := u.skillRepo.Update(ctx, skill); err != nil {
		return nil, storeError(err)
	}
	invalidateInsights(ctx, u.cache, session.ProfileID)

	return skillDetail(skill), nil
}

func (u *skillUsecase) GetImprovements(ctx context.Context, id string) ([]domain.Improvement, error) {
	skill, _, err := loadOwnedSkill(ctx, u.skillRepo, id)
	if err != nil {
		return nil, err
	}
	return engine.SkillImprovements(*skill), nil
}

func (u *skillUsecase) GetLearningPath(ctx context.Context, id string) (*domain.LearningPath, error) {
	skill, _, err := loadOwnedSkill(ctx, u.skillRepo, id)
	if err != nil {
		return nil, err
	}
	path := engine.BuildLearningPath(*skill)
	return &path, nil
}

func skillDetail(skill *domain.Skill) *domain.SkillDetail {
	return &domain.SkillDetail{
		Skill:        skill,
		Improvements: engine.SkillImprovements(*skill),
	}
}

func loadSkills(ctx context.Context, repo domain.SkillRepository, profileID string) ([]domain.Skill, error) {
	skills, err := repo.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, storeError(err)
	}
	if skills == nil {
		skills = []domain.Skill{}
	}
	sortSkills(skills)
	return skills, nil
}

// loadOwnedSkill fetches a skill of the session's profile. Malformed ids and
// skills of other profiles are reported as not found.
func loadOwnedSkill(ctx context.Context, repo domain.SkillRepository, id string) (*domain.Skill, *domain.Session, error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, nil, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil, apperror.NotFound("Skill not found")
	}

	skill, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, storeError(err)
	}
	if skill == nil || skill.ProfileID != session.ProfileID {
		return nil, nil, apperror.NotFound("Skill not found")
	}
	return skill, session, nil
}
