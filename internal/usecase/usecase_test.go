package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"reelskills-backend/internal/domain"
	"reelskills-backend/internal/usecase"
	"reelskills-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func codeOf(err error) int {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return 0
}

func TestSessionRequired(t *testing.T) {
	skillRepo := new(MockSkillRepo)
	uc := usecase.NewSkillUsecase(skillRepo, nil, newValidator())

	t.Run("Should fail when the context has no session", func(t *testing.T) {
		_, err := uc.ListSkills(context.Background())
		assert.Equal(t, http.StatusUnauthorized, codeOf(err))
	})

	t.Run("Should fail when the session is still initializing", func(t *testing.T) {
		ctx := domain.WithSession(context.Background(), &domain.Session{State: domain.SessionInitializing, UserID: "u"})
		_, err := uc.ListSkills(ctx)
		assert.Equal(t, http.StatusUnauthorized, codeOf(err))
	})

	skillRepo.AssertNotCalled(t, "ListByProfile", mock.Anything, mock.Anything)
}

func TestListSkillsOrder(t *testing.T) {
	skillRepo := new(MockSkillRepo)
	uc := usecase.NewSkillUsecase(skillRepo, nil, newValidator())

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	skillRepo.On("ListByProfile", mock.Anything, testProfileID).Return([]domain.Skill{
		{ID: "b", Name: "Old", CreatedAt: base},
		{ID: "d", Name: "Tie2", CreatedAt: base.Add(time.Hour)},
		{ID: "c", Name: "Tie1", CreatedAt: base.Add(time.Hour)},
		{ID: "a", Name: "New", CreatedAt: base.Add(2 * time.Hour)},
	}, nil)

	skills, err := uc.ListSkills(sessionCtx())
	require.NoError(t, err)

	ids := make([]string, len(skills))
	for i, s := range skills {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"a", "c", "d", "b"}, ids)
}

func TestCreateSkill(t *testing.T) {
	t.Run("Should create with defaults, invalidate insights and rank improvements", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		cache := new(MockInsightCache)
		uc := usecase.NewSkillUsecase(skillRepo, cache, newValidator())

		skillRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Skill) bool {
			return s.ProfileID == testProfileID && s.Name == "Python" && s.ID != "" &&
				!s.Verified && s.Endorsements == 0 && s.VideoDemoURL == nil && !s.VideoVerified
		})).Return(nil)
		cache.On("Invalidate", mock.Anything, testProfileID).Return(nil)

		detail, err := uc.CreateSkill(sessionCtx(), &domain.CreateSkillInput{
			Name:            "  Python ",
			Category:        domain.CategoryTechnical,
			Proficiency:     domain.ProficiencyBeginner,
			YearsExperience: 0,
		})
		require.NoError(t, err)
		require.NotEmpty(t, detail.Improvements)
		assert.Equal(t, domain.PriorityCritical, detail.Improvements[0].Priority)
		assert.Equal(t, "Add Video Demonstration", detail.Improvements[0].Title)

		skillRepo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("Should reject invalid input before touching the store", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(skillRepo, nil, newValidator())

		_, err := uc.CreateSkill(sessionCtx(), &domain.CreateSkillInput{
			Name:        "   ",
			Category:    "hobby",
			Proficiency: "guru",
		})
		assert.Equal(t, http.StatusBadRequest, codeOf(err))
		skillRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject negative experience", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(skillRepo, nil, newValidator())

		_, err := uc.CreateSkill(sessionCtx(), &domain.CreateSkillInput{
			Name:            "Go",
			Category:        domain.CategoryTechnical,
			Proficiency:     domain.ProficiencyBeginner,
			YearsExperience: -1,
		})
		assert.Equal(t, http.StatusBadRequest, codeOf(err))
	})
}

func TestSkillOwnership(t *testing.T) {
	skillRepo := new(MockSkillRepo)
	uc := usecase.NewSkillUsecase(skillRepo, nil, newValidator())

	foreign := ownedSkill()
	foreign.ProfileID = otherProfile
	skillRepo.On("GetByID", mock.Anything, testSkillID).Return(foreign, nil)

	t.Run("Should report another profile's skill as not found", func(t *testing.T) {
		_, err := uc.GetSkill(sessionCtx(), testSkillID)
		assert.Equal(t, http.StatusNotFound, codeOf(err))
	})

	t.Run("Should not delete another profile's skill", func(t *testing.T) {
		err := uc.DeleteSkill(sessionCtx(), testSkillID)
		assert.Equal(t, http.StatusNotFound, codeOf(err))
		skillRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should treat a malformed id as not found", func(t *testing.T) {
		_, err := uc.GetSkill(sessionCtx(), "not-a-uuid")
		assert.Equal(t, http.StatusNotFound, codeOf(err))
	})

	t.Run("Should report a missing skill as not found", func(t *testing.T) {
		missing := "5b0c9a52-9999-4f3e-8f5e-000000000009"
		skillRepo.On("GetByID", mock.Anything, missing).Return(nil, nil)
		_, err := uc.GetImprovements(sessionCtx(), missing)
		assert.Equal(t, http.StatusNotFound, codeOf(err))
	})
}

func TestUpdateSkill(t *testing.T) {
	t.Run("Should clear verification when the video is detached", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		cache := new(MockInsightCache)
		uc := usecase.NewSkillUsecase(skillRepo, cache, newValidator())

		skill := ownedSkill()
		skill.VideoDemoURL = strPtr("https://cdn.example.com/v.mp4")
		skill.VideoVerified = true
		skill.AIRating = intPtr(4)
		skillRepo.On("GetByID", mock.Anything, testSkillID).Return(skill, nil)
		skillRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		cache.On("Invalidate", mock.Anything, testProfileID).Return(nil)

		detail, err := uc.UpdateSkill(sessionCtx(), testSkillID, &domain.UpdateSkillInput{VideoDemoURL: strPtr("")})
		require.NoError(t, err)
		assert.Nil(t, detail.Skill.VideoDemoURL)
		assert.False(t, detail.Skill.VideoVerified)
		assert.Equal(t, intPtr(4), detail.Skill.AIRating)
		assert.Equal(t, "Add Video Demonstration", detail.Improvements[0].Title)
		cache.AssertExpectations(t)
	})

	t.Run("Should mark a new video as unverified", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(skillRepo, nil, newValidator())

		skill := ownedSkill()
		skill.VideoDemoURL = strPtr("https://cdn.example.com/old.mp4")
		skill.VideoVerified = true
		skillRepo.On("GetByID", mock.Anything, testSkillID).Return(skill, nil)
		skillRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		detail, err := uc.UpdateSkill(sessionCtx(), testSkillID, &domain.UpdateSkillInput{
			VideoDemoURL:    strPtr("https://cdn.example.com/new.mp4"),
			YearsExperience: intPtr(6),
		})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/new.mp4", *detail.Skill.VideoDemoURL)
		assert.False(t, detail.Skill.VideoVerified)
		assert.Equal(t, 6, detail.Skill.YearsExperience)
		assert.NotNil(t, detail.Skill.VideoUploadedAt)
	})

	t.Run("Should reject an invalid URL", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(skillRepo, nil, newValidator())

		_, err := uc.UpdateSkill(sessionCtx(), testSkillID, &domain.UpdateSkillInput{VideoDemoURL: strPtr("not a url")})
		assert.Equal(t, http.StatusBadRequest, codeOf(err))
		skillRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestAdvanceProficiency(t *testing.T) {
	t.Run("Should move one tier up", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		cache := new(MockInsightCache)
		uc := usecase.NewSkillUsecase(skillRepo, cache, newValidator())

		skillRepo.On("GetByID", mock.Anything, testSkillID).Return(ownedSkill(), nil)
		skillRepo.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Skill) bool {
			return s.Proficiency == domain.ProficiencyExpert
		})).Return(nil)
		cache.On("Invalidate", mock.Anything, testProfileID).Return(nil)

		detail, err := uc.AdvanceProficiency(sessionCtx(), testSkillID)
		require.NoError(t, err)
		assert.Equal(t, domain.ProficiencyExpert, detail.Skill.Proficiency)
		skillRepo.AssertExpectations(t)
	})

	t.Run("Should leave a master unchanged", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(skillRepo, nil, newValidator())

		master := ownedSkill()
		master.Proficiency = domain.ProficiencyMaster
		skillRepo.On("GetByID", mock.Anything, testSkillID).Return(master, nil)

		detail, err := uc.AdvanceProficiency(sessionCtx(), testSkillID)
		require.NoError(t, err)
		assert.Equal(t, domain.ProficiencyMaster, detail.Skill.Proficiency)
		skillRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDeleteSkill(t *testing.T) {
	skillRepo := new(MockSkillRepo)
	cache := new(MockInsightCache)
	uc := usecase.NewSkillUsecase(skillRepo, cache, newValidator())

	skillRepo.On("GetByID", mock.Anything, testSkillID).Return(ownedSkill(), nil)
	skillRepo.On("Delete", mock.Anything, testSkillID).Return(nil)
	cache.On("Invalidate", mock.Anything, testProfileID).Return(errors.New("redis down"))

	t.Run("Should delete even when the cache is unavailable", func(t *testing.T) {
		assert.NoError(t, uc.DeleteSkill(sessionCtx(), testSkillID))
		skillRepo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})
}

func TestGetLearningPath(t *testing.T) {
	skillRepo := new(MockSkillRepo)
	uc := usecase.NewSkillUsecase(skillRepo, nil, newValidator())
	skillRepo.On("GetByID", mock.Anything, testSkillID).Return(ownedSkill(), nil)

	path, err := uc.GetLearningPath(sessionCtx(), testSkillID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProficiencyAdvanced, path.CurrentTier)
	assert.Equal(t, domain.ProficiencyExpert, path.TargetTier)
	assert.Len(t, path.Steps, 5)
}

func TestStoreFailure(t *testing.T) {
	skillRepo := new(MockSkillRepo)
	uc := usecase.NewSkillUsecase(skillRepo, nil, newValidator())
	skillRepo.On("ListByProfile", mock.Anything, testProfileID).Return(nil, errors.New("connection reset"))

	_, err := uc.ListSkills(sessionCtx())
	assert.Equal(t, http.StatusInternalServerError, codeOf(err))
	assert.NotContains(t, err.Error(), "connection reset")
}
