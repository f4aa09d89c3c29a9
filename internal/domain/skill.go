package domain

import (
	"context"
	"time"
)

type SkillCategory string

const (
	CategoryTechnical     SkillCategory = "technical"
	CategorySoft          SkillCategory = "soft"
	CategoryLanguage      SkillCategory = "language"
	CategoryCertification SkillCategory = "certification"
)

// Proficiency is a skill mastery tier. Tiers are totally ordered, see Rank.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
	ProficiencyMaster       Proficiency = "master"
)

// ProficiencyLadder lists every tier from lowest to highest.
var ProficiencyLadder = []Proficiency{
	ProficiencyBeginner,
	ProficiencyIntermediate,
	ProficiencyAdvanced,
	ProficiencyExpert,
	ProficiencyMaster,
}

// Rank returns the zero-based position of p on the ladder, or -1 for an unknown tier.
func (p Proficiency) Rank() int {
	for i, tier := range ProficiencyLadder {
		if tier == p {
			return i
		}
	}
	return -1
}

func (p Proficiency) Valid() bool {
	return p.Rank() >= 0
}

func (c SkillCategory) Valid() bool {
	switch c {
	case CategoryTechnical, CategorySoft, CategoryLanguage, CategoryCertification:
		return true
	}
	return false
}

type Skill struct {
	ID              string        `json:"id"`
	ProfileID       string        `json:"profile_id"`
	Name            string        `json:"name" validate:"required,skill_name,max=100"`
	Category        SkillCategory `json:"category" validate:"required,oneof=technical soft language certification"`
	Proficiency     Proficiency   `json:"proficiency" validate:"required,oneof=beginner intermediate advanced expert master"`
	YearsExperience int           `json:"years_experience" validate:"min=0,max=80"`
	Verified        bool          `json:"verified"`
	Endorsements    int           `json:"endorsements" validate:"min=0"`
	Description     *string       `json:"description,omitempty" validate:"omitempty,max=2000,no_emoji"`
	VideoDemoURL    *string       `json:"video_demo_url,omitempty" validate:"omitempty,url"`
	VideoVerified   bool          `json:"video_verified"`
	AIRating        *int          `json:"ai_rating,omitempty" validate:"omitempty,min=1,max=5"`
	AIFeedback      *string       `json:"ai_feedback,omitempty"`
	VideoUploadedAt *time.Time    `json:"video_uploaded_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// HasVideo reports whether a non-empty demo URL is attached.
func (s *Skill) HasVideo() bool {
	return s.VideoDemoURL != nil && *s.VideoDemoURL != ""
}

// CreateSkillInput is what a candidate supplies when adding a skill.
type CreateSkillInput struct {
	Name            string        `json:"name" validate:"required,skill_name,max=100"`
	Category        SkillCategory `json:"category" validate:"required,oneof=technical soft language certification"`
	Proficiency     Proficiency   `json:"proficiency" validate:"required,oneof=beginner intermediate advanced expert master"`
	YearsExperience int           `json:"years_experience" validate:"min=0,max=80"`
	Description     *string       `json:"description" validate:"omitempty,max=2000,no_emoji"`
}

// UpdateSkillInput carries partial edits; nil fields are left untouched.
// An empty VideoDemoURL detaches the current video.
type UpdateSkillInput struct {
	YearsExperience *int    `json:"years_experience" validate:"omitempty,min=0,max=80"`
	Description     *string `json:"description" validate:"omitempty,max=2000,no_emoji"`
	VideoDemoURL    *string `json:"video_demo_url" validate:"omitempty,url"`
}

// SkillDetail is a skill together with its ranked improvements.
type SkillDetail struct {
	Skill        *Skill        `json:"skill"`
	Improvements []Improvement `json:"improvements"`
}

type SkillRepository interface {
	ListByProfile(ctx context.Context, profileID string) ([]Skill, error)
	GetByID(ctx context.Context, id string) (*Skill, error)
	Create(ctx context.Context, skill *Skill) error
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id string) error
	ApplyVideoAnalysis(ctx context.Context, skill *Skill, record *SkillVideoVerification) error
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]Skill, error)
	GetSkill(ctx context.Context, id string) (*SkillDetail, error)
	CreateSkill(ctx context.Context, input *CreateSkillInput) (*SkillDetail, error)
	UpdateSkill(ctx context.Context, id string, input *UpdateSkillInput) (*SkillDetail, error)
	DeleteSkill(ctx context.Context, id string) error
	AdvanceProficiency(ctx context.Context, id string) (*SkillDetail, error)
	GetImprovements(ctx context.Context, id string) ([]Improvement, error)
	GetLearningPath(ctx context.Context, id string) (*LearningPath, error)
}
