package domain

import "context"

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

type ImprovementType string

const (
	ImprovementVideo         ImprovementType = "video"
	ImprovementPractice      ImprovementType = "practice"
	ImprovementCertification ImprovementType = "certification"
	ImprovementExperience    ImprovementType = "experience"
	ImprovementProficiency   ImprovementType = "proficiency"
)

// ImprovementAction tells the dashboard which action a suggestion triggers.
type ImprovementAction struct {
	Kind           string      `json:"kind"`
	CurrentTier    Proficiency `json:"current_tier,omitempty"`
	NextTier       Proficiency `json:"next_tier,omitempty"`
	Resources      []string    `json:"resources,omitempty"`
	Certifications []string    `json:"certifications,omitempty"`
}

const (
	ActionUploadVideo        = "upload_video"
	ActionRequestAnalysis    = "request_analysis"
	ActionEditSkill          = "edit_skill"
	ActionAdvanceProficiency = "advance_proficiency"
	ActionOpenResources      = "open_resources"
	ActionViewCertifications = "view_certifications"
)

// Improvement is a per-skill suggestion. It is derived on demand and never stored.
type Improvement struct {
	Type          ImprovementType    `json:"type"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Priority      Priority           `json:"priority"`
	Actionable    bool               `json:"actionable"`
	EstimatedTime string             `json:"estimated_time,omitempty"`
	Action        *ImprovementAction `json:"action,omitempty"`
}

type InsightType string

const (
	InsightRecommendation InsightType = "recommendation"
	InsightLearningPath   InsightType = "learning-path"
	InsightMarketTrend    InsightType = "market-trend"
	InsightSkillGap       InsightType = "skill-gap"
)

type SkillRef struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Proficiency     Proficiency `json:"proficiency,omitempty"`
	YearsExperience int         `json:"years_experience,omitempty"`
}

type InsightData struct {
	Skill               *SkillRef   `json:"skill,omitempty"`
	NextTier            Proficiency `json:"next_tier,omitempty"`
	TrendingSkills      []string    `json:"trending_skills,omitempty"`
	GrowthRate          int         `json:"growth_rate,omitempty"`
	RecommendedSkills   []string    `json:"recommended_skills,omitempty"`
	Reason              string      `json:"reason,omitempty"`
	CompletionRate      *int        `json:"completion_rate,omitempty"`
	SkillsNeedingVideos []SkillRef  `json:"skills_needing_videos,omitempty"`
}

// Insight is a portfolio-level observation recomputed from the whole skill collection.
type Insight struct {
	Type        InsightType  `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Actionable  bool         `json:"actionable"`
	Priority    Priority     `json:"priority"`
	Data        *InsightData `json:"data,omitempty"`
}

type StepType string

const (
	StepCourse        StepType = "course"
	StepProject       StepType = "project"
	StepPractice      StepType = "practice"
	StepCertification StepType = "certification"
	StepMentorship    StepType = "mentorship"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type LearningStep struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        StepType   `json:"type"`
	Duration    string     `json:"duration"`
	Difficulty  Difficulty `json:"difficulty"`
	Completed   bool       `json:"completed"`
}

type LearningPath struct {
	Skill       SkillRef       `json:"skill"`
	CurrentTier Proficiency    `json:"current_tier"`
	TargetTier  Proficiency    `json:"target_tier"`
	Steps       []LearningStep `json:"steps"`
}

// SkillRecommendation pairs a recommended skill with its market outlook.
type SkillRecommendation struct {
	Name        string `json:"name"`
	Demand      string `json:"demand"`
	Growth      string `json:"growth"`
	Description string `json:"description"`
}

type CompletionItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Action      string `json:"action"`
}

type ProfileCompletion struct {
	Completed  int              `json:"completed"`
	Total      int              `json:"total"`
	Percentage int              `json:"percentage"`
	Message    string           `json:"message"`
	Items      []CompletionItem `json:"items"`
}

// InsightCache stores computed insights per profile, keyed by a generation that
// every invalidation bumps. Readers take the generation before loading skills
// and write back under it, so a result computed from rows older than the last
// invalidation lands on a key nobody reads. Implementations may be absent (nil
// client) in which case every read is a miss.
type InsightCache interface {
	Generation(ctx context.Context, profileID string) (int64, error)
	Get(ctx context.Context, profileID string, gen int64) ([]Insight, bool, error)
	Set(ctx context.Context, profileID string, gen int64, insights []Insight) error
	Invalidate(ctx context.Context, profileID string) error
}

type InsightUsecase interface {
	GetPortfolioInsights(ctx context.Context) ([]Insight, error)
	GetRecommendations(ctx context.Context) ([]SkillRecommendation, error)
	GetProfileCompletion(ctx context.Context) (*ProfileCompletion, error)
	Invalidate(ctx context.Context, profileID string)
}
