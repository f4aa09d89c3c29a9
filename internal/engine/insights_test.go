package engine_test

import (
	"testing"

	"reelskills-backend/internal/domain"
	"reelskills-backend/internal/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insightTypes(items []domain.Insight) []domain.InsightType {
	out := make([]domain.InsightType, len(items))
	for i, it := range items {
		out[i] = it.Type
	}
	return out
}

func findInsight(items []domain.Insight, typ domain.InsightType) *domain.Insight {
	for i := range items {
		if items[i].Type == typ {
			return &items[i]
		}
	}
	return nil
}

func TestGeneratePortfolioInsights(t *testing.T) {
	t.Run("Should return an empty list for no skills", func(t *testing.T) {
		got := engine.GeneratePortfolioInsights(nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Should skip learning-path when no skill has experience", func(t *testing.T) {
		got := engine.GeneratePortfolioInsights([]domain.Skill{
			{ID: "1", Name: "Go", Category: domain.CategoryTechnical, Proficiency: domain.ProficiencyBeginner},
		})
		assert.Nil(t, findInsight(got, domain.InsightLearningPath))
	})

	t.Run("Should reference the first advancable skill in input order", func(t *testing.T) {
		got := engine.GeneratePortfolioInsights([]domain.Skill{
			{ID: "1", Name: "Go", Proficiency: domain.ProficiencyMaster, YearsExperience: 9},
			{ID: "2", Name: "Rust", Proficiency: domain.ProficiencyIntermediate, YearsExperience: 2},
			{ID: "3", Name: "SQL", Proficiency: domain.ProficiencyBeginner, YearsExperience: 1},
		})
		in := findInsight(got, domain.InsightLearningPath)
		require.NotNil(t, in)
		assert.Equal(t, domain.PriorityHigh, in.Priority)
		assert.Equal(t, "2", in.Data.Skill.ID)
		assert.Equal(t, domain.ProficiencyAdvanced, in.Data.NextTier)
	})

	t.Run("Should not flag a cloud gap when a technical skill names a cloud keyword", func(t *testing.T) {
		got := engine.GeneratePortfolioInsights([]domain.Skill{
			{ID: "1", Name: "AWS Certified", Category: domain.CategoryTechnical, Proficiency: domain.ProficiencyAdvanced},
		})
		assert.Nil(t, findInsight(got, domain.InsightSkillGap))
	})

	t.Run("Should flag a cloud gap for technical skills without cloud", func(t *testing.T) {
		got := engine.GeneratePortfolioInsights([]domain.Skill{
			{ID: "1", Name: "Go", Category: domain.CategoryTechnical},
			{ID: "2", Name: "Docker Compose", Category: domain.CategorySoft},
		})
		in := findInsight(got, domain.InsightSkillGap)
		require.NotNil(t, in)
		assert.Equal(t, domain.PriorityMedium, in.Priority)
		assert.Equal(t, []string{"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes"}, in.Data.RecommendedSkills)
	})

	t.Run("Should not flag a cloud gap without technical skills", func(t *testing.T) {
		got := engine.GeneratePortfolioInsights([]domain.Skill{
			{ID: "1", Name: "Spanish", Category: domain.CategoryLanguage},
		})
		assert.Nil(t, findInsight(got, domain.InsightSkillGap))
	})

	t.Run("Should alert on market trends only when no trending skill is held", func(t *testing.T) {
		without := engine.GeneratePortfolioInsights([]domain.Skill{{ID: "1", Name: "Excel", Category: domain.CategorySoft}})
		in := findInsight(without, domain.InsightMarketTrend)
		require.NotNil(t, in)
		assert.Equal(t, domain.PriorityCritical, in.Priority)
		assert.Equal(t, 40, in.Data.GrowthRate)

		with := engine.GeneratePortfolioInsights([]domain.Skill{{ID: "1", Name: "applied machine learning", Category: domain.CategoryTechnical}})
		assert.Nil(t, findInsight(with, domain.InsightMarketTrend))
	})

	t.Run("Should recommend videos when fewer than half the skills have one", func(t *testing.T) {
		url := "https://cdn.example.com/v.mp4"
		got := engine.GeneratePortfolioInsights([]domain.Skill{
			{ID: "1", Name: "Go", VideoDemoURL: &url},
			{ID: "2", Name: "Rust"},
			{ID: "3", Name: "SQL"},
		})
		in := findInsight(got, domain.InsightRecommendation)
		require.NotNil(t, in)
		require.NotNil(t, in.Data.CompletionRate)
		assert.Equal(t, 33, *in.Data.CompletionRate)
		require.Len(t, in.Data.SkillsNeedingVideos, 2)
		assert.Equal(t, "Rust", in.Data.SkillsNeedingVideos[0].Name)
	})

	t.Run("Should not recommend videos for two skills or fewer", func(t *testing.T) {
		got := engine.GeneratePortfolioInsights([]domain.Skill{{ID: "1", Name: "Go"}, {ID: "2", Name: "Rust"}})
		assert.Nil(t, findInsight(got, domain.InsightRecommendation))
	})

	t.Run("Should emit insights in a fixed order", func(t *testing.T) {
		got := engine.GeneratePortfolioInsights([]domain.Skill{
			{ID: "1", Name: "Go", Category: domain.CategoryTechnical, Proficiency: domain.ProficiencyAdvanced, YearsExperience: 3},
			{ID: "2", Name: "Rust", Category: domain.CategoryTechnical},
			{ID: "3", Name: "SQL", Category: domain.CategoryTechnical},
		})
		assert.Equal(t, []domain.InsightType{
			domain.InsightLearningPath,
			domain.InsightMarketTrend,
			domain.InsightSkillGap,
			domain.InsightRecommendation,
		}, insightTypes(got))
	})
}

func TestRecommendSkills(t *testing.T) {
	t.Run("Should add complements and trending skills capped at eight", func(t *testing.T) {
		got := engine.RecommendSkills([]string{"Python", "JavaScript"})
		assert.LessOrEqual(t, len(got), engine.MaxRecommendations)
		assert.Equal(t, []string{"Django", "Flask", "Data Science", "Machine Learning"}, got[:4])
		assert.NotContains(t, got, "Python")
	})

	t.Run("Should skip trending skills already covered", func(t *testing.T) {
		got := engine.RecommendSkills([]string{"Machine Learning"})
		assert.Equal(t, []string{"Python", "TensorFlow", "PyTorch", "Data Science"}, got)
	})

	t.Run("Should recommend trending skills for an empty portfolio", func(t *testing.T) {
		assert.Equal(t, engine.TrendingSkills, engine.RecommendSkills(nil))
	})
}

func TestSkillMarketInfo(t *testing.T) {
	assert.Equal(t, "+40%", engine.SkillMarketInfo("AWS").Growth)
	fallback := engine.SkillMarketInfo("Cobol")
	assert.Equal(t, "Cobol", fallback.Name)
	assert.Equal(t, "Medium", fallback.Demand)
}

func TestProfileCompletion(t *testing.T) {
	first, last, headline := "Ada", "Lovelace", "Engineer"
	url := "https://cdn.example.com/v.mp4"

	t.Run("Should score an empty profile at zero", func(t *testing.T) {
		got := engine.ProfileCompletion(nil, nil)
		assert.Equal(t, 0, got.Percentage)
		assert.Equal(t, 6, got.Total)
	})

	t.Run("Should count each checklist item", func(t *testing.T) {
		profile := &domain.Profile{FirstName: &first, LastName: &last, Headline: &headline}
		got := engine.ProfileCompletion(profile, []domain.Skill{{Name: "Go", VideoDemoURL: &url}})
		assert.Equal(t, 4, got.Completed)
		assert.Equal(t, 67, got.Percentage)
		assert.Equal(t, "Great progress! Keep building your profile", got.Message)
	})
}
