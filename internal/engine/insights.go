package engine

import (
	"fmt"
	"math"

	"reelskills-backend/internal/domain"
)

// TrendingSkills are matched by case-insensitive substring against skill names.
var TrendingSkills = []string{"Artificial Intelligence", "Machine Learning", "Cloud Computing", "Cybersecurity"}

var (
	marketTrendRecommendations = []string{"Artificial Intelligence", "Machine Learning", "AWS", "Python"}
	cloudKeywords              = []string{"aws", "azure", "cloud", "docker", "kubernetes"}
	cloudRecommendations       = []string{"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes"}
)

const (
	MarketGrowthRate       = 40
	VideoCompletionMinimum = 50
)

// GeneratePortfolioInsights derives portfolio insights from the full collection.
// Output order is learning-path, market-trend, skill-gap, recommendation.
func GeneratePortfolioInsights(skills []domain.Skill) []domain.Insight {
	insights := []domain.Insight{}
	if len(skills) == 0 {
		return insights
	}

	if in, ok := advancementInsight(skills); ok {
		insights = append(insights, in)
	}
	if in, ok := marketTrendInsight(skills); ok {
		insights = append(insights, in)
	}
	if in, ok := cloudGapInsight(skills); ok {
		insights = append(insights, in)
	}
	if in, ok := videoCoverageInsight(skills); ok {
		insights = append(insights, in)
	}
	return insights
}

func advancementInsight(skills []domain.Skill) (domain.Insight, bool) {
	for _, s := range skills {
		if s.Proficiency == domain.ProficiencyMaster || s.YearsExperience <= 0 {
			continue
		}
		ref := skillRef(s)
		return domain.Insight{
			Type:        domain.InsightLearningPath,
			Title:       "Skill Advancement Opportunity",
			Description: fmt.Sprintf("Your %s skills show %d years of experience. Consider advancing to the next proficiency level.", s.Name, s.YearsExperience),
			Actionable:  true,
			Priority:    domain.PriorityHigh,
			Data: &domain.InsightData{
				Skill:    &ref,
				NextTier: NextTier(s.Proficiency),
			},
		}, true
	}
	return domain.Insight{}, false
}

func marketTrendInsight(skills []domain.Skill) (domain.Insight, bool) {
	for _, s := range skills {
		if containsAnyFold(s.Name, TrendingSkills) {
			return domain.Insight{}, false
		}
	}
	return domain.Insight{
		Type:        domain.InsightMarketTrend,
		Title:       "High-Demand Skills Alert",
		Description: fmt.Sprintf("AI and Cloud Computing skills are seeing %d%% growth in job postings. Consider adding these to your portfolio.", MarketGrowthRate),
		Actionable:  true,
		Priority:    domain.PriorityCritical,
		Data: &domain.InsightData{
			TrendingSkills: append([]string(nil), marketTrendRecommendations...),
			GrowthRate:     MarketGrowthRate,
		},
	}, true
}

func cloudGapInsight(skills []domain.Skill) (domain.Insight, bool) {
	technical := 0
	for _, s := range skills {
		if s.Category != domain.CategoryTechnical {
			continue
		}
		technical++
		if containsAnyFold(s.Name, cloudKeywords) {
			return domain.Insight{}, false
		}
	}
	if technical == 0 {
		return domain.Insight{}, false
	}
	return domain.Insight{
		Type:        domain.InsightSkillGap,
		Title:       "Cloud Skills Gap Identified",
		Description: "Your technical skills would benefit from cloud computing expertise. 85% of companies are adopting cloud technologies.",
		Actionable:  true,
		Priority:    domain.PriorityMedium,
		Data: &domain.InsightData{
			RecommendedSkills: append([]string(nil), cloudRecommendations...),
			Reason:            "Cloud skills complement your existing technical expertise",
		},
	}, true
}

func videoCoverageInsight(skills []domain.Skill) (domain.Insight, bool) {
	if len(skills) <= 2 {
		return domain.Insight{}, false
	}
	var missing []domain.SkillRef
	for _, s := range skills {
		if !s.HasVideo() {
			missing = append(missing, domain.SkillRef{ID: s.ID, Name: s.Name})
		}
	}
	withVideo := len(skills) - len(missing)
	rate := float64(withVideo) / float64(len(skills)) * 100
	if rate >= VideoCompletionMinimum {
		return domain.Insight{}, false
	}
	rounded := int(math.Round(rate))
	return domain.Insight{
		Type:        domain.InsightRecommendation,
		Title:       "Strengthen Your Portfolio",
		Description: fmt.Sprintf("Only %d%% of your skills have video demonstrations. Adding videos can increase profile views by 300%%.", rounded),
		Actionable:  true,
		Priority:    domain.PriorityMedium,
		Data: &domain.InsightData{
			CompletionRate:      &rounded,
			SkillsNeedingVideos: missing,
		},
	}, true
}
