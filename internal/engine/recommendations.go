package engine

import "reelskills-backend/internal/domain"

// MaxRecommendations caps RecommendSkills output.
const MaxRecommendations = 8

var complementarySkills = map[string][]string{
	"JavaScript":       {"TypeScript", "React", "Node.js", "Vue.js"},
	"Python":           {"Django", "Flask", "Data Science", "Machine Learning"},
	"React":            {"Next.js", "Redux", "TypeScript", "GraphQL"},
	"AWS":              {"Docker", "Kubernetes", "Terraform", "DevOps"},
	"Machine Learning": {"Python", "TensorFlow", "PyTorch", "Data Science"},
	"Data Science":     {"SQL", "Python", "R", "Tableau"},
}

// RecommendSkills suggests skills that complement current ones, plus the
// trending skills when none is held yet.
func RecommendSkills(current []string) []string {
	held := make(map[string]struct{}, len(current))
	for _, name := range current {
		held[normalizeSkillName(name)] = struct{}{}
	}

	seen := make(map[string]struct{})
	out := make([]string, 0, MaxRecommendations)
	add := func(name string) {
		key := normalizeSkillName(name)
		if _, ok := held[key]; ok {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}

	for _, name := range current {
		for canonical, related := range complementarySkills {
			if normalizeSkillName(canonical) != normalizeSkillName(name) {
				continue
			}
			for _, r := range related {
				add(r)
			}
		}
	}

	hasTrending := false
	for _, name := range current {
		if containsAnyFold(name, TrendingSkills) {
			hasTrending = true
			break
		}
	}
	if !hasTrending {
		for _, t := range TrendingSkills {
			add(t)
		}
	}

	if len(out) > MaxRecommendations {
		out = out[:MaxRecommendations]
	}
	return out
}

var marketInfo = map[string]domain.SkillRecommendation{
	"artificial intelligence": {Demand: "Very High", Growth: "+45%", Description: "AI and machine learning are transforming industries worldwide."},
	"machine learning":        {Demand: "Very High", Growth: "+42%", Description: "Essential for data-driven decision making and automation."},
	"python":                  {Demand: "High", Growth: "+38%", Description: "Versatile programming language for AI, web development, and data science."},
	"data science":            {Demand: "High", Growth: "+35%", Description: "Extract insights from data to drive business decisions."},
	"aws":                     {Demand: "High", Growth: "+40%", Description: "Leading cloud platform for scalable applications and services."},
	"azure":                   {Demand: "High", Growth: "+38%", Description: "Microsoft's cloud platform with enterprise integration."},
	"google cloud":            {Demand: "Medium", Growth: "+35%", Description: "Google's cloud platform with strong AI and analytics tools."},
	"docker":                  {Demand: "Medium", Growth: "+30%", Description: "Containerization technology for application deployment."},
	"kubernetes":              {Demand: "Medium", Growth: "+32%", Description: "Container orchestration for managing scalable applications."},
}

// SkillMarketInfo returns demand and growth figures for a skill name.
func SkillMarketInfo(name string) domain.SkillRecommendation {
	info, ok := marketInfo[normalizeSkillName(name)]
	if !ok {
		info = domain.SkillRecommendation{Demand: "Medium", Growth: "+25%", Description: "Valuable skill for career advancement."}
	}
	info.Name = name
	return info
}
