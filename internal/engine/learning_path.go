package engine

import (
	"fmt"

	"reelskills-backend/internal/domain"
)

// GenerateLearningPath returns the ordered steps towards the next tier.
// Advanced and expert skills get a fifth certification step.
func GenerateLearningPath(skill domain.Skill) []domain.LearningStep {
	name := skill.Name
	steps := []domain.LearningStep{
		{
			Title:       fmt.Sprintf("Advanced %s Fundamentals", name),
			Description: fmt.Sprintf("Deepen your understanding of core %s concepts and best practices.", name),
			Type:        domain.StepCourse,
			Duration:    "2-3 weeks",
			Difficulty:  domain.DifficultyMedium,
		},
		{
			Title:       fmt.Sprintf("Build a %s Project", name),
			Description: fmt.Sprintf("Apply your knowledge by building a real-world project using %s.", name),
			Type:        domain.StepProject,
			Duration:    "3-4 weeks",
			Difficulty:  domain.DifficultyHard,
		},
		{
			Title:       fmt.Sprintf("%s Best Practices", name),
			Description: "Learn industry standards and advanced techniques from experienced practitioners.",
			Type:        domain.StepCourse,
			Duration:    "1-2 weeks",
			Difficulty:  domain.DifficultyMedium,
		},
		{
			Title:       "Peer Review & Feedback",
			Description: fmt.Sprintf("Get your work reviewed by peers and mentors in the %s community.", name),
			Type:        domain.StepMentorship,
			Duration:    "1 week",
			Difficulty:  domain.DifficultyEasy,
		},
	}

	if skill.Proficiency == domain.ProficiencyAdvanced || skill.Proficiency == domain.ProficiencyExpert {
		steps = append(steps, domain.LearningStep{
			Title:       fmt.Sprintf("%s Professional Certification", name),
			Description: fmt.Sprintf("Earn a recognized certification to validate your %s expertise.", name),
			Type:        domain.StepCertification,
			Duration:    "2-4 weeks",
			Difficulty:  domain.DifficultyHard,
		})
	}

	for i := range steps {
		steps[i].ID = i + 1
		steps[i].Completed = false
	}
	return steps
}

// BuildLearningPath wraps the generated steps with the current and target tier.
func BuildLearningPath(skill domain.Skill) domain.LearningPath {
	return domain.LearningPath{
		Skill:       skillRef(skill),
		CurrentTier: skill.Proficiency,
		TargetTier:  NextTier(skill.Proficiency),
		Steps:       GenerateLearningPath(skill),
	}
}

func skillRef(skill domain.Skill) domain.SkillRef {
	return domain.SkillRef{
		ID:              skill.ID,
		Name:            skill.Name,
		Proficiency:     skill.Proficiency,
		YearsExperience: skill.YearsExperience,
	}
}
