package engine

import (
	"sort"

	"reelskills-backend/internal/domain"
)

var priorityWeights = map[domain.Priority]int{
	domain.PriorityCritical: 4,
	domain.PriorityHigh:     3,
	domain.PriorityMedium:   2,
	domain.PriorityLow:      1,
}

// PriorityWeight maps a priority to its sort weight; unknown priorities weigh 0.
func PriorityWeight(p domain.Priority) int {
	return priorityWeights[p]
}

// RankImprovements returns a copy sorted by descending priority. Equal
// priorities keep their emission order.
func RankImprovements(improvements []domain.Improvement) []domain.Improvement {
	ranked := make([]domain.Improvement, len(improvements))
	copy(ranked, improvements)
	sort.SliceStable(ranked, func(i, j int) bool {
		return PriorityWeight(ranked[i].Priority) > PriorityWeight(ranked[j].Priority)
	})
	return ranked
}

// SkillImprovements is the evaluate-then-rank pipeline used for a focused skill.
func SkillImprovements(skill domain.Skill) []domain.Improvement {
	return RankImprovements(EvaluateImprovements(skill))
}
