// Package engine derives improvements, learning paths and portfolio insights
// from skill records. Every function here is pure and safe to call repeatedly.
package engine

import (
	"strings"

	"reelskills-backend/internal/domain"
)

// NextTier returns the tier directly above current. Master is its own ceiling.
func NextTier(current domain.Proficiency) domain.Proficiency {
	rank := current.Rank()
	if rank < 0 || rank == len(domain.ProficiencyLadder)-1 {
		return domain.ProficiencyMaster
	}
	return domain.ProficiencyLadder[rank+1]
}

// ParseProficiency accepts any letter case and surrounding spaces.
func ParseProficiency(s string) (domain.Proficiency, bool) {
	p := domain.Proficiency(strings.ToLower(strings.TrimSpace(s)))
	return p, p.Valid()
}

// tierLabel capitalises a tier for titles ("expert" -> "Expert").
func tierLabel(p domain.Proficiency) string {
	s := string(p)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
