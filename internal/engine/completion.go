package engine

import (
	"fmt"
	"math"
	"strings"

	"reelskills-backend/internal/domain"
)

// ProfileCompletion scores a profile against the six-item checklist.
func ProfileCompletion(profile *domain.Profile, skills []domain.Skill) domain.ProfileCompletion {
	videos, verified := 0, 0
	for _, s := range skills {
		if s.HasVideo() {
			videos++
		}
		if s.VideoVerified {
			verified++
		}
	}

	var hasName, hasHeadline, hasSummary bool
	if profile != nil {
		hasName = present(profile.FirstName) && present(profile.LastName)
		hasHeadline = present(profile.Headline)
		hasSummary = present(profile.Summary)
	}

	items := []domain.CompletionItem{
		{ID: "profile", Title: "Complete Profile", Description: "Add your name and basic info", Completed: hasName, Action: "edit-profile"},
		{ID: "headline", Title: "Add Headline", Description: "Professional title or role", Completed: hasHeadline, Action: "edit-profile"},
		{ID: "summary", Title: "Write Summary", Description: "Brief professional overview", Completed: hasSummary, Action: "edit-profile"},
		{ID: "skills", Title: "Add Skills", Description: fmt.Sprintf("%d skills added", len(skills)), Completed: len(skills) > 0, Action: "add-skill"},
		{ID: "videos", Title: "Upload ReelSkills", Description: fmt.Sprintf("%d videos uploaded", videos), Completed: videos > 0, Action: "upload-video"},
		{ID: "verified", Title: "Get Verified", Description: fmt.Sprintf("%d skills verified", verified), Completed: verified > 0, Action: "verify-skills"},
	}

	completed := 0
	for _, it := range items {
		if it.Completed {
			completed++
		}
	}
	pct := int(math.Round(float64(completed) / float64(len(items)) * 100))

	return domain.ProfileCompletion{
		Completed:  completed,
		Total:      len(items),
		Percentage: pct,
		Message:    completionMessage(pct),
		Items:      items,
	}
}

func completionMessage(pct int) string {
	switch {
	case pct >= 80:
		return "Excellent! Your profile is nearly complete"
	case pct >= 60:
		return "Great progress! Keep building your profile"
	case pct >= 40:
		return "Good start! Add more to stand out"
	default:
		return "Let's build your professional profile"
	}
}

func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
