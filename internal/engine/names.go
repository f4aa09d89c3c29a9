package engine

import "strings"

// containsFold reports whether needle occurs in haystack ignoring case.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func containsAnyFold(haystack string, needles []string) bool {
	for _, n := range needles {
		if containsFold(haystack, n) {
			return true
		}
	}
	return false
}

// normalizeSkillName is the lookup key for skill-keyed tables.
func normalizeSkillName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
