package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"reelskills-backend/internal/domain"
)

const (
	DefaultRating          = 3
	DefaultConfidence      = 75
	DegradedConfidence     = 60
	MaxAnalysisListEntries = 5
	MaxFeedbackRunes       = 2000
	MaxListEntryRunes      = 300

	minRating         = 1
	maxRating         = 5
	minVerifiedRating = 3
	minConfidence     = 0
	maxConfidence     = 100
)

// NormalizeVideoAnalysis converts an untrusted analyzer payload into a bounded
// result. It accepts decoded JSON values, raw JSON bytes or strings, and free
// text, and never fails.
func NormalizeVideoAnalysis(raw any, skillName string, tier domain.Proficiency) domain.VideoAnalysisResult {
	fields := coercePayload(raw)
	if fields == nil {
		return degradedResult(skillName, tier)
	}

	result := domain.VideoAnalysisResult{
		Rating:     DefaultRating,
		Confidence: DefaultConfidence,
	}

	rating, hasRating := numberField(fields, "rating")
	if hasRating {
		result.Rating = clampRound(rating, minRating, maxRating)
	}

	if c, ok := numberField(fields, "confidence"); ok {
		result.Confidence = clampRound(c, minConfidence, maxConfidence)
	}

	explicitlyUnverified := false
	if v, ok := fields["verified"].(bool); ok && !v {
		explicitlyUnverified = true
	}
	result.Verified = hasRating && result.Rating >= minVerifiedRating && !explicitlyUnverified

	result.Feedback = truncateRunes(strings.TrimSpace(stringField(fields, "feedback")), MaxFeedbackRunes)
	if result.Feedback == "" {
		result.Feedback = fallbackFeedback(skillName, tier)
	}

	result.Strengths = boundedList(fields["strengths"])
	if len(result.Strengths) == 0 {
		result.Strengths = fallbackStrengths(skillName)
	}
	result.Improvements = boundedList(fields["improvements"])
	if len(result.Improvements) == 0 {
		result.Improvements = fallbackImprovements(skillName)
	}

	return result
}

// degradedResult is used when the payload carries no structure at all. The
// unparsed text never reaches the result.
func degradedResult(skillName string, tier domain.Proficiency) domain.VideoAnalysisResult {
	return domain.VideoAnalysisResult{
		Rating:       DefaultRating,
		Feedback:     fallbackFeedback(skillName, tier),
		Verified:     false,
		Strengths:    fallbackStrengths(skillName),
		Improvements: fallbackImprovements(skillName),
		Confidence:   DegradedConfidence,
	}
}

// coercePayload returns the payload as an object, or nil when none can be found.
func coercePayload(raw any) map[string]any {
	switch v := raw.(type) {
	case map[string]any:
		return v
	case json.RawMessage:
		return coerceText(string(v))
	case []byte:
		return coerceText(string(v))
	case string:
		return coerceText(v)
	case nil:
		return nil
	default:
		// Structs and other typed values round-trip through JSON.
		b, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		var m map[string]any
		if json.Unmarshal(b, &m) == nil && m != nil {
			return m
		}
		return nil
	}
}

func coerceText(s string) map[string]any {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	var m map[string]any
	if json.Unmarshal([]byte(trimmed), &m) == nil && m != nil {
		return m
	}
	// Models often wrap the object in prose or code fences.
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end > start {
		if json.Unmarshal([]byte(trimmed[start:end+1]), &m) == nil && m != nil {
			return m
		}
	}
	return nil
}

func numberField(fields map[string]any, key string) (float64, bool) {
	var f float64
	switch v := fields[key].(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func boundedList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		if strs, isStrs := v.([]string); isStrs {
			items = make([]any, len(strs))
			for i, s := range strs {
				items[i] = s
			}
		} else {
			return nil
		}
	}
	out := make([]string, 0, MaxAnalysisListEntries)
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, truncateRunes(s, MaxListEntryRunes))
		if len(out) == MaxAnalysisListEntries {
			break
		}
	}
	return out
}

// clampRound clamps before converting so huge upstream numbers cannot overflow int.
func clampRound(v float64, lo, hi int) int {
	v = math.Round(v)
	if v < float64(lo) {
		return lo
	}
	if v > float64(hi) {
		return hi
	}
	return int(v)
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n]))
}

func fallbackFeedback(skillName string, tier domain.Proficiency) string {
	return fmt.Sprintf("Solid %s demonstration. Consider adding more advanced techniques to showcase your %s proficiency.", skillName, tier)
}

func fallbackStrengths(skillName string) []string {
	return []string{fmt.Sprintf("Demonstrates practical %s knowledge", skillName)}
}

func fallbackImprovements(skillName string) []string {
	return []string{
		fmt.Sprintf("Show more advanced %s techniques", skillName),
		"Walk through a complex problem-solving scenario",
	}
}
