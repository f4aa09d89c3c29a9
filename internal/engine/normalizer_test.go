package engine_test

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"reelskills-backend/internal/domain"
	"reelskills-backend/internal/engine"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVideoAnalysis(t *testing.T) {
	const skill = "Python"
	tier := domain.ProficiencyAdvanced

	t.Run("Should fill every default for an empty object", func(t *testing.T) {
		got := engine.NormalizeVideoAnalysis(map[string]any{}, skill, tier)
		assert.Equal(t, 3, got.Rating)
		assert.Equal(t, 75, got.Confidence)
		assert.False(t, got.Verified)
		assert.Contains(t, got.Feedback, skill)
		assert.Contains(t, got.Feedback, string(tier))
		assert.NotEmpty(t, got.Strengths)
		assert.NotEmpty(t, got.Improvements)
	})

	t.Run("Should clamp the rating into range", func(t *testing.T) {
		assert.Equal(t, 5, engine.NormalizeVideoAnalysis(map[string]any{"rating": 99.0}, skill, tier).Rating)
		assert.Equal(t, 1, engine.NormalizeVideoAnalysis(map[string]any{"rating": -4.0}, skill, tier).Rating)
		assert.Equal(t, 4, engine.NormalizeVideoAnalysis(map[string]any{"rating": "3.6"}, skill, tier).Rating)
		assert.Equal(t, 5, engine.NormalizeVideoAnalysis(map[string]any{"rating": 1e300}, skill, tier).Rating)
	})

	t.Run("Should default a non-numeric rating", func(t *testing.T) {
		got := engine.NormalizeVideoAnalysis(map[string]any{"rating": "great"}, skill, tier)
		assert.Equal(t, 3, got.Rating)
		assert.False(t, got.Verified)
	})

	t.Run("Should clamp the confidence into range", func(t *testing.T) {
		assert.Equal(t, 100, engine.NormalizeVideoAnalysis(map[string]any{"confidence": 250.0}, skill, tier).Confidence)
		assert.Equal(t, 0, engine.NormalizeVideoAnalysis(map[string]any{"confidence": -1.0}, skill, tier).Confidence)
	})

	t.Run("Should truncate long lists to five entries", func(t *testing.T) {
		raw := map[string]any{"strengths": []any{"a", "b", "c", "d", "e", "f", "g"}}
		got := engine.NormalizeVideoAnalysis(raw, skill, tier)
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got.Strengths)
	})

	t.Run("Should drop non-string and blank list entries", func(t *testing.T) {
		raw := map[string]any{"improvements": []any{1.0, " ", "pace", nil, "lighting"}}
		got := engine.NormalizeVideoAnalysis(raw, skill, tier)
		assert.Equal(t, []string{"pace", "lighting"}, got.Improvements)
	})

	t.Run("Should verify a good rating unless told otherwise", func(t *testing.T) {
		assert.True(t, engine.NormalizeVideoAnalysis(map[string]any{"rating": 4.0}, skill, tier).Verified)
		assert.False(t, engine.NormalizeVideoAnalysis(map[string]any{"rating": 4.0, "verified": false}, skill, tier).Verified)
		assert.False(t, engine.NormalizeVideoAnalysis(map[string]any{"rating": 2.0, "verified": true}, skill, tier).Verified)
	})

	t.Run("Should parse JSON text and JSON wrapped in prose", func(t *testing.T) {
		got := engine.NormalizeVideoAnalysis(`{"rating": 5, "feedback": "Excellent"}`, skill, tier)
		assert.Equal(t, 5, got.Rating)
		assert.Equal(t, "Excellent", got.Feedback)

		fenced := "Here is the result:\n```json\n{\"rating\": 4, \"confidence\": 88}\n```"
		got = engine.NormalizeVideoAnalysis(fenced, skill, tier)
		assert.Equal(t, 4, got.Rating)
		assert.Equal(t, 88, got.Confidence)

		got = engine.NormalizeVideoAnalysis(json.RawMessage(`{"rating":2}`), skill, tier)
		assert.Equal(t, 2, got.Rating)
	})

	t.Run("Should degrade unstructured payloads without failing", func(t *testing.T) {
		for _, raw := range []any{nil, 42, []any{"x"}, "the video was fine", []byte("not json"), true} {
			got := engine.NormalizeVideoAnalysis(raw, skill, tier)
			assert.Equal(t, 3, got.Rating)
			assert.Equal(t, engine.DegradedConfidence, got.Confidence)
			assert.False(t, got.Verified)
			assert.NotEmpty(t, got.Feedback)
			assert.NotEmpty(t, got.Strengths)
			assert.NotEmpty(t, got.Improvements)
		}
	})

	t.Run("Should replace free text with the templated feedback", func(t *testing.T) {
		want := "Solid Python demonstration. Consider adding more advanced techniques to showcase your advanced proficiency."
		for _, raw := range []any{"Clear explanation of decorators.", `"quoted text"`, "<html><body>bad gateway</body></html>"} {
			got := engine.NormalizeVideoAnalysis(raw, skill, tier)
			assert.Equal(t, want, got.Feedback)
		}
	})

	t.Run("Should cap oversized feedback and list entries", func(t *testing.T) {
		raw := map[string]any{
			"feedback":  strings.Repeat("é", engine.MaxFeedbackRunes+500),
			"strengths": []any{strings.Repeat("x", engine.MaxListEntryRunes*3)},
		}
		got := engine.NormalizeVideoAnalysis(raw, skill, tier)
		assert.Equal(t, engine.MaxFeedbackRunes, utf8.RuneCountInString(got.Feedback))
		assert.True(t, utf8.ValidString(got.Feedback))
		assert.Len(t, got.Strengths[0], engine.MaxListEntryRunes)
	})
}
