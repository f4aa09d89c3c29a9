package validation_test

import (
	"errors"
	"testing"

	"reelskills-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type skillForm struct {
	Name            string  `validate:"required,skill_name,max=100"`
	YearsExperience int     `validate:"min=0,max=80"`
	Description     *string `validate:"omitempty,no_emoji"`
	FirstName       string  `validate:"omitempty,valid_name"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestSkillName(t *testing.T) {
	v := newValidator()

	for _, name := range []string{"Go", "C++", "C#", "Node.js", "CI/CD", "ASP.NET (Core)", "Machine Learning"} {
		t.Run("Should accept "+name, func(t *testing.T) {
			assert.NoError(t, v.Struct(skillForm{Name: name}))
		})
	}

	for _, name := range []string{"   ", "Go 🚀", "<script>"} {
		t.Run("Should reject "+name, func(t *testing.T) {
			assert.Error(t, v.Struct(skillForm{Name: name}))
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := newValidator()
	desc := "great ✨"

	err := v.Struct(skillForm{Name: "", YearsExperience: 99, Description: &desc, FirstName: "R2D2"})
	require.Error(t, err)

	messages := validation.FormatValidationErrors(err)
	assert.Contains(t, messages, "Skill name: is required")
	assert.Contains(t, messages, "Years of experience: must be at most 80 years")
	assert.Contains(t, messages, "Description: must not contain emoji or special symbols")
	assert.Contains(t, messages, "First name: may only contain letters, spaces and . ' - /")

	t.Run("Should pass through non validation errors", func(t *testing.T) {
		assert.Equal(t, []string{"boom"}, validation.FormatValidationErrors(errors.New("boom")))
	})
}
