package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	// Skill fields
	"Name":            "Skill name",
	"Category":        "Category",
	"Proficiency":     "Proficiency",
	"YearsExperience": "Years of experience",
	"Description":     "Description",
	"VideoDemoURL":    "Video URL",
	"Endorsements":    "Endorsements",

	// Profile fields
	"FirstName": "First name",
	"LastName":  "Last name",
	"Headline":  "Headline",
	"Summary":   "Summary",
}

// ValidationRules contains unit hints for min/max messages
var ValidationRules = map[string]map[string]interface{}{
	"YearsExperience": {"min": 0, "max": 80, "unit": "years"},
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	fieldName := e.Field()
	label := getFieldLabel(fieldName)
	tag := e.Tag()
	param := e.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s: is required", label)

	case "min":
		if unit, ok := unitFor(fieldName); ok {
			return fmt.Sprintf("%s: must be at least %s %s", label, param, unit)
		}
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)

	case "max":
		if unit, ok := unitFor(fieldName); ok {
			return fmt.Sprintf("%s: must be at most %s %s", label, param, unit)
		}
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.Join(strings.Fields(param), ", "))

	case "url":
		return fmt.Sprintf("%s: must be a valid URL", label)

	case "valid_name":
		return fmt.Sprintf("%s: may only contain letters, spaces and . ' - /", label)

	case "skill_name":
		return fmt.Sprintf("%s: must not be blank and may only contain letters, digits, spaces and . ' / & ( ) + # , _ -", label)

	case "no_emoji":
		return fmt.Sprintf("%s: must not contain emoji or special symbols", label)

	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, tag)
	}
}

func unitFor(fieldName string) (interface{}, bool) {
	rules, ok := ValidationRules[fieldName]
	if !ok {
		return nil, false
	}
	unit, ok := rules["unit"]
	return unit, ok
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
