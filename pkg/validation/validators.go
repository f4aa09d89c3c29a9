package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	// Letters, spaces and the punctuation found in real names: . ' - /
	nameRegex = regexp.MustCompile(`^[\p{L} .'/-]+$`)

	// Skill names also need digits and tech punctuation: C++, C#, Node.js, CI/CD, ASP.NET (Core)
	skillNameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&()+#,_-]+$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("skill_name", SkillName)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
}

// ValidName validates that a string contains only valid name characters
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// SkillName rejects blank names and anything outside the skill name alphabet.
func SkillName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if strings.TrimSpace(val) == "" {
		return false
	}
	return skillNameRegex.MatchString(val) && noEmoji(val)
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	return noEmoji(fl.Field().String())
}

func noEmoji(val string) bool {
	for _, r := range val {
		// Supplementary planes are mostly emoji/symbols
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}
