package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field length limits, in characters
const (
	MaxCategoryLength    = 50
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxValueLength       = 100
	MaxUnitLength        = 50
	MaxPostLength        = 20000
	MaxCommentLength     = 5000
	MaxDisplayNameLength = 50
	MaxBioLength         = 500
)

// ValidateRequired checks a trimmed required text field
func ValidateRequired(field, value string, maxLen int) error {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		return fieldError(field, field+" is required")
	}

	return validateLength(field, trimmed, maxLen)
}

// ValidateOptional checks a nullable text field; nil is always valid
func ValidateOptional(field string, value *string, maxLen int) error {
	if value == nil {
		return nil
	}
	return validateLength(field, *value, maxLen)
}

func validateLength(field, value string, maxLen int) error {
	if utf8.RuneCountInString(value) > maxLen {
		return fieldError(field, fmt.Sprintf("%s is too long (max %d characters)", field, maxLen))
	}
	return nil
}
