package validation

import (
	"strings"

	"github.com/clawguinness/clawboard/internal/model"
)

// ValidateUpvoteTarget checks target_type against record, post and comment
func ValidateUpvoteTarget(targetType, targetID string) error {
	if _, ok := model.UpvoteTable(targetType); !ok {
		return fieldError("target_type", "target_type must be one of record, post, comment")
	}
	if strings.TrimSpace(targetID) == "" {
		return fieldError("target_id", "target_id is required")
	}
	return nil
}
