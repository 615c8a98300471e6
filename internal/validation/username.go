package validation

import "regexp"

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)

// ValidateUsername enforces 3-20 letters, digits, underscores or hyphens
func ValidateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return fieldError("username", "Invalid username: use 3-20 letters, digits, underscores or hyphens")
	}
	return nil
}
