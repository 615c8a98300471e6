package validation

import (
	"net/url"
)

const maxURLLength = 2048

// ValidateURL accepts absolute http(s) URLs; nil means the field was omitted
func ValidateURL(field string, value *string) error {
	if value == nil {
		return nil
	}

	if len(*value) > maxURLLength {
		return fieldError(field, field+" is too long")
	}

	u, err := url.Parse(*value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fieldError(field, field+" must be an http or https URL")
	}

	return nil
}
