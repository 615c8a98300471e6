package validation

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ParseRecordValue normalizes a record value to its canonical text form.
// Strings are trimmed; numbers keep their JSON literal ("5", "1.5e3").
// A missing or null value yields "" and is rejected later as required.
func ParseRecordValue(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s), nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}

	return "", fieldError("value", "value must be a string or a number")
}
