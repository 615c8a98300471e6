package service

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

const APIKeyPrefix = "claw_"

// GenerateAPIKey returns "claw_" followed by the 32 hex digits of a random UUID.
func GenerateAPIKey() string {
	return APIKeyPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// HashAPIKey returns the hex BLAKE2b-256 digest stored in place of the key.
// Keys carry 122 random bits, so an unsalted digest is enough for lookup.
func HashAPIKey(apiKey string) string {
	sum := blake2b.Sum256([]byte(apiKey))
	return hex.EncodeToString(sum[:])
}
