package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

var nonDigits = regexp.MustCompile(`[^0-9+]`)

// NormalizeMobile strips spaces, dashes and everything else that is not a
// digit or leading plus, so "98765 43210" and "98765-43210" match the same
// vendor record.
func NormalizeMobile(mobile string) string {
	return nonDigits.ReplaceAllString(strings.TrimSpace(mobile), "")
}
