// Package uuid generates the identifiers used for primary keys and
// referral codes.
package uuid

import (
	"strings"

	googleuuid "github.com/google/uuid"
)

// ReferralCodeLength is the number of characters in a generated referral code.
const ReferralCodeLength = 10

// New generates a time-ordered UUIDv7 string suitable for primary keys.
// It falls back to a random UUIDv4 if the v7 generator fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// NewReferralCode returns a short, upper-case code taken from the random
// tail of a UUIDv4. Codes are not guaranteed unique; callers rely on the
// unique index and retry on collision.
func NewReferralCode() string {
	raw := strings.ReplaceAll(googleuuid.New().String(), "-", "")
	return strings.ToUpper(raw[len(raw)-ReferralCodeLength:])
}

// Parse validates and normalizes a UUID string.
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
