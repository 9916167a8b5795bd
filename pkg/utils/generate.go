package utils

import (
	"github.com/google/uuid"
)

// GenerateSessionToken returns a random opaque session token.
func GenerateSessionToken() string {
	return uuid.NewString()
}

// IsSessionToken reports whether s has the shape of a token we issued.
func IsSessionToken(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
