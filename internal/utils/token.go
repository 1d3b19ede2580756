package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const verificationTokenBytes = 32

// GenerateVerificationToken returns a URL-safe random token with 256 bits
// of entropy.
func GenerateVerificationToken() (string, error) {
	buf := make([]byte, verificationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating verification token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
