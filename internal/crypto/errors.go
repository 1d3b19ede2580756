package crypto

import "errors"

var (
	// ErrMissingKey is returned when the field cipher has no configured secret.
	ErrMissingKey = errors.New("encryption key is not configured")

	// ErrInvalidCiphertext is returned for ciphertext that is not valid
	// base64, is truncated, or fails authentication.
	ErrInvalidCiphertext = errors.New("invalid or tampered ciphertext")

	// ErrMalformedHash is returned when an encoded password hash cannot be parsed.
	ErrMalformedHash = errors.New("malformed password hash")
)
