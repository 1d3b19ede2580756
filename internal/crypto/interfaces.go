// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the server-side cryptographic primitives: memory-hard
// password hashing and authenticated encryption of sensitive free-text fields.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	// Hash returns a self-describing encoded hash (parameters, salt, digest).
	Hash(password string) (string, error)

	// Verify compares password against an encoded hash in constant time.
	// It returns false without error on mismatch and an error only when the
	// encoded hash itself is malformed.
	Verify(password, encodedHash string) (bool, error)
}

// FieldCipher encrypts user-authored free text at rest.
//
// Nil and empty plaintexts encrypt to nil. Every encryption uses a fresh
// nonce, so equal plaintexts produce different ciphertexts.
type FieldCipher interface {
	Encrypt(plaintext *string) (*string, error)
	Decrypt(ciphertext *string) (*string, error)
}
