// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/hkdf"
)

// Fixed KDF inputs. Changing either makes all stored ciphertext unreadable.
var (
	fieldKeySalt = []byte("nutri-keeper/wellness-notes/v1")
	fieldKeyInfo = []byte("aes-256-gcm field key")
)

// aesFieldCipher is the AES-256-GCM implementation of [FieldCipher].
// The key is derived from the configured secret on first use.
type aesFieldCipher struct {
	secret string

	once    sync.Once
	aead    cipher.AEAD
	initErr error
}

// NewFieldCipher returns a [FieldCipher] keyed by secret. An empty secret is
// accepted here and reported as [ErrMissingKey] on first use.
func NewFieldCipher(secret string) FieldCipher {
	return &aesFieldCipher{secret: secret}
}

func (c *aesFieldCipher) init() error {
	c.once.Do(func() {
		if c.secret == "" {
			c.initErr = ErrMissingKey
			return
		}

		key, err := deriveFieldKey(c.secret)
		if err != nil {
			c.initErr = err
			return
		}

		block, err := aes.NewCipher(key)
		if err != nil {
			c.initErr = fmt.Errorf("create cipher: %w", err)
			return
		}
		c.aead, c.initErr = cipher.NewGCM(block)
	})
	return c.initErr
}

// deriveFieldKey expands secret into a 256-bit key with HKDF-SHA256.
func deriveFieldKey(secret string) ([]byte, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), fieldKeySalt, fieldKeyInfo), key); err != nil {
		return nil, fmt.Errorf("derive field key: %w", err)
	}
	return key, nil
}

// Encrypt implements [FieldCipher]. The output is base64(nonce ‖ ciphertext).
func (c *aesFieldCipher) Encrypt(plaintext *string) (*string, error) {
	if plaintext == nil || *plaintext == "" {
		return nil, nil
	}
	if err := c.init(); err != nil {
		return nil, err
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(*plaintext), nil)
	encoded := base64.StdEncoding.EncodeToString(sealed)
	return &encoded, nil
}

// Decrypt implements [FieldCipher].
func (c *aesFieldCipher) Decrypt(ciphertext *string) (*string, error) {
	if ciphertext == nil || *ciphertext == "" {
		return nil, nil
	}
	if err := c.init(); err != nil {
		return nil, err
	}

	blob, err := base64.StdEncoding.DecodeString(*ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCiphertext, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize+c.aead.Overhead() {
		return nil, ErrInvalidCiphertext
	}

	nonce, sealed := blob[:nonceSize], blob[nonceSize:]
	plain, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCiphertext, err)
	}

	result := string(plain)
	return &result, nil
}
