// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// EnvelopePrefix marks values produced by the current field cipher. It doubles
// as the migration marker: anything carrying it is already encrypted.
const EnvelopePrefix = "pv1:"

const (
	gcmNonceSize = 12
	gcmTagSize   = 16
)

// envelopeEncoding rejects non-canonical trailing bits so that every change
// to the textual envelope changes the decoded bytes.
var envelopeEncoding = base64.StdEncoding.Strict()

// aesFieldCipher is the AES-256-GCM implementation of [FieldCipher].
//
// Envelope layout:
//
//	"pv1:" ‖ base64(nonce(12) ‖ ciphertext ‖ tag(16))
type aesFieldCipher struct {
	gcm cipher.AEAD
}

// NewFieldCipher builds a [FieldCipher] bound to key.
func NewFieldCipher(key Key) (FieldCipher, error) {
	if key.IsZero() {
		return nil, ErrMissingEncryptionKey
	}

	block, err := aes.NewCipher(key.material[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &aesFieldCipher{gcm: gcm}, nil
}

// Encrypt implements [FieldCipher]. A fresh random nonce is drawn for every
// call and prepended to the sealed bytes.
func (c *aesFieldCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := c.gcm.Seal(nonce, nonce, []byte(plaintext), nil)

	return EnvelopePrefix + envelopeEncoding.EncodeToString(blob), nil
}

// Decrypt implements [FieldCipher].
func (c *aesFieldCipher) Decrypt(envelope string) (string, error) {
	blob, err := decodeEnvelope(envelope)
	if err != nil {
		return "", err
	}

	nonce, sealed := blob[:gcmNonceSize], blob[gcmNonceSize:]
	plaintext, err := c.gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		// wrong key or tampered bytes
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}

// IsEnvelope reports whether s is shaped like a current-format envelope:
// version prefix, valid base64 and room for a nonce and a tag. It does not
// verify the tag.
func IsEnvelope(s string) bool {
	_, err := decodeEnvelope(s)
	return err == nil
}

func decodeEnvelope(envelope string) ([]byte, error) {
	body, ok := strings.CutPrefix(envelope, EnvelopePrefix)
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, ErrUnsupportedEnvelope)
	}

	blob, err := envelopeEncoding.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrDecryptionFailed, ErrMalformedCiphertext, err)
	}

	if len(blob) < gcmNonceSize+gcmTagSize {
		return nil, fmt.Errorf("%w: %w: ciphertext too short", ErrDecryptionFailed, ErrMalformedCiphertext)
	}

	return blob, nil
}

// EncryptField encrypts plaintext with key. It is a convenience wrapper for
// one-off calls; long-lived callers should keep a [FieldCipher].
func EncryptField(plaintext string, key Key) (string, error) {
	c, err := NewFieldCipher(key)
	if err != nil {
		return "", err
	}
	return c.Encrypt(plaintext)
}

// DecryptField decrypts an envelope with key.
func DecryptField(envelope string, key Key) (string, error) {
	c, err := NewFieldCipher(key)
	if err != nil {
		return "", err
	}
	return c.Decrypt(envelope)
}
