// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/field_cipher_mock.go -package=mock

// FieldCipher encrypts and decrypts a single opaque string field.
//
// Implementations must be safe for concurrent use: the key is read-only after
// construction and every call draws its own random nonce.
type FieldCipher interface {
	// Encrypt returns a self-describing envelope for plaintext. Two calls with
	// the same plaintext never return the same envelope.
	Encrypt(plaintext string) (string, error)

	// Decrypt opens an envelope produced by Encrypt. Every failure wraps
	// [ErrDecryptionFailed]; garbage is never returned as plaintext.
	Decrypt(envelope string) (string, error)
}

// LegacyReader opens ciphertexts written by the previous storage format so
// they can be re-wrapped in the current envelope.
type LegacyReader interface {
	Decrypt(ciphertext string) (string, error)
}
