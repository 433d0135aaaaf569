// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrMissingEncryptionKey is returned when no encryption secret was
	// configured and the insecure default key was not explicitly allowed.
	ErrMissingEncryptionKey = errors.New("encryption key is not configured")

	// ErrDecryptionFailed is the umbrella error for every decryption failure:
	// malformed input, wrong key or a failed integrity check. Callers should
	// match it with [errors.Is] and treat the value as unavailable.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrUnsupportedEnvelope is returned when a ciphertext does not carry the
	// expected version prefix.
	ErrUnsupportedEnvelope = errors.New("unsupported ciphertext envelope")

	// ErrMalformedCiphertext is returned when the envelope body cannot be
	// decoded or is too short to hold a nonce and a tag.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
)
