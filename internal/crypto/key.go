// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// DefaultInsecureSecret is the publicly known secret the vault falls back to
// when the operator explicitly allows it. Anything encrypted with it is only
// obfuscated.
const DefaultInsecureSecret = "default-key-please-change-in-production"

// KeySize is the size of the derived AES-256 key in bytes.
const KeySize = 32

const (
	keyDerivationSalt = "go-pass-vault"
	keyDerivationInfo = "field-encryption/v1"
)

// Key is immutable symmetric key material. The zero value is not a valid key.
type Key struct {
	material [KeySize]byte
	set      bool
}

// Bytes returns a copy of the key material.
func (k Key) Bytes() []byte {
	out := make([]byte, KeySize)
	copy(out, k.material[:])
	return out
}

// IsZero reports whether k was never initialised.
func (k Key) IsZero() bool {
	return !k.set
}

// DeriveKey stretches an operator-supplied secret into a 256-bit key using
// HKDF-SHA256. The derivation is deterministic so the same secret yields the
// same key across restarts.
func DeriveKey(secret string) (Key, error) {
	if secret == "" {
		return Key{}, ErrMissingEncryptionKey
	}

	r := hkdf.New(sha256.New, []byte(secret), []byte(keyDerivationSalt), []byte(keyDerivationInfo))

	var k Key
	if _, err := io.ReadFull(r, k.material[:]); err != nil {
		return Key{}, fmt.Errorf("derive key: %w", err)
	}
	k.set = true

	return k, nil
}

// KeyProvider owns the single key used for every field operation in the
// process. It is built once at startup and passed to the components that
// need it; the key never changes afterwards.
type KeyProvider struct {
	key      Key
	insecure bool
}

// NewKeyProvider resolves the process key from secret.
//
// An empty secret is a configuration error ([ErrMissingEncryptionKey]) unless
// allowDefault is set, in which case [DefaultInsecureSecret] is used and a
// warning is logged.
func NewKeyProvider(secret string, allowDefault bool, log *logger.Logger) (*KeyProvider, error) {
	insecure := false
	if secret == "" {
		if !allowDefault {
			return nil, ErrMissingEncryptionKey
		}
		log.Warn().
			Str("func", "NewKeyProvider").
			Msg("no encryption key configured: falling back to the publicly known default key, stored passwords are NOT protected")
		secret = DefaultInsecureSecret
		insecure = true
	}

	key, err := DeriveKey(secret)
	if err != nil {
		return nil, err
	}

	return &KeyProvider{key: key, insecure: insecure}, nil
}

// Key returns the process key. Every call returns the same value.
func (p *KeyProvider) Key() Key {
	return p.key
}

// Insecure reports whether the provider fell back to the default key.
func (p *KeyProvider) Insecure() bool {
	return p.insecure
}
