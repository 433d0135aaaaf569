// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"
)

// legacySaltedPrefix is the base64 form of the OpenSSL "Salted__" header that
// starts every ciphertext written by the previous storage format.
const legacySaltedPrefix = "U2FsdGVkX1"

var legacyMagic = []byte("Salted__")

const (
	legacySaltSize = 8
	legacyKeySize  = 32
	legacyIVSize   = aes.BlockSize
)

// legacyCipher reads OpenSSL-compatible passphrase ciphertexts
// (EVP_BytesToKey with MD5, AES-256-CBC, PKCS#7), the format the vault used
// before field envelopes were versioned. It can only decrypt: new values are
// always written with [FieldCipher].
type legacyCipher struct {
	passphrase []byte
}

// NewLegacyReader returns a [LegacyReader] for ciphertexts produced with
// passphrase. An empty passphrase is rejected.
func NewLegacyReader(passphrase string) (LegacyReader, error) {
	if passphrase == "" {
		return nil, ErrMissingEncryptionKey
	}
	return &legacyCipher{passphrase: []byte(passphrase)}, nil
}

// IsLegacyCiphertext reports whether s looks like a value written by the
// previous storage format.
func IsLegacyCiphertext(s string) bool {
	_, ok := decodeLegacy(s)
	return ok
}

// decodeLegacy returns the raw bytes of a legacy ciphertext, or false when s
// is not one.
func decodeLegacy(s string) ([]byte, bool) {
	if !strings.HasPrefix(s, legacySaltedPrefix) {
		return nil, false
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, false
	}
	body := len(raw) - len(legacyMagic) - legacySaltSize
	if !bytes.HasPrefix(raw, legacyMagic) || body <= 0 || body%aes.BlockSize != 0 {
		return nil, false
	}
	return raw, true
}

// Decrypt implements [LegacyReader]. Failures wrap [ErrDecryptionFailed].
// Because the legacy format carries no integrity tag, a wrong passphrase is
// detected through the padding and UTF-8 checks only.
func (c *legacyCipher) Decrypt(ciphertext string) (string, error) {
	raw, ok := decodeLegacy(ciphertext)
	if !ok {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, ErrUnsupportedEnvelope)
	}

	salt := raw[len(legacyMagic) : len(legacyMagic)+legacySaltSize]
	body := raw[len(legacyMagic)+legacySaltSize:]

	key, iv := evpBytesToKey(c.passphrase, salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	out := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, body)

	plain, err := pkcs7Unpad(out)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plain) {
		return "", fmt.Errorf("%w: %w: plaintext is not valid UTF-8", ErrDecryptionFailed, ErrMalformedCiphertext)
	}

	return string(plain), nil
}

// evpBytesToKey derives key and IV the way OpenSSL's EVP_BytesToKey does with
// MD5 and a single iteration.
func evpBytesToKey(passphrase, salt []byte) ([]byte, []byte) {
	var (
		derived []byte
		prev    []byte
	)
	for len(derived) < legacyKeySize+legacyIVSize {
		h := md5.New()
		h.Write(prev)
		h.Write(passphrase)
		h.Write(salt)
		prev = h.Sum(nil)
		derived = append(derived, prev...)
	}
	return derived[:legacyKeySize], derived[legacyKeySize : legacyKeySize+legacyIVSize]
}

func pkcs7Unpad(b []byte) ([]byte, error) {
	if len(b) == 0 || len(b)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %w: bad block length", ErrDecryptionFailed, ErrMalformedCiphertext)
	}
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize {
		return nil, fmt.Errorf("%w: %w: bad padding", ErrDecryptionFailed, ErrMalformedCiphertext)
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, fmt.Errorf("%w: %w: bad padding", ErrDecryptionFailed, ErrMalformedCiphertext)
		}
	}
	return b[:len(b)-n], nil
}
