// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func newTestCipher(t *testing.T, secret string) FieldCipher {
	t.Helper()
	k, err := DeriveKey(secret)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	c, err := NewFieldCipher(k)
	if err != nil {
		t.Fatalf("NewFieldCipher error: %v", err)
	}
	return c
}

func TestFieldCipher_RoundTrip(t *testing.T) {
	c := newTestCipher(t, "s3cret")

	cases := []string{
		"",
		"a",
		"hunter2",
		"Abcdefghij1!",
		"пароль с пробелами",
		"emoji 🔐 inside",
		strings.Repeat("x", 4096),
	}

	for _, plain := range cases {
		env, err := c.Encrypt(plain)
		if err != nil {
			t.Fatalf("Encrypt(%q) error: %v", plain, err)
		}
		if !strings.HasPrefix(env, EnvelopePrefix) {
			t.Fatalf("envelope %q lacks prefix %q", env, EnvelopePrefix)
		}
		if plain != "" && strings.Contains(env, plain) {
			t.Fatalf("envelope leaks plaintext")
		}

		got, err := c.Decrypt(env)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if got != plain {
			t.Fatalf("round trip = %q, want %q", got, plain)
		}
	}
}

func TestFieldCipher_NonDeterministic(t *testing.T) {
	c := newTestCipher(t, "s3cret")

	a, err := c.Encrypt("same password")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	b, err := c.Encrypt("same password")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if a == b {
		t.Fatalf("two encryptions of the same plaintext produced identical envelopes")
	}
}

func TestFieldCipher_WrongKey(t *testing.T) {
	enc := newTestCipher(t, "key-one")
	dec := newTestCipher(t, "key-two")

	env, err := enc.Encrypt("hunter2")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	got, err := dec.Decrypt(env)
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("err = %v, want ErrDecryptionFailed", err)
	}
	if got != "" {
		t.Fatalf("wrong key must not return plaintext, got %q", got)
	}
}

// Every single-byte change of the textual envelope must be rejected.
func TestFieldCipher_TamperDetection(t *testing.T) {
	c := newTestCipher(t, "s3cret")

	env, err := c.Encrypt("Abcdefghij1!")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	for i := 0; i < len(env); i++ {
		tampered := []byte(env)
		tampered[i] ^= 0x01

		if _, err := c.Decrypt(string(tampered)); !errors.Is(err, ErrDecryptionFailed) {
			t.Fatalf("flip at %d: err = %v, want ErrDecryptionFailed", i, err)
		}
	}
}

func TestFieldCipher_Malformed(t *testing.T) {
	c := newTestCipher(t, "s3cret")

	tests := []struct {
		name  string
		input string
		cause error
	}{
		{name: "plaintext", input: "hunter2", cause: ErrUnsupportedEnvelope},
		{name: "empty", input: "", cause: ErrUnsupportedEnvelope},
		{name: "bad base64", input: EnvelopePrefix + "%%%", cause: ErrMalformedCiphertext},
		{name: "too short", input: EnvelopePrefix + "AAAA", cause: ErrMalformedCiphertext},
		{name: "prefix only", input: EnvelopePrefix, cause: ErrMalformedCiphertext},
		{name: "legacy format", input: "U2FsdGVkX1+aPKLsNGNWvc8ZEIXX8LewjFcyxokRA30=", cause: ErrUnsupportedEnvelope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decrypt(tt.input)
			if !errors.Is(err, ErrDecryptionFailed) {
				t.Fatalf("err = %v, want ErrDecryptionFailed", err)
			}
			if !errors.Is(err, tt.cause) {
				t.Fatalf("err = %v, want cause %v", err, tt.cause)
			}
		})
	}
}

func TestIsEnvelope(t *testing.T) {
	c := newTestCipher(t, "s3cret")
	env, _ := c.Encrypt("x")

	if !IsEnvelope(env) {
		t.Fatalf("IsEnvelope(%q) = false", env)
	}
	for _, s := range []string{"", "hunter2", EnvelopePrefix, EnvelopePrefix + "AAAA", "U2FsdGVkX1+aPKLsNGNWvc8ZEIXX8LewjFcyxokRA30="} {
		if IsEnvelope(s) {
			t.Fatalf("IsEnvelope(%q) = true", s)
		}
	}
}

func TestEncryptDecryptField(t *testing.T) {
	k, _ := DeriveKey("s3cret")

	env, err := EncryptField("hunter2", k)
	if err != nil {
		t.Fatalf("EncryptField error: %v", err)
	}
	got, err := DecryptField(env, k)
	if err != nil {
		t.Fatalf("DecryptField error: %v", err)
	}
	if got != "hunter2" {
		t.Fatalf("DecryptField = %q", got)
	}
}

func TestFieldCipher_ConcurrentUse(t *testing.T) {
	c := newTestCipher(t, "s3cret")

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			env, err := c.Encrypt("parallel")
			if err != nil {
				errs <- err
				return
			}
			if _, err := c.Decrypt(env); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent use failed: %v", err)
	}
}
