// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GeneratedPasswordLength is the length of passwords made by
// [GeneratePassword].
const GeneratedPasswordLength = 16

const passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*"

// GeneratePassword returns a random password of [GeneratedPasswordLength]
// characters drawn uniformly from letters, digits and !@#$%^&*.
func GeneratePassword() (string, error) {
	limit := big.NewInt(int64(len(passwordAlphabet)))

	out := make([]byte, GeneratedPasswordLength)
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("error generating password: %w", err)
		}
		out[i] = passwordAlphabet[n.Int64()]
	}

	return string(out), nil
}
