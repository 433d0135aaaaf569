// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package strength scores plaintext passwords into the three tiers shown
// next to each credential. The result is display-only and is never stored.
package strength

import (
	"unicode/utf16"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	minMediumLength = 6
	minLongLength   = 10
	minStrongLength = 12
)

// Classify returns the strength tier of p.
//
// Length is measured in UTF-16 code units and character classes are ASCII:
// any character outside [A-Za-z0-9] counts as a symbol.
func Classify(p string) models.StrengthTier {
	n := codeUnits(p)

	switch {
	case n < minMediumLength:
		return models.StrengthWeak
	case n < minLongLength:
		return models.StrengthMedium
	case n >= minStrongLength && hasAllClasses(p):
		return models.StrengthStrong
	default:
		return models.StrengthMedium
	}
}

func codeUnits(p string) int {
	n := 0
	for _, r := range p {
		n += utf16.RuneLen(r)
	}
	return n
}

func hasAllClasses(p string) bool {
	var upper, digit, symbol bool
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
		default:
			symbol = true
		}
	}
	return upper && digit && symbol
}
