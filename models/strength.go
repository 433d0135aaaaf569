// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StrengthTier is a UI-facing classification of a plaintext password.
// It is never persisted and never used as a security control.
type StrengthTier string

const (
	StrengthWeak   StrengthTier = "weak"
	StrengthMedium StrengthTier = "medium"
	StrengthStrong StrengthTier = "strong"
)

// StrengthSummary aggregates tiers over a list of decoded credentials.
type StrengthSummary struct {
	Total       int `json:"total"`
	Weak        int `json:"weak"`
	Medium      int `json:"medium"`
	Strong      int `json:"strong"`
	Unavailable int `json:"unavailable"`
}
