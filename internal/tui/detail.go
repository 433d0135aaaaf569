// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/strength"
	"github.com/MKhiriev/go-pass-vault/models"
)

const maskedPassword = "••••••••"

// RenderDetail renders every field of rec. The password is masked unless
// reveal is set.
func RenderDetail(rec models.CredentialRecord, reveal bool) string {
	var b strings.Builder

	password := maskedPassword
	if reveal {
		password = rec.Password
	}

	fmt.Fprintf(&b, "ID:       %s\n", rec.ID)
	fmt.Fprintf(&b, "Platform: %s\n", rec.Platform)
	fmt.Fprintf(&b, "Username: %s\n", rec.Username)
	fmt.Fprintf(&b, "Password: %s %s\n", password, StrengthBadge(strength.Classify(rec.Password)))
	fmt.Fprintf(&b, "URL:      %s\n", valueOrDash(rec.URL))
	fmt.Fprintf(&b, "Created:  %s\n", formatTime(rec.CreatedAt))
	fmt.Fprintf(&b, "Updated:  %s", formatTime(rec.UpdatedAt))

	return renderPage(rec.Platform, b.String(), "vault show -copy <id> copies the password")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}
