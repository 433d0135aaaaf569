// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-pass-vault/internal/strength"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	listIDWidth       = 8
	listPlatformWidth = 20
	listUsernameWidth = 24

	summaryLabelWidth = 14
)

// RenderList renders one line per credential: short id, platform, username
// and a strength badge. Credentials that could not be decoded keep their
// line with an "unavailable" badge.
func RenderList(list []models.DecodedCredential) string {
	if len(list) == 0 {
		return renderPage("CREDENTIALS", "no credentials", "vault add to create one")
	}

	var b strings.Builder
	for i, c := range list {
		if i > 0 {
			b.WriteString("\n")
		}

		badge := unavailableBadge()
		if c.Available() {
			badge = StrengthBadge(strength.Classify(c.Record.Password))
		}

		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			cell(c.Record.ID, listIDWidth),
			cell(c.Record.Platform, listPlatformWidth),
			cell(c.Record.Username, listUsernameWidth),
			badge,
		))
	}

	title := fmt.Sprintf("CREDENTIALS (%d)", len(list))
	return renderPage(title, b.String(), "vault show <id> to reveal a password")
}

// RenderSummary renders the tier counters of a strength summary.
func RenderSummary(s models.StrengthSummary) string {
	lines := []string{
		summaryLine("Total:", "", s.Total),
		summaryLine("Weak:", StrengthBadge(models.StrengthWeak), s.Weak),
		summaryLine("Medium:", StrengthBadge(models.StrengthMedium), s.Medium),
		summaryLine("Strong:", StrengthBadge(models.StrengthStrong), s.Strong),
		summaryLine("Unavailable:", unavailableBadge(), s.Unavailable),
	}

	return renderPage("PASSWORD STRENGTH", strings.Join(lines, "\n"), "")
}

func summaryLine(label, badge string, n int) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, cell(label, summaryLabelWidth), fmt.Sprintf("%d ", n), badge)
}

// cell renders v cut and padded to exactly width columns plus a gap.
func cell(v string, width int) string {
	return lipgloss.NewStyle().Width(width + 2).Render(fitText(v, width))
}
