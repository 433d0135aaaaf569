// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
	errorStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	warningStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	overlayBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	unavailableStyle = lipgloss.NewStyle().Italic(true).Faint(true)

	weakStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	mediumStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	strongStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// StrengthBadge renders tier as a short colored label.
func StrengthBadge(tier models.StrengthTier) string {
	switch tier {
	case models.StrengthWeak:
		return weakStyle.Render("[weak]")
	case models.StrengthMedium:
		return mediumStyle.Render("[medium]")
	case models.StrengthStrong:
		return strongStyle.Render("[strong]")
	default:
		return unavailableBadge()
	}
}

func unavailableBadge() string {
	return unavailableStyle.Render("[" + app.MsgCredentialUnavailable + "]")
}

// Warning renders msg so it stands out from regular output.
func Warning(msg string) string {
	return warningStyle.Render(msg)
}
