// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// RenderConfirm renders the question asked before deleting name.
func RenderConfirm(name string) string {
	content := "Delete \"" + name + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}

// IsYes reports whether answer confirms a question.
func IsYes(answer string) bool {
	switch answer {
	case "y", "Y", "yes", "YES", "Yes":
		return true
	default:
		return false
	}
}
