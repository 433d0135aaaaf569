// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
)

// RenderBuildInfo renders the version block shown by "vault version".
func RenderBuildInfo(version, date, commit string) string {
	var b strings.Builder

	b.WriteString("Application: go-pass-vault\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(version))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(date))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(commit))

	return renderPage("ABOUT", b.String(), "")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
