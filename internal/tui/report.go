// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

// RenderReport renders the counters of a migration run followed by one line
// per failed record.
func RenderReport(r models.MigrationReport) string {
	var b strings.Builder

	if r.DryRun {
		b.WriteString(Warning("dry run: nothing was written"))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Total:             %d\n", r.Total)
	fmt.Fprintf(&b, "Processed:         %d\n", len(r.Outcomes))
	fmt.Fprintf(&b, "Encrypted:         %d\n", r.Count(models.MigrationEncrypted))
	fmt.Fprintf(&b, "Re-encrypted:      %d\n", r.Count(models.MigrationReencrypted))
	fmt.Fprintf(&b, "Already encrypted: %d\n", r.Count(models.MigrationAlreadyEncrypted))
	fmt.Fprintf(&b, "Failed:            %d", r.Count(models.MigrationFailed))

	for _, o := range r.Failed() {
		fmt.Fprintf(&b, "\n  %s (owner %s): %v", o.ID, o.OwnerID, o.Err)
	}

	return renderPage("PASSWORD MIGRATION", b.String(), "")
}
