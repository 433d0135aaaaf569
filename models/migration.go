// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MigrationStatus is the outcome of migrating a single stored record.
type MigrationStatus string

const (
	// MigrationEncrypted means a plaintext password was encrypted in place.
	MigrationEncrypted MigrationStatus = "encrypted"

	// MigrationReencrypted means a legacy ciphertext was decrypted with the
	// legacy passphrase and wrapped in the current envelope.
	MigrationReencrypted MigrationStatus = "reencrypted"

	// MigrationAlreadyEncrypted means the record already carries the current
	// envelope and was left untouched.
	MigrationAlreadyEncrypted MigrationStatus = "already_encrypted"

	// MigrationFailed means the record was skipped because of an error.
	MigrationFailed MigrationStatus = "failed"
)

// MigrationOutcome describes what happened to one record during a run.
type MigrationOutcome struct {
	ID      string          `json:"id"`
	OwnerID string          `json:"owner_id"`
	Status  MigrationStatus `json:"status"`
	Err     error           `json:"-"`
}

// MigrationReport is the typed result of a migration run.
type MigrationReport struct {
	// DryRun is true when no record was written.
	DryRun bool `json:"dry_run"`

	// Total is the number of records fetched from storage.
	Total int `json:"total"`

	// Outcomes holds one entry per processed record, sorted by ID.
	Outcomes []MigrationOutcome `json:"outcomes"`
}

// Count returns the number of outcomes with the given status.
func (r MigrationReport) Count(status MigrationStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Failed returns the outcomes that ended in an error.
func (r MigrationReport) Failed() []MigrationOutcome {
	var failed []MigrationOutcome
	for _, o := range r.Outcomes {
		if o.Status == MigrationFailed {
			failed = append(failed, o)
		}
	}
	return failed
}
