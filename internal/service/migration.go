// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
	"github.com/MKhiriev/go-pass-vault/models"
)

// MigrationOptions tune a migration run.
type MigrationOptions struct {
	// Workers is the number of records processed concurrently.
	Workers int

	// DryRun computes every outcome without writing anything.
	DryRun bool
}

// MigrationRunner rewrites every stored password into the current envelope.
//
// A run is idempotent: records already carrying a valid envelope are left
// alone, so running it twice produces only AlreadyEncrypted outcomes the
// second time.
type MigrationRunner struct {
	repo   store.CredentialRepository
	cipher crypto.FieldCipher
	legacy crypto.LegacyReader
	opts   MigrationOptions

	logger *logger.Logger
}

// NewMigrationRunner builds a runner. legacy may be nil, in which case
// records in the legacy ciphertext format fail with [ErrLegacyKeyRequired].
func NewMigrationRunner(
	repo store.CredentialRepository,
	cipher crypto.FieldCipher,
	legacy crypto.LegacyReader,
	opts MigrationOptions,
	logger *logger.Logger,
) *MigrationRunner {
	return &MigrationRunner{
		repo:   repo,
		cipher: cipher,
		legacy: legacy,
		opts:   opts,
		logger: logger,
	}
}

// Run migrates every stored record and returns one outcome per processed
// record, sorted by ID.
//
// A failure on one record never stops the others. Only failing to list the
// records fails the run as a whole. When ctx is cancelled Run returns the
// outcomes of the records processed so far together with ctx.Err().
func (m *MigrationRunner) Run(ctx context.Context) (models.MigrationReport, error) {
	report := models.MigrationReport{DryRun: m.opts.DryRun}

	records, err := m.repo.ListAll(ctx)
	if err != nil {
		m.logger.Err(err).Str("func", "MigrationRunner.Run").Msg("failed to list credentials")
		return report, fmt.Errorf("error listing credentials: %w", err)
	}
	report.Total = len(records)

	var (
		mu       sync.Mutex
		outcomes = make([]models.MigrationOutcome, len(records))
		done     = make([]bool, len(records))
	)

	jobs := make([]workers.Job, 0, len(records))
	for i, rec := range records {
		jobs = append(jobs, func(ctx context.Context) {
			outcome := m.migrateOne(ctx, rec)

			mu.Lock()
			outcomes[i] = outcome
			done[i] = true
			mu.Unlock()
		})
	}

	pool := workers.NewPool(m.opts.Workers)
	runErr := pool.Run(ctx, jobs)

	report.Outcomes = make([]models.MigrationOutcome, 0, len(records))
	for i, ok := range done {
		if ok {
			report.Outcomes = append(report.Outcomes, outcomes[i])
		}
	}
	slices.SortFunc(report.Outcomes, func(a, b models.MigrationOutcome) int {
		return strings.Compare(a.ID, b.ID)
	})

	m.logger.Info().
		Str("func", "MigrationRunner.Run").
		Bool("dry_run", report.DryRun).
		Int("workers", pool.Size()).
		Int("total", report.Total).
		Int("processed", len(report.Outcomes)).
		Int("encrypted", report.Count(models.MigrationEncrypted)).
		Int("reencrypted", report.Count(models.MigrationReencrypted)).
		Int("already_encrypted", report.Count(models.MigrationAlreadyEncrypted)).
		Int("failed", report.Count(models.MigrationFailed)).
		Msg("migration finished")

	if runErr != nil {
		return report, runErr
	}

	return report, nil
}

func (m *MigrationRunner) migrateOne(ctx context.Context, rec models.StorageRecord) models.MigrationOutcome {
	outcome := models.MigrationOutcome{ID: rec.ID, OwnerID: rec.OwnerID}
	stored := string(rec.Password)

	fail := func(err error) models.MigrationOutcome {
		m.logger.Warn().
			Err(err).
			Str("func", "MigrationRunner.migrateOne").
			Str("owner_id", rec.OwnerID).
			Str("credential_id", rec.ID).
			Msg("credential was not migrated")
		outcome.Status = models.MigrationFailed
		outcome.Err = err
		return outcome
	}

	var (
		plaintext string
		status    models.MigrationStatus
	)

	switch {
	case strings.HasPrefix(stored, crypto.EnvelopePrefix):
		// never wrap an envelope twice, even a malformed one
		if _, err := m.cipher.Decrypt(stored); err != nil {
			return fail(err)
		}
		outcome.Status = models.MigrationAlreadyEncrypted
		return outcome

	case crypto.IsLegacyCiphertext(stored):
		if m.legacy == nil {
			return fail(ErrLegacyKeyRequired)
		}
		decrypted, err := m.legacy.Decrypt(stored)
		if err != nil {
			return fail(err)
		}
		plaintext, status = decrypted, models.MigrationReencrypted

	default:
		plaintext, status = stored, models.MigrationEncrypted
	}

	envelope, err := m.cipher.Encrypt(plaintext)
	if err != nil {
		return fail(fmt.Errorf("%w %s: %w", ErrEncodingCredential, rec.ID, err))
	}

	if !m.opts.DryRun {
		if err = m.repo.UpdatePassword(ctx, rec.ID, models.CipheredPassword(envelope)); err != nil {
			return fail(err)
		}
	}

	outcome.Status = status
	return outcome
}
