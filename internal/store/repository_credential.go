// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// credentialRepository is the database/sql implementation of
// [CredentialRepository] over the "credentials" table. The same code serves
// PostgreSQL and SQLite; only the placeholder format differs.
//
// Every method obtains a context-scoped logger via [logger.FromContext].
// Passwords and ciphertexts are never logged.
type credentialRepository struct {
	*DB
	ids IDGenerator
	now func() time.Time
}

// NewCredentialRepository constructs a [CredentialRepository] backed by db.
func NewCredentialRepository(db *DB) CredentialRepository {
	return &credentialRepository{
		DB:  db,
		ids: NewUUIDGenerator(),
		now: time.Now,
	}
}

// Create assigns a fresh ID and both timestamps, then inserts rec.
func (r *credentialRepository) Create(ctx context.Context, rec models.StorageRecord) (models.StorageRecord, error) {
	log := logger.FromContext(ctx)

	now := r.now().UTC()
	rec.ID = r.ids.Generate()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	query, args, err := buildInsertCredentialQuery(r.statementBuilder(), rec)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Create").Str("owner_id", rec.OwnerID).Msg("failed to create query")
		return models.StorageRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "credentialRepository.Create").
			Str("owner_id", rec.OwnerID).
			Str("credential_id", rec.ID).
			Msg("failed to insert credential")
		return models.StorageRecord{}, storageError(ErrExecutingStatement, err)
	}

	return rec, nil
}

// ListByOwner returns the owner's records ordered by created_at descending.
// Returns an empty slice when the owner has no records.
func (r *credentialRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.StorageRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectByOwnerQuery(r.statementBuilder(), ownerID)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.ListByOwner").Str("owner_id", ownerID).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	records, err := r.queryRecords(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.ListByOwner").Str("owner_id", ownerID).Msg("failed to list credentials")
		return nil, err
	}

	return records, nil
}

// ListAll returns every stored record ordered by ID. Only the migration uses
// it; interactive reads always go through ListByOwner.
func (r *credentialRepository) ListAll(ctx context.Context) ([]models.StorageRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllQuery(r.statementBuilder())
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.ListAll").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	records, err := r.queryRecords(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.ListAll").Msg("failed to list credentials")
		return nil, err
	}

	return records, nil
}

// Get returns the record with the given id if it belongs to ownerID.
func (r *credentialRepository) Get(ctx context.Context, ownerID, id string) (models.StorageRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOneQuery(r.statementBuilder(), ownerID, id)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Get").Str("owner_id", ownerID).Msg("failed to create query")
		return models.StorageRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rec, err := scanRecord(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.StorageRecord{}, ErrCredentialNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.Get").
			Str("owner_id", ownerID).
			Str("credential_id", id).
			Msg("failed to get credential")
		return models.StorageRecord{}, storageError(ErrScanningRow, err)
	}

	return rec, nil
}

// Update overwrites the mutable columns of rec and refreshes updated_at.
// CreatedAt of the returned record is whatever the caller passed in.
func (r *credentialRepository) Update(ctx context.Context, rec models.StorageRecord) (models.StorageRecord, error) {
	log := logger.FromContext(ctx)

	updatedAt := r.now().UTC()
	query, args, err := buildUpdateCredentialQuery(r.statementBuilder(), rec, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Update").Str("credential_id", rec.ID).Msg("failed to create query")
		return models.StorageRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args...); err != nil {
		if !errors.Is(err, ErrCredentialNotFound) {
			log.Err(err).
				Str("func", "credentialRepository.Update").
				Str("owner_id", rec.OwnerID).
				Str("credential_id", rec.ID).
				Msg("failed to update credential")
		}
		return models.StorageRecord{}, err
	}

	rec.UpdatedAt = updatedAt
	return rec, nil
}

// UpdatePassword overwrites only the password column. updated_at keeps its
// value.
func (r *credentialRepository) UpdatePassword(ctx context.Context, id string, password models.CipheredPassword) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePasswordQuery(r.statementBuilder(), id, password)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.UpdatePassword").Str("credential_id", id).Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args...); err != nil {
		if !errors.Is(err, ErrCredentialNotFound) {
			log.Err(err).Str("func", "credentialRepository.UpdatePassword").Str("credential_id", id).Msg("failed to update password")
		}
		return err
	}

	return nil
}

// Delete removes the record with the given id if it belongs to ownerID.
func (r *credentialRepository) Delete(ctx context.Context, ownerID, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCredentialQuery(r.statementBuilder(), ownerID, id)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Delete").Str("owner_id", ownerID).Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args...); err != nil {
		if !errors.Is(err, ErrCredentialNotFound) {
			log.Err(err).
				Str("func", "credentialRepository.Delete").
				Str("owner_id", ownerID).
				Str("credential_id", id).
				Msg("failed to delete credential")
		}
		return err
	}

	return nil
}

// execAffectingOne runs a DML statement and maps zero affected rows to
// [ErrCredentialNotFound].
func (r *credentialRepository) execAffectingOne(ctx context.Context, query string, args ...any) error {
	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		return storageError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storageError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}

func (r *credentialRepository) queryRecords(ctx context.Context, query string, args ...any) ([]models.StorageRecord, error) {
	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.StorageRecord, 0, 32)
	for rows.Next() {
		rec, scanErr := scanRecord(rows)
		if scanErr != nil {
			return nil, storageError(ErrScanningRow, scanErr)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, storageError(ErrScanningRows, err)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.StorageRecord, error) {
	var (
		rec      models.StorageRecord
		password string
		url      sql.NullString
	)

	err := row.Scan(
		&rec.ID,
		&rec.OwnerID,
		&rec.Platform,
		&rec.Username,
		&password,
		&url,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return models.StorageRecord{}, err
	}

	rec.Password = models.CipheredPassword(password)
	if url.Valid {
		u := url.String
		rec.URL = &u
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	rec.UpdatedAt = rec.UpdatedAt.UTC()

	return rec, nil
}
