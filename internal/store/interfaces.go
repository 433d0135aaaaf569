// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_repository_mock.go -package=mock

// CredentialRepository persists storage records. It never sees plaintext
// passwords: every Password it stores or returns is whatever the caller
// encoded.
type CredentialRepository interface {
	// Create inserts rec and returns it with the storage-assigned ID,
	// CreatedAt and UpdatedAt.
	Create(ctx context.Context, rec models.StorageRecord) (models.StorageRecord, error)

	// ListByOwner returns the owner's records, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]models.StorageRecord, error)

	// ListAll returns every record of every owner ordered by ID.
	ListAll(ctx context.Context) ([]models.StorageRecord, error)

	// Get returns a single record of the owner.
	Get(ctx context.Context, ownerID, id string) (models.StorageRecord, error)

	// Update overwrites platform, username, password and url of an existing
	// record and refreshes UpdatedAt.
	Update(ctx context.Context, rec models.StorageRecord) (models.StorageRecord, error)

	// UpdatePassword overwrites only the password column of the record.
	UpdatePassword(ctx context.Context, id string, password models.CipheredPassword) error

	// Delete removes a record of the owner.
	Delete(ctx context.Context, ownerID, id string) error
}
