// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Credentials is the part of the credential service the CLI drives.
type Credentials interface {
	Create(ctx context.Context, rec models.CredentialRecord) (models.CredentialRecord, error)
	List(ctx context.Context, ownerID string) ([]models.DecodedCredential, error)
	Get(ctx context.Context, ownerID, id string) (models.CredentialRecord, error)
	Update(ctx context.Context, rec models.CredentialRecord) (models.CredentialRecord, error)
	Delete(ctx context.Context, ownerID, id string) error
}
