// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validCredential() models.CredentialRecord {
	return models.CredentialRecord{
		ID:       "id-1",
		OwnerID:  "owner-1",
		Platform: "github",
		Username: "octocat",
		Password: "hunter2",
	}
}

// ---------------------------------------------------------------------------
// TestNewCredentialValidator
// ---------------------------------------------------------------------------

func TestNewCredentialValidator(t *testing.T) {
	v := NewCredentialValidator()
	require.NotNil(t, v)
	assert.IsType(t, &CredentialValidator{}, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewCredentialValidator()
	ctx := context.Background()
	rec := validCredential()

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{name: "value", obj: rec},
		{name: "pointer", obj: &rec},
		{name: "nil pointer", obj: (*models.CredentialRecord)(nil), wantErr: ErrUnsupportedType},
		{name: "storage record", obj: models.StorageRecord{}, wantErr: ErrUnsupportedType},
		{name: "string", obj: "nope", wantErr: ErrUnsupportedType},
		{name: "nil", obj: nil, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_DefaultFields
// ---------------------------------------------------------------------------

func TestValidate_DefaultFields(t *testing.T) {
	v := NewCredentialValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(r *models.CredentialRecord)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.CredentialRecord) {}},
		{name: "missing id is fine on create", mutate: func(r *models.CredentialRecord) { r.ID = "" }},
		{name: "missing owner", mutate: func(r *models.CredentialRecord) { r.OwnerID = "" }, wantErr: ErrInvalidOwnerID},
		{name: "empty platform", mutate: func(r *models.CredentialRecord) { r.Platform = "" }, wantErr: ErrEmptyPlatform},
		{name: "blank platform", mutate: func(r *models.CredentialRecord) { r.Platform = "  \t" }, wantErr: ErrEmptyPlatform},
		{name: "empty username", mutate: func(r *models.CredentialRecord) { r.Username = "" }, wantErr: ErrEmptyUsername},
		{name: "empty password", mutate: func(r *models.CredentialRecord) { r.Password = "" }, wantErr: ErrEmptyPassword},
		{name: "whitespace password is allowed", mutate: func(r *models.CredentialRecord) { r.Password = "   " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validCredential()
			tt.mutate(&rec)

			err := v.Validate(ctx, rec)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_ScopedFields
// ---------------------------------------------------------------------------

func TestValidate_ScopedFields(t *testing.T) {
	v := NewCredentialValidator()
	ctx := context.Background()

	rec := models.CredentialRecord{OwnerID: "owner-1"}

	assert.NoError(t, v.Validate(ctx, rec, FieldOwnerID))
	assert.ErrorIs(t, v.Validate(ctx, rec, FieldID), ErrInvalidID)
	assert.ErrorIs(t, v.Validate(ctx, rec, FieldOwnerID, FieldPlatform), ErrEmptyPlatform)
	assert.ErrorIs(t, v.Validate(ctx, rec, "color"), ErrUnknownField)
}
