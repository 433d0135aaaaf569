// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldID targets the storage-assigned identifier of a credential.
	FieldID = "id"

	// FieldOwnerID targets the owner identifier of a credential.
	FieldOwnerID = "owner_id"

	// FieldPlatform targets the platform name.
	FieldPlatform = "platform"

	// FieldUsername targets the login on the platform.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password.
	FieldPassword = "password"
)

// CredentialValidator implements the Validator interface for
// models.CredentialRecord.
//
// Platform and username must contain a non-blank character; the password
// only has to be non-empty, since whitespace is a legitimate password.
type CredentialValidator struct {
}

// NewCredentialValidator constructs a new CredentialValidator
// and returns it as the Validator interface.
func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

// Validate accepts models.CredentialRecord and *models.CredentialRecord.
//
// Returns ErrUnsupportedType for any other value. When no fields are given,
// owner, platform, username and password are checked.
func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CredentialRecord:
		return v.validateCredential(ctx, value, fields...)
	case *models.CredentialRecord:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredential(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateCredential returns the first encountered validation error or nil.
func (v *CredentialValidator) validateCredential(_ context.Context, rec models.CredentialRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldPlatform, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if rec.ID == "" {
				return ErrInvalidID
			}
		case FieldOwnerID:
			if rec.OwnerID == "" {
				return ErrInvalidOwnerID
			}
		case FieldPlatform:
			if strings.TrimSpace(rec.Platform) == "" {
				return ErrEmptyPlatform
			}
		case FieldUsername:
			if strings.TrimSpace(rec.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if rec.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
