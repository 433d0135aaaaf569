// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// RecordCodec is the only place where a credential crosses between its
// plaintext domain form and its encrypted storage form.
type RecordCodec struct {
	cipher crypto.FieldCipher
	legacy crypto.LegacyReader
}

// NewRecordCodec returns a codec encrypting with cipher. legacy may be nil;
// when set, rows still holding the legacy ciphertext format can be read
// before the migration has re-wrapped them.
func NewRecordCodec(cipher crypto.FieldCipher, legacy crypto.LegacyReader) *RecordCodec {
	return &RecordCodec{
		cipher: cipher,
		legacy: legacy,
	}
}

// ToStorage copies rec and replaces the password with its envelope.
func (c *RecordCodec) ToStorage(rec models.CredentialRecord) (models.StorageRecord, error) {
	envelope, err := c.cipher.Encrypt(rec.Password)
	if err != nil {
		return models.StorageRecord{}, fmt.Errorf("%w %s: %w", ErrEncodingCredential, rec.ID, err)
	}

	return models.StorageRecord{
		ID:        rec.ID,
		OwnerID:   rec.OwnerID,
		Platform:  rec.Platform,
		Username:  rec.Username,
		Password:  models.CipheredPassword(envelope),
		URL:       copyURL(rec.URL),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}, nil
}

// FromStorage copies rec and replaces the password with its plaintext.
//
// On failure the returned record still carries every non-secret field and an
// empty password, and the error is a *DecodeError naming the record.
func (c *RecordCodec) FromStorage(rec models.StorageRecord) (models.CredentialRecord, error) {
	out := models.CredentialRecord{
		ID:        rec.ID,
		OwnerID:   rec.OwnerID,
		Platform:  rec.Platform,
		Username:  rec.Username,
		URL:       copyURL(rec.URL),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}

	plaintext, err := c.decrypt(string(rec.Password))
	if err != nil {
		return out, &DecodeError{ID: rec.ID, Err: err}
	}

	out.Password = plaintext
	return out, nil
}

func (c *RecordCodec) decrypt(stored string) (string, error) {
	if c.legacy != nil && crypto.IsLegacyCiphertext(stored) {
		return c.legacy.Decrypt(stored)
	}

	return c.cipher.Decrypt(stored)
}

func copyURL(u *string) *string {
	if u == nil {
		return nil
	}
	v := *u
	return &v
}
