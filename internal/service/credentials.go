// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/strength"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// CredentialService implements the add, list, edit and delete flows of the
// vault. Every password it hands to storage has been through the codec.
type CredentialService struct {
	repo      store.CredentialRepository
	codec     *RecordCodec
	validator validators.Validator

	logger *logger.Logger
}

func NewCredentialService(repo store.CredentialRepository, codec *RecordCodec, logger *logger.Logger) *CredentialService {
	return &CredentialService{
		repo:      repo,
		codec:     codec,
		validator: validators.NewCredentialValidator(),
		logger:    logger,
	}
}

// Create validates rec, encrypts its password and stores it. The returned
// record carries the storage-assigned ID and timestamps.
func (s *CredentialService) Create(ctx context.Context, rec models.CredentialRecord) (models.CredentialRecord, error) {
	if err := s.validator.Validate(ctx, rec); err != nil {
		return models.CredentialRecord{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	encoded, err := s.codec.ToStorage(rec)
	if err != nil {
		return models.CredentialRecord{}, err
	}

	stored, err := s.repo.Create(ctx, encoded)
	if err != nil {
		return models.CredentialRecord{}, err
	}

	created := rec
	created.ID = stored.ID
	created.CreatedAt = stored.CreatedAt
	created.UpdatedAt = stored.UpdatedAt

	return created, nil
}

// List returns the owner's credentials, newest first. A record whose password
// cannot be decrypted is returned with Err set instead of failing the whole
// list; only a storage failure fails the call.
func (s *CredentialService) List(ctx context.Context, ownerID string) ([]models.DecodedCredential, error) {
	if err := s.validator.Validate(ctx, models.CredentialRecord{OwnerID: ownerID}, validators.FieldOwnerID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	stored, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	decoded := make([]models.DecodedCredential, 0, len(stored))
	for _, rec := range stored {
		plain, decodeErr := s.codec.FromStorage(rec)
		if decodeErr != nil {
			s.logger.Warn().
				Err(decodeErr).
				Str("func", "CredentialService.List").
				Str("owner_id", ownerID).
				Str("credential_id", rec.ID).
				Msg("credential is unavailable")
		}
		decoded = append(decoded, models.DecodedCredential{Record: plain, Err: decodeErr})
	}

	return decoded, nil
}

// Get returns one decrypted credential of the owner.
func (s *CredentialService) Get(ctx context.Context, ownerID, id string) (models.CredentialRecord, error) {
	if err := s.validator.Validate(ctx, models.CredentialRecord{ID: id, OwnerID: ownerID}, validators.FieldID, validators.FieldOwnerID); err != nil {
		return models.CredentialRecord{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	stored, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return models.CredentialRecord{}, err
	}

	return s.codec.FromStorage(stored)
}

// Update replaces platform, username, password and url of an existing
// credential. The stored record must belong to rec.OwnerID; its ID and
// CreatedAt are kept and UpdatedAt is refreshed by storage.
func (s *CredentialService) Update(ctx context.Context, rec models.CredentialRecord) (models.CredentialRecord, error) {
	if err := s.validator.Validate(ctx, rec,
		validators.FieldID,
		validators.FieldOwnerID,
		validators.FieldPlatform,
		validators.FieldUsername,
		validators.FieldPassword,
	); err != nil {
		return models.CredentialRecord{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	existing, err := s.repo.Get(ctx, rec.OwnerID, rec.ID)
	if err != nil {
		return models.CredentialRecord{}, err
	}

	edited := rec
	edited.CreatedAt = existing.CreatedAt
	edited.UpdatedAt = existing.UpdatedAt

	encoded, err := s.codec.ToStorage(edited)
	if err != nil {
		return models.CredentialRecord{}, err
	}

	stored, err := s.repo.Update(ctx, encoded)
	if err != nil {
		return models.CredentialRecord{}, err
	}

	edited.UpdatedAt = stored.UpdatedAt
	return edited, nil
}

// Delete removes one credential of the owner.
func (s *CredentialService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.validator.Validate(ctx, models.CredentialRecord{ID: id, OwnerID: ownerID}, validators.FieldID, validators.FieldOwnerID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	return s.repo.Delete(ctx, ownerID, id)
}

// Search keeps the entries whose platform or username contains term,
// ignoring case. An empty term keeps everything. Unavailable entries are
// matched on their non-secret fields too.
func Search(list []models.DecodedCredential, term string) []models.DecodedCredential {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return list
	}

	found := make([]models.DecodedCredential, 0, len(list))
	for _, c := range list {
		if strings.Contains(strings.ToLower(c.Record.Platform), term) ||
			strings.Contains(strings.ToLower(c.Record.Username), term) {
			found = append(found, c)
		}
	}

	return found
}

// Summarize counts the strength tiers over list. Entries that could not be
// decoded are counted as unavailable and never classified.
func Summarize(list []models.DecodedCredential) models.StrengthSummary {
	summary := models.StrengthSummary{Total: len(list)}

	for _, c := range list {
		if !c.Available() {
			summary.Unavailable++
			continue
		}

		switch strength.Classify(c.Record.Password) {
		case models.StrengthWeak:
			summary.Weak++
		case models.StrengthMedium:
			summary.Medium++
		case models.StrengthStrong:
			summary.Strong++
		}
	}

	return summary
}
