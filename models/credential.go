// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CipheredPassword is a password in its storage form: a self-describing
// encrypted envelope produced by the field cipher. Legacy rows may still hold
// plaintext or an older ciphertext format until the migration has run.
type CipheredPassword string

// CredentialRecord is the domain representation of a vault entry. Password
// is always plaintext here and must only live inside the process.
type CredentialRecord struct {
	// ID is assigned by storage on insert and never changes afterwards.
	ID string `json:"id"`

	// OwnerID identifies the user owning the record. Set once at creation.
	OwnerID string `json:"owner_id"`

	// Platform is the service name the credential belongs to (required).
	Platform string `json:"platform"`

	// Username is the login on Platform (required).
	Username string `json:"username"`

	// Password is the plaintext secret.
	Password string `json:"-"`

	// URL is an optional link to the platform.
	URL *string `json:"url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StorageRecord is the persisted representation of a vault entry. It mirrors
// CredentialRecord field by field except Password, which is ciphertext.
type StorageRecord struct {
	ID        string           `json:"id"`
	OwnerID   string           `json:"owner_id"`
	Platform  string           `json:"platform"`
	Username  string           `json:"username"`
	Password  CipheredPassword `json:"password"`
	URL       *string          `json:"url,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// TableName returns the name of the table holding storage records.
func (s *StorageRecord) TableName() string {
	return "credentials"
}

// DecodedCredential is one entry of a batch read. Either Record is valid or
// Err describes why this particular record could not be decoded.
type DecodedCredential struct {
	Record CredentialRecord
	Err    error
}

// Available reports whether the record decoded successfully. Unavailable
// entries still carry the non-secret fields copied from storage.
func (d DecodedCredential) Available() bool {
	return d.Err == nil
}
