// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredential wraps every validation failure of a credential
	// supplied for create or update.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrLegacyKeyRequired is reported for a record in the legacy ciphertext
	// format when no legacy passphrase was configured.
	ErrLegacyKeyRequired = errors.New("legacy ciphertext found but no legacy key configured")

	// ErrEncodingCredential is returned when a password cannot be encrypted.
	ErrEncodingCredential = errors.New("error encoding credential")
)

// DecodeError reports that the password of one stored record could not be
// turned back into plaintext. The record's other fields are still usable.
type DecodeError struct {
	ID  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("credential %s is unavailable: %v", e.ID, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
