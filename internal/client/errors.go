// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/service"
)

var (
	// ErrUsage is returned for an unknown subcommand or missing arguments.
	ErrUsage = errors.New("invalid usage")

	// ErrNoOwnerID is returned when the CLI has no owner to act for.
	ErrNoOwnerID = errors.New("no owner ID provided")

	// ErrCancelled is returned when the user declines a confirmation.
	ErrCancelled = errors.New("cancelled by user")

	// ErrPasswordRequired is returned by edit when the stored password cannot
	// be decrypted and no replacement was given.
	ErrPasswordRequired = fmt.Errorf("%w: current password is unavailable, a new one is required", service.ErrInvalidCredential)
)
