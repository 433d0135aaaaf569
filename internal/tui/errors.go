// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// HumanizeError turns err into a message fit for the terminal. Storage and
// crypto internals are never shown verbatim.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	var decodeErr *service.DecodeError

	switch {
	case errors.Is(err, service.ErrInvalidCredential):
		return err.Error()
	case errors.Is(err, store.ErrCredentialNotFound):
		return app.MsgDataNotFound
	case errors.Is(err, crypto.ErrMissingEncryptionKey):
		return app.MsgMissingEncryptionKey
	case errors.As(err, &decodeErr):
		return "credential " + decodeErr.ID + " is " + app.MsgCredentialUnavailable
	case errors.Is(err, store.ErrStorage),
		errors.Is(err, context.DeadlineExceeded):
		return app.MsgStorageUnavailable
	default:
		return app.MsgInternalError
	}
}

// RenderError renders a humanized err.
func RenderError(err error) string {
	return errorStyle.Render("Error: " + HumanizeError(err))
}
