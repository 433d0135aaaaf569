// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidOwnerID = errors.New("owner id is required")
	ErrInvalidID      = errors.New("credential id is required")
	ErrEmptyPlatform  = errors.New("platform is required")
	ErrEmptyUsername  = errors.New("username is required")
	ErrEmptyPassword  = errors.New("password is required")
)
