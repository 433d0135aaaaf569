// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks credentials before the service layer encrypts
// and stores them.
//
// The credential service validates every record it is asked to create,
// update, read or delete. Callers pass the names of the fields that matter
// for the operation (see the Field* constants), so a delete only checks the
// ID and owner while a create checks the whole record. Each failing field
// has its own sentinel error, such as ErrEmptyPlatform.
package validators

import "context"

// Validator checks value, limited to the named fields when any are given.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
