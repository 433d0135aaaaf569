// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStorage wraps every failure reported by the database driver.
	ErrStorage = errors.New("storage error")

	// ErrCredentialNotFound is returned when a query or update targets a
	// record (identified by id and, where given, owner_id) that does not
	// exist in the database.
	ErrCredentialNotFound = errors.New("credential was not found")

	// ErrUnsupportedDriver is returned by [NewStorage] for a driver name it
	// cannot open.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are wrapped together with
// [ErrStorage] when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan credential row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan credential rows")
)

func storageError(kind, err error) error {
	return fmt.Errorf("%w: %w: %w", ErrStorage, kind, err)
}
