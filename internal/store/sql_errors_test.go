// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"serialization failure", pgError(pgerrcode.SerializationFailure), Retryable},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"undefined table", pgError(pgerrcode.UndefinedTable), NonRetryable},
		{"wrapped retryable", fmt.Errorf("%w: %w", ErrStorage, pgError(pgerrcode.DeadlockDetected)), Retryable},
	}

	c := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, Retryable},
		{"locked", sqlite3.Error{Code: sqlite3.ErrLocked}, Retryable},
		{"constraint", sqlite3.Error{Code: sqlite3.ErrConstraint}, NonRetryable},
		{"wrapped busy", storageError(ErrExecutingStatement, sqlite3.Error{Code: sqlite3.ErrBusy}), Retryable},
		{"postgres error", pgError(pgerrcode.DeadlockDetected), NonRetryable},
	}

	c := NewSQLiteErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(storageError(ErrExecutingQuery, pgError(pgerrcode.ConnectionFailure))))
	assert.True(t, IsRetryable(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.False(t, IsRetryable(ErrCredentialNotFound))
	assert.False(t, IsRetryable(nil))
}

func TestStorageError_WrapsAllLayers(t *testing.T) {
	cause := errors.New("driver failure")
	err := storageError(ErrExecutingQuery, cause)

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, cause)
}
