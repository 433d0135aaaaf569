// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

// DB is an open database handle together with the SQL dialect details the
// repositories need.
type DB struct {
	*sql.DB
	driver             string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewStorage opens the database described by cfg, checks the connection and
// applies pending schema migrations. Connecting is bounded by
// cfg.ConnectTimeout when it is set.
func NewStorage(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	var (
		db  *DB
		err error
	)
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorage").Str("driver", cfg.Driver).Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return db, nil
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	dialect := migrations.DialectSQLite
	if db.driver == config.DriverPostgres {
		dialect = migrations.DialectPostgres
	}

	return migrations.Migrate(db.DB, dialect, db.logger)
}

// Driver returns the configured driver name.
func (db *DB) Driver() string {
	return db.driver
}

// IsRetryable reports whether err is a transient failure of this backend.
func (db *DB) IsRetryable(err error) bool {
	return db.errorClassificator.Classify(err) == Retryable
}

func (db *DB) statementBuilder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}
