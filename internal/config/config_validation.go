// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// Supported values of [DB.Driver].
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	defaultMigrationConcurrency = 4
	defaultConnectTimeout       = 5 * time.Second
)

// applyDefaults fills fields no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = inferDriver(cfg.Storage.DB.DSN)
	}
	if cfg.Storage.DB.ConnectTimeout == 0 {
		cfg.Storage.DB.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.Workers.MigrationConcurrency == 0 {
		cfg.Workers.MigrationConcurrency = defaultMigrationConcurrency
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Missing key material is not reported here: the key provider owns that
// decision because it also knows whether the default key was allowed.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.ConnectTimeout < 0 {
		return fmt.Errorf("%w: negative connect timeout", ErrInvalidStorageConfigs)
	}

	if cfg.Workers.MigrationConcurrency < 1 {
		return fmt.Errorf("%w: migration concurrency must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}

// inferDriver guesses the backend from a DSN. Anything that does not look
// like a PostgreSQL URL or keyword/value string is treated as a SQLite path.
func inferDriver(dsn string) string {
	lower := strings.ToLower(dsn)
	switch {
	case dsn == "":
		return ""
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres
	case strings.Contains(lower, "host=") && strings.Contains(lower, "dbname="):
		return DriverPostgres
	default:
		return DriverSQLite
	}
}
