// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags on the global flag set.
//
// Flags:
//
//	-k encryption key
//	-legacy-key passphrase of legacy ciphertexts
//	-allow-default-key fall back to the built-in insecure key
//	-owner owner id the CLI acts for
//	-d database DSN
//	-driver database driver: postgres or sqlite
//	-db-timeout connect and migrate timeout (e.g., "5s")
//	-workers number of records migrated in parallel
//	-dry-run report migration outcomes without writing
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var encryptionKey string
	var legacyKey string
	var allowDefaultKey bool
	var ownerID string
	var databaseDSN string
	var databaseDriver string
	var connectTimeout time.Duration
	var migrationWorkers int
	var dryRun bool
	var jsonConfigPath string

	flag.StringVar(&encryptionKey, "k", "", "Encryption key")
	flag.StringVar(&legacyKey, "legacy-key", "", "Passphrase of legacy ciphertexts")
	flag.BoolVar(&allowDefaultKey, "allow-default-key", false, "Use the built-in insecure key when no key is set")
	flag.StringVar(&ownerID, "owner", "", "Owner id")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (postgres, sqlite)")
	flag.DurationVar(&connectTimeout, "db-timeout", 0, "Database connect timeout (e.g., 5s)")
	flag.IntVar(&migrationWorkers, "workers", 0, "Records migrated in parallel")
	flag.BoolVar(&dryRun, "dry-run", false, "Report migration outcomes without writing")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			EncryptionKey:       encryptionKey,
			LegacyEncryptionKey: legacyKey,
			AllowDefaultKey:     allowDefaultKey,
			OwnerID:             ownerID,
		},
		Storage: Storage{
			DB: DB{
				DSN:            databaseDSN,
				Driver:         databaseDriver,
				ConnectTimeout: connectTimeout,
			},
		},
		Workers: Workers{
			MigrationConcurrency: migrationWorkers,
			MigrationDryRun:      dryRun,
		},
		JSONFilePath: jsonConfigPath,
	}
}
