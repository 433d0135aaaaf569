// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

type Services struct {
	Credentials *CredentialService
	Migration   *MigrationRunner

	// InsecureKey is set when the process runs on the default key.
	InsecureKey bool
}

// NewServices resolves the key material from cfg.App and wires every service
// on top of repo.
func NewServices(repo store.CredentialRepository, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	keys, err := crypto.NewKeyProvider(cfg.App.EncryptionKey, cfg.App.AllowDefaultKey, logger)
	if err != nil {
		return nil, err
	}

	cipher, err := crypto.NewFieldCipher(keys.Key())
	if err != nil {
		return nil, err
	}

	var legacy crypto.LegacyReader
	if cfg.App.LegacyEncryptionKey != "" {
		if legacy, err = crypto.NewLegacyReader(cfg.App.LegacyEncryptionKey); err != nil {
			return nil, err
		}
	}

	opts := MigrationOptions{
		Workers: cfg.Workers.MigrationConcurrency,
		DryRun:  cfg.Workers.MigrationDryRun,
	}

	return &Services{
		Credentials: NewCredentialService(repo, NewRecordCodec(cipher, legacy), logger.GetChildLogger("credentials")),
		Migration:   NewMigrationRunner(repo, cipher, legacy, opts, logger.GetChildLogger("migration")),
		InsecureKey: keys.Insecure(),
	}, nil
}
