// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	printBuildInfo()

	log := logger.NewLogger("vault-migrate")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return 2
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Int("workers", cfg.Workers.MigrationConcurrency).
		Bool("dry_run", cfg.Workers.MigrationDryRun).
		Bool("legacy_key", cfg.App.LegacyEncryptionKey != "").
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()
	ctx = log.WithContext(ctx)

	db, err := store.NewStorage(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Err(err).Msg("error creating storage")
		return 1
	}
	defer db.Close()
	log.Info().Str("driver", db.Driver()).Msg("storage ready")

	services, err := service.NewServices(store.NewCredentialRepository(db), *cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating services")
		return 1
	}
	if services.InsecureKey {
		fmt.Fprintln(os.Stderr, tui.Warning(app.MsgInsecureDefaultKey))
	}

	report, err := services.Migration.Run(ctx)
	fmt.Println(tui.RenderReport(report))
	if err != nil {
		log.Err(err).Msg("migration interrupted")
		return 1
	}

	failed := report.Failed()
	for _, o := range failed {
		log.Error().
			Err(o.Err).
			Str("credential_id", o.ID).
			Str("owner_id", o.OwnerID).
			Bool("retryable", db.IsRetryable(o.Err)).
			Msg("record was not migrated")
	}
	if len(failed) > 0 {
		log.Error().Int("failed", len(failed)).Msg(app.MsgMigrationFailed)
		return 1
	}

	return 0
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
