// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/client"
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
	log := logger.NewFileLogger("vault", logFilePath())

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Err(err).Msg("error getting configs")
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()
	ctx = log.WithContext(ctx)

	db, err := store.NewStorage(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Err(err).Msg("error creating storage")
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
		return 1
	}
	defer db.Close()

	services, err := service.NewServices(store.NewCredentialRepository(db), *cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating services")
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
		return 1
	}
	if services.InsecureKey {
		fmt.Fprintln(os.Stderr, tui.Warning(app.MsgInsecureDefaultKey))
	}

	vault, err := client.NewApp(services.Credentials, cfg.App.OwnerID, os.Stdin, os.Stdout, log,
		client.WithBuildInfo(client.BuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, app.MsgNoOwnerIDProvided)
		return 2
	}

	if err = vault.Run(ctx, flag.Args()); err != nil {
		switch {
		case errors.Is(err, client.ErrUsage):
			fmt.Fprintln(os.Stderr, err)
			return 2
		case errors.Is(err, client.ErrCancelled):
			fmt.Fprintln(os.Stderr, err)
			return 1
		default:
			fmt.Fprintln(os.Stderr, tui.RenderError(err))
			return 1
		}
	}

	return 0
}

// logFilePath keeps log lines out of the terminal the CLI draws on.
func logFilePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "go-pass-vault", "vault.log")
}
