// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		EncryptionKey       string `json:"encryption_key"`
		LegacyEncryptionKey string `json:"legacy_encryption_key"`
		AllowDefaultKey     bool   `json:"allow_default_key"`
		OwnerID             string `json:"owner_id"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN            string   `json:"dsn"`
			Driver         string   `json:"driver"`
			ConnectTimeout Duration `json:"connect_timeout"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		MigrationConcurrency int  `json:"migration_concurrency"`
		MigrationDryRun      bool `json:"migration_dry_run"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			EncryptionKey:       jsonCfg.App.EncryptionKey,
			LegacyEncryptionKey: jsonCfg.App.LegacyEncryptionKey,
			AllowDefaultKey:     jsonCfg.App.AllowDefaultKey,
			OwnerID:             jsonCfg.App.OwnerID,
		},
		Storage: Storage{
			DB: DB{
				DSN:            jsonCfg.Storage.DB.DSN,
				Driver:         jsonCfg.Storage.DB.Driver,
				ConnectTimeout: time.Duration(jsonCfg.Storage.DB.ConnectTimeout),
			},
		},
		Workers: Workers{
			MigrationConcurrency: jsonCfg.Workers.MigrationConcurrency,
			MigrationDryRun:      jsonCfg.Workers.MigrationDryRun,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
