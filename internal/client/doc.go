// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive vault command runtime.
//
// It parses a subcommand and its flags, prompts for whatever the flags did
// not provide, calls the credential service, and renders the result through
// package tui.
package client
