// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders vault data for the terminal and reads user input.
//
// Rendering functions are pure and return strings so the commands decide
// where output goes. Prompt reads from an io.Reader and switches the
// terminal to no-echo mode when reading secrets from a TTY.
package tui
