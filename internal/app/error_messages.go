// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-pass-vault commands.
//
// All Msg* constants are human-readable message strings that are printed to
// the terminal or written into log entries to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording between the
// interactive CLI and the migration command.
package app

const (
	// MsgInvalidDataProvided is shown when a credential fails validation
	// (e.g. a blank platform or an empty password).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgDataNotFound is shown when a read, update, or delete operation
	// targets a credential that does not exist for the current owner.
	MsgDataNotFound = "credential not found"

	// MsgNoOwnerIDProvided is shown when the CLI is started without an owner
	// identity to act for.
	MsgNoOwnerIDProvided = "no owner ID provided"

	// MsgMissingEncryptionKey is shown when no encryption key is configured
	// and the insecure default key was not explicitly allowed.
	MsgMissingEncryptionKey = "encryption key is not configured"

	// MsgInsecureDefaultKey is printed once per run when the process fell
	// back to the publicly known default key.
	MsgInsecureDefaultKey = "WARNING: running on the default encryption key, stored passwords are not protected"

	// MsgStorageUnavailable is shown when the database cannot be reached or
	// a query fails for a reason the user cannot fix.
	MsgStorageUnavailable = "storage is unavailable, try again later"

	// MsgCredentialUnavailable is rendered in place of a password that could
	// not be decrypted.
	MsgCredentialUnavailable = "unavailable"

	// MsgInternalError is shown for any other unexpected failure.
	MsgInternalError = "internal error"

	// MsgCopiedToClipboard confirms that a password was copied.
	MsgCopiedToClipboard = "password copied to clipboard"

	// MsgUsernameCopiedToClipboard confirms that a username was copied.
	MsgUsernameCopiedToClipboard = "username copied to clipboard"

	// MsgPasswordGenerated follows a generated password; the password itself
	// is never printed.
	MsgPasswordGenerated = "generated a random password, use \"vault show -copy\" to copy it"

	// MsgPasswordUnreadable is shown before editing or deleting a credential
	// whose password cannot be decrypted with the current key.
	MsgPasswordUnreadable = "the stored password cannot be decrypted with the current key"

	// MsgMigrationFailed is printed when at least one record could not be
	// migrated.
	MsgMigrationFailed = "migration finished with failures"
)
