// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/models"
)

const credentialsTable = "credentials"

var credentialColumns = []string{
	"id",
	"owner_id",
	"platform",
	"username",
	"password",
	"url",
	"created_at",
	"updated_at",
}

func buildInsertCredentialQuery(sb sq.StatementBuilderType, rec models.StorageRecord) (string, []any, error) {
	return sb.Insert(credentialsTable).
		Columns(credentialColumns...).
		Values(
			rec.ID,
			rec.OwnerID,
			rec.Platform,
			rec.Username,
			string(rec.Password),
			rec.URL,
			rec.CreatedAt,
			rec.UpdatedAt,
		).
		ToSql()
}

func buildSelectByOwnerQuery(sb sq.StatementBuilderType, ownerID string) (string, []any, error) {
	return sb.Select(credentialColumns...).
		From(credentialsTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildSelectAllQuery(sb sq.StatementBuilderType) (string, []any, error) {
	return sb.Select(credentialColumns...).
		From(credentialsTable).
		OrderBy("id").
		ToSql()
}

func buildSelectOneQuery(sb sq.StatementBuilderType, ownerID, id string) (string, []any, error) {
	return sb.Select(credentialColumns...).
		From(credentialsTable).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}

func buildUpdateCredentialQuery(sb sq.StatementBuilderType, rec models.StorageRecord, updatedAt time.Time) (string, []any, error) {
	return sb.Update(credentialsTable).
		Set("platform", rec.Platform).
		Set("username", rec.Username).
		Set("password", string(rec.Password)).
		Set("url", rec.URL).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": rec.ID}).
		Where(sq.Eq{"owner_id": rec.OwnerID}).
		ToSql()
}

// buildUpdatePasswordQuery leaves updated_at alone: re-encrypting a field is
// not a user edit.
func buildUpdatePasswordQuery(sb sq.StatementBuilderType, id string, password models.CipheredPassword) (string, []any, error) {
	return sb.Update(credentialsTable).
		Set("password", string(password)).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteCredentialQuery(sb sq.StatementBuilderType, ownerID, id string) (string, []any, error) {
	return sb.Delete(credentialsTable).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}
