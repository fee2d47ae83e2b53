// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const preferencesTable = "preferences"

// builder is the statement builder for sqlite, which takes "?" placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetPreference(scope, key string) (string, []any, error) {
	return builder.
		Select("value").
		From(preferencesTable).
		Where(sq.Eq{"scope": scope, "key": key}).
		Limit(1).
		ToSql()
}

func buildSetPreference(scope, key, value string, now time.Time) (string, []any, error) {
	return builder.
		Insert(preferencesTable).
		Columns("scope", "key", "value", "updated_at").
		Values(scope, key, value, now.UTC()).
		Suffix("ON CONFLICT (scope, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeletePreference(scope, key string) (string, []any, error) {
	return builder.
		Delete(preferencesTable).
		Where(sq.Eq{"scope": scope, "key": key}).
		ToSql()
}
