// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: the first statement goose sends fails
	_ = mock

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(nil)
	require.ErrorIs(t, err, ErrNilDB)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestEmbeddedMigrations_DeclareSchema(t *testing.T) {
	raw, err := fs.ReadFile(embedMigrations, "00001_init.sql")
	require.NoError(t, err)
	schema := string(raw)

	assert.True(t, strings.HasPrefix(schema, "-- +goose Up"))
	assert.Contains(t, schema, "-- +goose Down")

	for _, table := range []string{
		"users", "health_profiles", "allergens", "user_allergies", "dietary_preferences",
		"mood_logs", "stress_logs", "sleep_logs", "meals", "food_items", "goals",
		"restaurants", "menu_items", "audit_logs",
	} {
		assert.Contains(t, schema, "CREATE TABLE "+table+" (", table)
	}

	// case-insensitive uniqueness backs the repository error mapping
	assert.Contains(t, schema, "users_email_lower_key ON users (LOWER(email))")
	assert.Contains(t, schema, "users_username_lower_key ON users (LOWER(username))")
	assert.Contains(t, schema, "allergens_name_lower_key ON allergens (LOWER(name))")
	assert.Equal(t, 3, strings.Count(schema, "UNIQUE (user_id, log_date)"))
	assert.Contains(t, schema, "ON DELETE RESTRICT")
}
