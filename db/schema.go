// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the questions table for the given driver.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, driver string) error {
	schema := sqliteSchema
	if driver == "postgres" {
		schema = postgresSchema
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// The CHECK on target mirrors the application enum as defense-in-depth.
// created_at carries an app-assigned fixed-width UTC timestamp string so
// both storage backends sort identically; the DEFAULT is a fallback only.

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS questions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    target TEXT NOT NULL CHECK (target IN ('god', 'devil')),
    name TEXT,
    age INTEGER,
    belief TEXT NOT NULL,
    question_text TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
);

CREATE INDEX IF NOT EXISTS idx_questions_created_at ON questions(created_at);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS questions (
    id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    target TEXT NOT NULL CHECK (target IN ('god', 'devil')),
    name TEXT,
    age INTEGER,
    belief TEXT NOT NULL,
    question_text TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT to_char(now() AT TIME ZONE 'utc', 'YYYY-MM-DD"T"HH24:MI:SS.MS"Z"')
);

CREATE INDEX IF NOT EXISTS idx_questions_created_at ON questions(created_at);
`
