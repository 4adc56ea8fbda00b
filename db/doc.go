// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles relational schema creation.

CreateSchema initializes the questions table for the given driver:

	if err := db.CreateSchema(conn, cliparse.DriverSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and index.
The SQLite and PostgreSQL variants differ only in the id column syntax and
the created_at default expression; columns and constraints are otherwise
identical.
*/
package db
