// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - StorageDriver: sqlite, postgres or badger (default: sqlite)
  - DatabaseURL: DSN for SQL drivers, data directory for badger
  - AdminKey: Shared secret for the admin endpoints (may be empty)

# CLI Flags

	-p          Server port
	-s          Storage driver
	-d          Database URL / data directory
	-admin-key  Admin shared secret

Every flag falls back to an environment variable (PORT, STORAGE_DRIVER,
DATABASE_URL, ADMIN_DASH_KEY); flags win when both are set. DatabaseURL
defaults per driver for sqlite and badger and is required for postgres.
*/
package cliparse
