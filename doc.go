// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Question Mark server.

Question Mark collects short free-text questions addressed "to god" or
"to devil", tagged with a self-reported belief. Questions are browsable in a
public filtered directory; a key-protected admin view supports deletion.

# Starting the Server

The server reads a .env file if present, then environment variables or CLI
flags:

	ADMIN_DASH_KEY=... go run .

Or with flags:

	go run . -p 3000 -s sqlite -d ./data/question_mark.db

# Configuration

  - PORT (-p): server port (default: 3000)
  - STORAGE_DRIVER (-s): sqlite, postgres or badger (default: sqlite)
  - DATABASE_URL (-d): DSN for the SQL drivers, data directory for badger
  - ADMIN_DASH_KEY (-admin-key): admin shared secret; when unset the admin
    endpoints reject every request

# Architecture

The server uses a handler-based architecture with dependency injection:

  - validate: submission validation and normalization
  - store: persistence behind one interface, two backends (SQL, badger)
  - query: shared ordering/filtering/capping over store listings
  - handlers: HTTP request handlers (public questions, admin)
  - router: route definitions using Go 1.22+ routing
  - auth: admin shared-secret gate
  - middleware: CORS, logging, JSON helpers
  - web: embedded single-page shell
  - models: record and request/response types
  - db: relational schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
