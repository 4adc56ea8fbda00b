// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package handlers implements the HTTP handlers for question submission,
// the public directory, and the admin listing and delete operations.
// Handlers hold a store.Store and stay transport-thin: validation lives in
// validate, ordering and caps in query.
package handlers
