// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Question Mark API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

Public:

	POST /api/questions   - Submit a question
	GET  /api/questions   - Filtered public directory

Admin (requires X-Admin-Key):

	GET    /api/admin/questions - Full listing with total
	DELETE /api/admin/questions - Delete by ?id=

Everything else falls through to the embedded web shell. Unsupported
methods on the API paths get a JSON 405 instead of the mux's plain-text
default.
*/
package router
