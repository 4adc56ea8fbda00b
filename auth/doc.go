// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth gates the admin endpoints behind a shared secret.

# Checking a Request

	if !auth.Authorized(r, cfg.AdminKey) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Non autorise.")
		return
	}

Clients send the key in the X-Admin-Key header; an Authorization Bearer
token is accepted as an alternative. When the server has no key configured
the gate fails closed and every request is rejected.
*/
package auth
