// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"net/http"
	"strings"
)

// HeaderAdminKey is the custom header carrying the admin secret. The same
// secret may instead be sent as "Authorization: Bearer <key>".
const HeaderAdminKey = "X-Admin-Key"

// Authorized checks the admin shared secret on a request. When no key is
// configured, every request is rejected (fail closed). Comparison is plain
// string equality: the key is a deployment secret handed over out-of-band,
// not a cryptographic credential.
func Authorized(r *http.Request, key string) bool {
	if key == "" {
		return false
	}
	return ProvidedKey(r) == key
}

// ProvidedKey extracts the credential from the X-Admin-Key header, falling
// back to a Bearer authorization header. Returns "" when neither is set.
func ProvidedKey(r *http.Request) string {
	if k := r.Header.Get(HeaderAdminKey); k != "" {
		return k
	}

	authz := r.Header.Get("Authorization")
	if len(authz) > 7 && strings.EqualFold(authz[:7], "Bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	return ""
}
