// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package web serves the embedded single-page shell.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

//go:embed public
var assets embed.FS

// Handler serves the static assets under public/. The wizard at / and the
// admin page at /admin are single-page apps, so unknown paths fall back to
// index.html.
func Handler() http.Handler {
	sub, err := fs.Sub(assets, "public")
	if err != nil {
		panic(err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
		switch name {
		case "":
			name = "index.html"
		case "admin":
			name = "admin.html"
		}

		if _, err := fs.Stat(sub, name); err != nil {
			name = "index.html"
		}

		http.ServeFileFS(w, r, sub, name)
	})
}
