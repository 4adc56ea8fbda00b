// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/question-mark/cliparse"
	"github.com/danielhkuo/question-mark/handlers"
	"github.com/danielhkuo/question-mark/middleware"
	"github.com/danielhkuo/question-mark/store"
	"github.com/danielhkuo/question-mark/web"
)

func NewRouter(st store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(st)
	adminHandler := handlers.NewAdminHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public API
	mux.HandleFunc("POST /api/questions", middleware.WithLogging(questionHandler.Submit))
	mux.HandleFunc("GET /api/questions", middleware.WithLogging(questionHandler.List))

	// Admin API (shared-secret gated)
	mux.HandleFunc("GET /api/admin/questions", middleware.WithLogging(adminHandler.List))
	mux.HandleFunc("DELETE /api/admin/questions", middleware.WithLogging(adminHandler.Delete))

	// Method patterns above are more specific and win; anything else on the
	// API paths gets a JSON 405 instead of the mux's plain-text one.
	mux.HandleFunc("/api/questions", methodNotAllowed)
	mux.HandleFunc("/api/admin/questions", methodNotAllowed)

	// Everything else serves the static shell (wizard at /, admin at /admin)
	mux.Handle("GET /", web.Handler())

	return mux
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	middleware.ErrorResponse(w, http.StatusMethodNotAllowed, "Methode non autorisee.")
}
