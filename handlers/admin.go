// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/question-mark/auth"
	"github.com/danielhkuo/question-mark/cliparse"
	"github.com/danielhkuo/question-mark/middleware"
	"github.com/danielhkuo/question-mark/models"
	"github.com/danielhkuo/question-mark/query"
	"github.com/danielhkuo/question-mark/store"
)

type AdminHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewAdminHandler(st store.Store, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: st, cfg: cfg}
}

// List handles GET /api/admin/questions
// Returns {total, count, rows}: total is the unfiltered collection size,
// count the filtered size before capping, rows the filtered listing capped
// at 1000.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	if !auth.Authorized(r, h.cfg.AdminKey) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Non autorise.")
		return
	}

	f := query.Filter{
		Target: r.URL.Query().Get("target"),
		Belief: r.URL.Query().Get("belief"),
	}
	if err := query.ValidateFilter(f); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.store.ListAll()
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Erreur base de donnees.")
		return
	}

	rows, matched, total := query.Apply(entries, f, query.AdminLimit)

	middleware.JSONResponse(w, http.StatusOK, models.AdminListResponse{
		Total: total,
		Count: matched,
		Rows:  rows,
	})
}

// Delete handles DELETE /api/admin/questions?id=...
// Idempotent: deleting an id that no longer exists still succeeds.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !auth.Authorized(r, h.cfg.AdminKey) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Non autorise.")
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "ID requis.")
		return
	}

	if err := h.store.DeleteByID(id); err != nil {
		slog.Error("failed to delete question", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Erreur base de donnees.")
		return
	}

	slog.Info("question deleted", "id", id)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteResponse{OK: true, ID: id})
}
