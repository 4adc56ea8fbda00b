// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/question-mark/middleware"
	"github.com/danielhkuo/question-mark/models"
	"github.com/danielhkuo/question-mark/query"
	"github.com/danielhkuo/question-mark/store"
	"github.com/danielhkuo/question-mark/validate"
)

type QuestionHandler struct {
	store store.Store
}

func NewQuestionHandler(st store.Store) *QuestionHandler {
	return &QuestionHandler{store: st}
}

// Submit handles POST /api/questions
func (h *QuestionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "JSON invalide.")
		return
	}

	// Validation happens entirely before any persistence call
	q, err := validate.Question(req)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.store.Create(q)
	if err != nil {
		slog.Error("failed to store question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Erreur base de donnees.")
		return
	}

	slog.Info("question created", "id", rec.ID, "target", rec.Target, "belief", rec.Belief)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponse{ID: rec.ID})
}

// List handles GET /api/questions
// Returns the public directory: a bare array, newest first, capped at 500.
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
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

	rows, _, _ := query.Apply(entries, f, query.PublicLimit)

	middleware.JSONResponse(w, http.StatusOK, rows)
}
