// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/question-mark/models"
	"github.com/danielhkuo/question-mark/store"
	"github.com/danielhkuo/question-mark/testutil"
)

// eachStore runs a handler test against both storage backends
func eachStore(t *testing.T, fn func(t *testing.T, st store.Store)) {
	t.Run("sql", func(t *testing.T) {
		st := testutil.SetupSQLStore(t)
		defer st.Close()
		fn(t, st)
	})
	t.Run("blob", func(t *testing.T) {
		st := testutil.SetupBlobStore(t)
		defer st.Close()
		fn(t, st)
	})
}

func TestSubmitQuestion(t *testing.T) {
	eachStore(t, func(t *testing.T, st store.Store) {
		handler := NewQuestionHandler(st)

		body := map[string]any{
			"target":       "god",
			"name":         "Sarah",
			"age":          "27",
			"belief":       "chretien",
			"questionText": "Pourquoi le mal existe-t-il ?",
		}
		req := testutil.MakeRequest("POST", "/api/questions", body, nil)
		w := httptest.NewRecorder()
		handler.Submit(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.SubmitResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.ID == "" {
			t.Error("Submit() returned empty id")
		}

		entries, err := st.ListAll()
		if err != nil {
			t.Fatalf("ListAll() error = %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("stored %d entries, want 1", len(entries))
		}
		if entries[0].ID != resp.ID {
			t.Errorf("stored id = %s, response id = %s", entries[0].ID, resp.ID)
		}
	})
}

func TestSubmitQuestionValidationFailures(t *testing.T) {
	tests := []struct {
		name      string
		body      map[string]any
		wantError string
	}{
		{
			"invalid target",
			map[string]any{"target": "angel", "belief": "chretien", "questionText": "Une question valide ?"},
			"Cible invalide.",
		},
		{
			"invalid belief",
			map[string]any{"target": "god", "belief": "jedi", "questionText": "Une question valide ?"},
			"Croyance invalide.",
		},
		{
			"missing question",
			map[string]any{"target": "god", "belief": "chretien"},
			"La question est requise.",
		},
		{
			"question too short",
			map[string]any{"target": "god", "belief": "chretien", "questionText": "Court"},
			"La question doit contenir entre 8 et 1200 caracteres.",
		},
		{
			"invalid age",
			map[string]any{"target": "god", "belief": "chretien", "questionText": "Une question valide ?", "age": 3},
			"Age invalide.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := testutil.SetupSQLStore(t)
			defer st.Close()
			handler := NewQuestionHandler(st)

			req := testutil.MakeRequest("POST", "/api/questions", tt.body, nil)
			w := httptest.NewRecorder()
			handler.Submit(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Error != tt.wantError {
				t.Errorf("error = %q, want %q", resp.Error, tt.wantError)
			}

			// A rejected submission never writes
			entries, err := st.ListAll()
			if err != nil {
				t.Fatalf("ListAll() error = %v", err)
			}
			if len(entries) != 0 {
				t.Errorf("stored %d entries after rejection, want 0", len(entries))
			}
		})
	}
}

func TestSubmitQuestionMalformedJSON(t *testing.T) {
	st := testutil.SetupSQLStore(t)
	defer st.Close()
	handler := NewQuestionHandler(st)

	req := httptest.NewRequest("POST", "/api/questions", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != "JSON invalide." {
		t.Errorf("error = %q, want JSON invalide.", resp.Error)
	}
}

func TestListQuestions(t *testing.T) {
	eachStore(t, func(t *testing.T, st store.Store) {
		handler := NewQuestionHandler(st)

		god := testutil.SeedQuestion(t, st, "god", "chretien", "Pourquoi le mal existe-t-il ?")
		devil := testutil.SeedQuestion(t, st, "devil", "musulman", "Pourquoi tenter les hommes ?")

		tests := []struct {
			name        string
			path        string
			wantIDs     map[string]bool
			excludedIDs map[string]bool
		}{
			{"all", "/api/questions", map[string]bool{god.ID: true, devil.ID: true}, nil},
			{"target god", "/api/questions?target=god", map[string]bool{god.ID: true}, map[string]bool{devil.ID: true}},
			{"target devil", "/api/questions?target=devil", map[string]bool{devil.ID: true}, map[string]bool{god.ID: true}},
			{"belief musulman", "/api/questions?belief=musulman", map[string]bool{devil.ID: true}, map[string]bool{god.ID: true}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := testutil.MakeRequest("GET", tt.path, nil, nil)
				w := httptest.NewRecorder()
				handler.List(w, req)

				testutil.AssertStatus(t, w, http.StatusOK)

				var rows []models.Question
				testutil.AssertJSON(t, w, &rows)

				seen := map[string]bool{}
				for _, r := range rows {
					seen[r.ID] = true
				}
				for id := range tt.wantIDs {
					if !seen[id] {
						t.Errorf("listing %s missing id %s", tt.path, id)
					}
				}
				for id := range tt.excludedIDs {
					if seen[id] {
						t.Errorf("listing %s should not include id %s", tt.path, id)
					}
				}
			})
		}
	})
}

func TestListQuestionsOrdering(t *testing.T) {
	st := testutil.SetupSQLStore(t)
	defer st.Close()
	handler := NewQuestionHandler(st)

	first := testutil.SeedQuestion(t, st, "god", "chretien", "La toute premiere question ?")
	second := testutil.SeedQuestion(t, st, "god", "chretien", "La deuxieme question posee ?")

	req := testutil.MakeRequest("GET", "/api/questions", nil, nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	var rows []models.Question
	testutil.AssertJSON(t, w, &rows)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	// Seeded back-to-back, so timestamps may collide; the id tie-break
	// still puts the later insert first.
	if rows[0].ID != second.ID || rows[1].ID != first.ID {
		t.Errorf("order = [%s %s], want [%s %s]", rows[0].ID, rows[1].ID, second.ID, first.ID)
	}
}

func TestListQuestionsInvalidFilter(t *testing.T) {
	st := testutil.SetupSQLStore(t)
	defer st.Close()
	handler := NewQuestionHandler(st)

	for _, path := range []string{
		"/api/questions?target=angel",
		"/api/questions?belief=jedi",
	} {
		req := testutil.MakeRequest("GET", path, nil, nil)
		w := httptest.NewRecorder()
		handler.List(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)

		var resp models.ErrorResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Error != "Filtre invalide." {
			t.Errorf("error = %q, want Filtre invalide.", resp.Error)
		}
	}
}
