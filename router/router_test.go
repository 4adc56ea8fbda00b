// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/question-mark/models"
	"github.com/danielhkuo/question-mark/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	st := testutil.SetupSQLStore(t)
	defer st.Close()

	mux := NewRouter(st, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	st := testutil.SetupSQLStore(t)
	defer st.Close()

	mux := NewRouter(st, testutil.GetTestConfig())

	tests := []struct {
		method string
		path   string
	}{
		{"PUT", "/api/questions"},
		{"DELETE", "/api/questions"},
		{"PATCH", "/api/questions"},
		{"POST", "/api/admin/questions"},
		{"PUT", "/api/admin/questions"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, http.StatusMethodNotAllowed)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Error != "Methode non autorisee." {
				t.Errorf("error = %q, want Methode non autorisee.", resp.Error)
			}
		})
	}
}

func TestSubmitThroughRouter(t *testing.T) {
	st := testutil.SetupSQLStore(t)
	defer st.Close()

	mux := NewRouter(st, testutil.GetTestConfig())

	body := map[string]any{
		"target":       "god",
		"belief":       "chretien",
		"questionText": "Pourquoi le mal existe-t-il ?",
	}
	req := testutil.MakeRequest("POST", "/api/questions", body, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)
}

func TestStaticShell(t *testing.T) {
	st := testutil.SetupSQLStore(t)
	defer st.Close()

	mux := NewRouter(st, testutil.GetTestConfig())

	tests := []struct {
		name string
		path string
		want string
	}{
		{"root serves wizard", "/", `<div id="app">`},
		{"admin page", "/admin", `<div id="admin-app">`},
		{"unknown path falls back to wizard", "/some/client/route", `<div id="app">`},
		{"asset", "/app.js", "FLOW_STARTED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			if !strings.Contains(w.Body.String(), tt.want) {
				t.Errorf("GET %s body does not contain %q", tt.path, tt.want)
			}
		})
	}
}
