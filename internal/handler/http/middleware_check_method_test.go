// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/levelup/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux without services.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	router.Route("/api/items", func(r chi.Router) {
		r.Get("/", ok)
		r.Post("/", ok)
		r.Patch("/{id}", ok)
		r.Delete("/{id}", ok)
	})
	router.Get("/api/users", ok)

	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "registered method", method: http.MethodGet, path: "/api/items/", wantStatus: http.StatusOK},
		{name: "wrong method on static route", method: http.MethodPut, path: "/api/users", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET"},
		{name: "wrong method on parameterised route", method: http.MethodGet, path: "/api/items/42", wantStatus: http.StatusMethodNotAllowed, wantAllow: "PATCH, DELETE"},
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown", wantStatus: http.StatusNotFound},
	}

	router := buildRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Allow"))
			if tt.wantStatus == http.StatusMethodNotAllowed {
				assert.Equal(t, "Method Not Allowed", decodeResponse[utils.ErrorResponse](t, rr).Error)
			}
		})
	}
}

func TestInit_MethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(t, h, http.MethodGet, "/api/ai/prompt", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "POST", rec.Header().Get("Allow"))
}
