// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-circuit-runner/internal/utils"
	"github.com/MKhiriev/go-circuit-runner/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// A path that exists under another method answers 404 with the structured
// error body instead of chi's bare 405, so wrong-method and unknown-path
// requests look the same to callers. If router does match the method (a
// late registration, for instance) the request is served normally.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		routeNotFound(w, r)
	}
}

// routeNotFound is the router's NotFound handler.
func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{
		Status:  models.StatusError,
		Code:    codeNotFound,
		Message: "no such route",
	}, http.StatusNotFound)
}
