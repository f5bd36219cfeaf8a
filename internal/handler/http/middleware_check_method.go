// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tanq16/yamanaka/internal/app"
)

// CheckHTTPMethod returns an [http.HandlerFunc] intended to be registered as
// the router's MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Unlike chi's default, which already responds 405 for a path that matches
// a registered route under a different method, this reports the same 405
// explicitly with a JSON body, so every wrong-method call on a known route
// gets a consistent response shape instead of chi's bare status line.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed)
	}
}
