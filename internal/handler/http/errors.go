// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/tanq16/yamanaka/internal/httputil"
	"github.com/tanq16/yamanaka/internal/logger"
)

// errorResponse is the JSON body written for every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError writes errorResponse{message} with statusCode and logs the
// outcome at warn (client errors) or error (server errors) level.
func writeError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	log := logger.FromRequest(r)
	if statusCode >= http.StatusInternalServerError {
		log.Error().Int("status", statusCode).Str("message", message).Msg("request failed")
	} else {
		log.Warn().Int("status", statusCode).Str("message", message).Msg("request rejected")
	}

	if _, err := httputil.WriteJSON(w, errorResponse{Error: message}, statusCode); err != nil {
		log.Error().Err(err).Msg("could not write error response")
	}
}
