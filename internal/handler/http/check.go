// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/tanq16/yamanaka/internal/httputil"
	"github.com/tanq16/yamanaka/internal/logger"
	"github.com/tanq16/yamanaka/models"
)

// check reports a constant "ok" payload with no filesystem activity. The
// client catches up via the event stream or a full pull, never via a
// server-advertised version.
func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	if _, err := httputil.WriteJSON(w, models.CheckResponse{Status: "ok"}, http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("could not write check response")
	}
}
