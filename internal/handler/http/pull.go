// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/tanq16/yamanaka/internal/app"
	"github.com/tanq16/yamanaka/internal/httputil"
	"github.com/tanq16/yamanaka/internal/logger"
	"github.com/tanq16/yamanaka/models"
)

// pull returns every file currently in the vault.
func (h *Handler) pull(w http.ResponseWriter, r *http.Request) {
	files, err := h.engine.Pull()
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, app.MsgInternalServerError)
		return
	}

	if _, err := httputil.WriteJSON(w, models.PullResponse{Files: files}, http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("could not write pull response")
	}
}
