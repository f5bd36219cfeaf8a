// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/tanq16/yamanaka/internal/app"
	"github.com/tanq16/yamanaka/internal/httputil"
	"github.com/tanq16/yamanaka/internal/logger"
	"github.com/tanq16/yamanaka/internal/vault"
	"github.com/tanq16/yamanaka/models"
)

// initial replaces the entire vault (except its history) with the gzipped
// tar archive in the request body. The vault is left in whatever
// intermediate state a failed clean or extract reached; recovery is by
// another initial replace or by operator intervention from history.
func (h *Handler) initial(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("device_id")

	if err := h.engine.InitialReplace(r.Context(), deviceID, r.Body); err != nil {
		message := err.Error()
		if errors.Is(err, vault.ErrArchive) {
			message = app.MsgBadArchive
		}
		writeError(w, r, statusFromError(err), message)
		return
	}

	resp := models.SuccessResponse{Status: "success, initial sync processed. Other clients notified."}
	if _, err := httputil.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("could not write initial sync response")
	}
}
