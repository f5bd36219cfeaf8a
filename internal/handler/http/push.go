// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/tanq16/yamanaka/internal/app"
	"github.com/tanq16/yamanaka/internal/httputil"
	"github.com/tanq16/yamanaka/internal/logger"
	"github.com/tanq16/yamanaka/models"
)

// push applies an incremental set of deletes and updates from a device.
// Per-file failures are recovered inside the engine; only a malformed
// request body fails the whole call.
func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("device_id")

	var req models.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	h.engine.Push(r.Context(), deviceID, req)

	resp := models.SuccessResponse{Status: "success, push processed and changes broadcasted"}
	if _, err := httputil.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("could not write push response")
	}
}
