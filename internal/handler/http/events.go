// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tanq16/yamanaka/internal/app"
	"github.com/tanq16/yamanaka/internal/events"
	"github.com/tanq16/yamanaka/internal/logger"
	"github.com/tanq16/yamanaka/models"
)

// eventChannelCapacity is the small fixed buffer on a subscriber's delivery
// channel; a slow consumer overflows it and falls back to the spool rather
// than blocking the broadcaster.
const eventChannelCapacity = 8

// events is the long-lived output path to one subscriber: it registers a
// device, replays its missed-event backlog (or tells it to resync if the
// backlog is too large), then relays live events until the client
// disconnects.
func (h *Handler) events(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("device_id")
	if deviceID == "" {
		writeError(w, r, http.StatusBadRequest, app.MsgMissingDeviceID)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, r, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	log := logger.FromRequest(r)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	ch := make(chan events.Event, eventChannelCapacity)
	h.registry.Register(deviceID, ch)
	defer h.registry.Deregister(deviceID)

	log.Info().Str("device_id", deviceID).Msg("client connected for events")

	drained := h.spool.Drain(deviceID)
	if len(drained) > h.resyncThreshold {
		writeFullSyncFrame(w, fmt.Sprintf("%d missed updates", len(drained)))
	} else {
		for _, d := range drained {
			writeRawFrame(w, d.Name, d.Payload)
		}
	}
	flusher.Flush()

	ticker := time.NewTicker(h.heartbeatInterval)
	defer ticker.Stop()

	ctx := r.Context()
	for {
		select {
		case ev := <-ch:
			writeFrame(w, ev.Name(), ev.Payload())
			flusher.Flush()
		case <-ticker.C:
			fmt.Fprint(w, ":heartbeat\n\n")
			flusher.Flush()
		case <-ctx.Done():
			log.Info().Str("device_id", deviceID).Msg("client disconnected")
			return
		}
	}
}

// writeFrame marshals payload and writes it as a text/event-stream frame
// named name.
func writeFrame(w http.ResponseWriter, name string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)
}

// writeRawFrame writes a frame whose payload is already serialized JSON,
// as spooled events are when they come back off disk.
func writeRawFrame(w http.ResponseWriter, name string, payload json.RawMessage) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, payload)
}

func writeFullSyncFrame(w http.ResponseWriter, message string) {
	writeFrame(w, events.FullSyncRequired{}.Name(), models.FullSyncRequiredEvent{Message: message})
}
