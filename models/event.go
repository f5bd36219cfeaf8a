// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Event stream frame names. file_created is reserved but never emitted —
// the server treats create and update as the same upsert event.
const (
	EventFileCreated      = "file_created"
	EventFileUpdated      = "file_updated"
	EventFileDeleted      = "file_deleted"
	EventFullSyncRequired = "full_sync_required"
)

// FileUpdatedEvent is the payload of a file_updated frame. Content is
// base64-encoded. There is deliberately no sender field on this type —
// suppression of the originating device happens in the broadcaster, never
// by filtering a field at serialization time.
type FileUpdatedEvent struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// FileDeletedEvent is the payload of a file_deleted frame.
type FileDeletedEvent struct {
	Path string `json:"path"`
}

// FullSyncRequiredEvent is the payload of a full_sync_required frame, sent
// when a subscriber's incremental view can no longer be trusted.
type FullSyncRequiredEvent struct {
	Message string `json:"message"`
}
