// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events defines the tagged-union event values the broadcaster
// fans out to subscribers and the spool persists for offline devices.
//
// An Event's wire representation is produced by Payload, which returns one
// of the models package's JSON-taggable structs. The sender device id that
// triggered an event is never part of that payload — suppression of the
// sender's own stream happens in the broadcaster by device id comparison,
// not by a field on the event itself.
package events

import "github.com/tanq16/yamanaka/models"

// Event is satisfied by every frame kind the event stream endpoint can
// emit. Name returns the SSE event name; Payload returns the JSON body.
type Event interface {
	Name() string
	Payload() any
}

// FileUpdated signals a file was created or modified.
type FileUpdated struct {
	Path    string
	Content string // base64-encoded
}

func (e FileUpdated) Name() string { return models.EventFileUpdated }

func (e FileUpdated) Payload() any {
	return models.FileUpdatedEvent{Path: e.Path, Content: e.Content}
}

// FileDeleted signals a file was removed.
type FileDeleted struct {
	Path string
}

func (e FileDeleted) Name() string { return models.EventFileDeleted }

func (e FileDeleted) Payload() any {
	return models.FileDeletedEvent{Path: e.Path}
}

// FullSyncRequired signals that a subscriber's incremental view can no
// longer be trusted and it must discard local state and pull.
type FullSyncRequired struct {
	Message string
}

func (e FullSyncRequired) Name() string { return models.EventFullSyncRequired }

func (e FullSyncRequired) Payload() any {
	return models.FullSyncRequiredEvent{Message: e.Message}
}
