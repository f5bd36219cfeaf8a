// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package broadcast implements the Broadcaster: fan-out of an event to
// every tracked device except its sender, with a slow-consumer and
// offline policy that never blocks the caller.
//
// Grounded on original_source/server/state/manager.go's Broadcast, which
// this generalizes from an unbuffered untyped channel and a
// drop-on-overflow policy to the typed event union and a spool fallback
// for both overflow and offline devices.
package broadcast

import (
	"github.com/tanq16/yamanaka/internal/events"
	"github.com/tanq16/yamanaka/internal/logger"
)

// Registry is the subset of the client registry the Broadcaster needs.
type Registry interface {
	AllTracked() []string
	ActiveChannel(id string) (chan events.Event, bool)
}

// Spool is the subset of the missed-event spool the Broadcaster needs.
type Spool interface {
	Append(deviceID string, ev events.Event)
}

// Broadcaster fans an event out to every tracked device but its sender.
type Broadcaster struct {
	registry Registry
	spool    Spool
	log      *logger.Logger
}

// New returns a Broadcaster backed by registry and spool.
func New(registry Registry, spool Spool, log *logger.Logger) *Broadcaster {
	return &Broadcaster{registry: registry, spool: spool, log: log}
}

// Broadcast delivers ev to every tracked device except sender. An active
// device receives a non-blocking channel send; on overflow, or when the
// device is not active at all, the event is spooled for later replay.
// Broadcast never blocks.
func (b *Broadcaster) Broadcast(sender string, ev events.Event) {
	for _, id := range b.registry.AllTracked() {
		if id == sender {
			continue
		}

		ch, active := b.registry.ActiveChannel(id)
		if !active {
			b.spool.Append(id, ev)
			continue
		}

		select {
		case ch <- ev:
		default:
			b.log.Warn().Str("device_id", id).Str("event", ev.Name()).Msg("subscriber channel full, spooling event")
			b.spool.Append(id, ev)
		}
	}
}
