// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package spool implements the Missed-Event Spool: a durable per-device
// backlog of events for subscribers that are offline or whose channel has
// overflowed.
//
// Grounded on original_source/server/state/missed.go. Filenames are
// nanosecond timestamps as in the original, with a monotonically
// increasing in-process sequence number appended to disambiguate writes
// that land in the same nanosecond — wall-clock resolution is not always
// fine enough, and is not guaranteed monotonic across goroutines on every
// platform.
package spool

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/tanq16/yamanaka/internal/events"
	"github.com/tanq16/yamanaka/internal/logger"
)

const dirName = "missed_events"

// entry is the on-disk representation of one spooled event: a tag naming
// which events.Event variant it is, plus the variant's own payload.
type entry struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
}

// Spool persists per-device event queues under <root>/missed_events.
type Spool struct {
	root string
	log  *logger.Logger
	seq  uint64
}

// New returns a Spool rooted at root (the vault root directory).
func New(root string, log *logger.Logger) *Spool {
	return &Spool{root: root, log: log}
}

// Append serializes ev and writes it under
// <root>/missed_events/<deviceID>/<ns>_<seq>.json, creating the device's
// directory if needed. Failures are logged and dropped — see spec.md §7,
// SpoolError.
func (s *Spool) Append(deviceID string, ev events.Event) {
	dir := filepath.Join(s.root, dirName, deviceID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		s.log.Error().Err(err).Str("device_id", deviceID).Msg("could not create spool directory")
		return
	}

	payload, err := json.Marshal(ev.Payload())
	if err != nil {
		s.log.Error().Err(err).Str("device_id", deviceID).Msg("could not marshal spooled event payload")
		return
	}

	data, err := json.Marshal(entry{Name: ev.Name(), Payload: payload})
	if err != nil {
		s.log.Error().Err(err).Str("device_id", deviceID).Msg("could not marshal spooled event")
		return
	}

	seq := atomic.AddUint64(&s.seq, 1)
	fileName := strconv.FormatInt(time.Now().UnixNano(), 10) + "_" + strconv.FormatUint(seq, 10) + ".json"
	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		s.log.Error().Err(err).Str("device_id", deviceID).Msg("could not write spooled event")
	}
}

// Drained is one deserialized event ready for replay, paired with its
// original event name.
type Drained struct {
	Name    string
	Payload json.RawMessage
}

// Count returns the number of spooled entries for deviceID without
// draining them. A missing directory yields zero.
func (s *Spool) Count(deviceID string) int {
	dir := filepath.Join(s.root, dirName, deviceID)
	files, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	return len(files)
}

// Drain reads every spooled entry for deviceID in chronological order,
// then removes the device's entire spool directory. A missing directory
// yields an empty slice, not an error. A file that fails to deserialize is
// logged and skipped; the remaining files are still returned.
func (s *Spool) Drain(deviceID string) []Drained {
	dir := filepath.Join(s.root, dirName, deviceID)
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		if !f.IsDir() {
			names = append(names, f.Name())
		}
	}
	sort.Slice(names, func(i, j int) bool {
		ansi, aseq := parseSpoolName(names[i])
		bnsi, bseq := parseSpoolName(names[j])
		if ansi != bnsi {
			return ansi < bnsi
		}
		return aseq < bseq
	})

	drained := make([]Drained, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			s.log.Error().Err(err).Str("device_id", deviceID).Str("file", name).Msg("could not read spooled event")
			continue
		}
		var e entry
		if err := json.Unmarshal(data, &e); err != nil {
			s.log.Error().Err(err).Str("device_id", deviceID).Str("file", name).Msg("could not unmarshal spooled event")
			continue
		}
		drained = append(drained, Drained{Name: e.Name, Payload: e.Payload})
	}

	if err := os.RemoveAll(dir); err != nil {
		s.log.Error().Err(err).Str("device_id", deviceID).Msg("could not clear spool directory")
	}

	return drained
}

// parseSpoolName extracts the nanosecond timestamp and sequence number
// from a "<ns>_<seq>.json" filename for numeric ordering, so Drain's
// chronological guarantee does not depend on either component being a
// fixed width. A name that fails to parse sorts as (0, 0), ahead of every
// well-formed entry.
func parseSpoolName(name string) (ns, seq int64) {
	trimmed := strings.TrimSuffix(name, ".json")
	parts := strings.SplitN(trimmed, "_", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	ns, err1 := strconv.ParseInt(parts[0], 10, 64)
	seq, err2 := strconv.ParseInt(parts[1], 10, 64)
	if err1 != nil || err2 != nil {
		return 0, 0
	}
	return ns, seq
}
