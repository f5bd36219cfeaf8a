// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package registry implements the Client Registry: the set of devices
// that have ever connected (tracked, persisted) and the subset currently
// holding a live event stream (active, in-memory).
//
// Grounded on original_source/server/state/manager.go and
// original_source/server/state/persistence.go. Persistence of the tracked
// set is fire-and-forget through a mutex distinct from the membership
// lock, exactly as the original's SaveTrackedClients takes a *sync.RWMutex
// separate from the map it is saving — here that separation protects the
// registry's own lock from ever being held across disk I/O.
package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/tanq16/yamanaka/internal/events"
	"github.com/tanq16/yamanaka/internal/logger"
)

const clientsFileName = "clients.json"

// Registry tracks every device id ever seen and which of those currently
// hold a live event-stream channel.
type Registry struct {
	mu      sync.RWMutex
	tracked map[string]bool
	active  map[string]chan events.Event

	persistMu sync.Mutex
	dataDir   string
	log       *logger.Logger
}

// New loads the tracked-device set from <dataDir>/clients.json (an empty
// set if the file does not exist) and returns a ready Registry.
func New(dataDir string, log *logger.Logger) (*Registry, error) {
	tracked, err := loadTracked(dataDir)
	if err != nil {
		return nil, err
	}
	return &Registry{
		tracked: tracked,
		active:  make(map[string]chan events.Event),
		dataDir: dataDir,
		log:     log,
	}, nil
}

// Register marks id active with ch as its delivery channel. If id was not
// already tracked, it is added to the tracked set and a fire-and-forget
// persistence write is triggered.
func (r *Registry) Register(id string, ch chan events.Event) {
	r.mu.Lock()
	r.active[id] = ch
	isNew := !r.tracked[id]
	if isNew {
		r.tracked[id] = true
	}
	r.mu.Unlock()

	if isNew {
		go r.persist()
	}
}

// Deregister removes id from the active set and closes its channel. The
// tracked set is left untouched — devices are never untracked.
func (r *Registry) Deregister(id string) {
	r.mu.Lock()
	ch, ok := r.active[id]
	if ok {
		delete(r.active, id)
	}
	r.mu.Unlock()

	if ok {
		close(ch)
	}
}

// IsActive reports whether id currently holds a live event stream.
func (r *Registry) IsActive(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.active[id]
	return ok
}

// ActiveChannel returns id's delivery channel and whether it is active.
func (r *Registry) ActiveChannel(id string) (chan events.Event, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ch, ok := r.active[id]
	return ch, ok
}

// AllTracked returns every device id the registry has ever seen, in no
// particular order.
func (r *Registry) AllTracked() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.tracked))
	for id := range r.tracked {
		ids = append(ids, id)
	}
	return ids
}

func (r *Registry) persist() {
	r.persistMu.Lock()
	defer r.persistMu.Unlock()

	r.mu.RLock()
	snapshot := make(map[string]bool, len(r.tracked))
	for id := range r.tracked {
		snapshot[id] = true
	}
	r.mu.RUnlock()

	if err := os.MkdirAll(r.dataDir, 0755); err != nil {
		r.log.Error().Err(err).Msg("could not create data directory for tracked clients")
		return
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		r.log.Error().Err(err).Msg("could not marshal tracked clients")
		return
	}

	path := filepath.Join(r.dataDir, clientsFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		r.log.Error().Err(err).Msg("could not write tracked clients")
	}
}

func loadTracked(dataDir string) (map[string]bool, error) {
	path := filepath.Join(dataDir, clientsFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]bool), nil
		}
		return nil, err
	}

	tracked := make(map[string]bool)
	if err := json.Unmarshal(data, &tracked); err != nil {
		return nil, err
	}
	return tracked, nil
}
