// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package history

import (
	"context"
	"time"

	"github.com/tanq16/yamanaka/internal/logger"
)

// Locker is the subset of *vault.Store the snapshotter needs to serialize
// its commits against concurrent vault mutations.
type Locker interface {
	Lock()
	Unlock()
}

// Snapshotter periodically commits the vault into a Store on a fixed
// interval. It implements the workers.Worker interface (Run()) so it
// composes with any other background job the same way.
type Snapshotter struct {
	store    Store
	vault    Locker
	interval time.Duration
	log      *logger.Logger
	ctx      context.Context
}

// NewSnapshotter returns a Snapshotter that commits to store every
// interval, holding vault's exclusive lock for the duration of each
// commit. ctx governs the lifetime of the ticker loop — Run returns when
// ctx is cancelled, letting any in-flight tick finish first.
func NewSnapshotter(ctx context.Context, store Store, vault Locker, interval time.Duration, log *logger.Logger) *Snapshotter {
	return &Snapshotter{store: store, vault: vault, interval: interval, log: log, ctx: ctx}
}

// Run blocks, firing Tick every interval until its context is cancelled.
func (s *Snapshotter) Run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.Tick("periodic snapshot")
		}
	}
}

// Tick performs a single commit attempt with the given message, under the
// vault's exclusive lock. Failures are logged and never propagated — the
// next tick (or the next push-triggered commit) will catch up.
func (s *Snapshotter) Tick(message string) {
	s.vault.Lock()
	defer s.vault.Unlock()

	// The commit runs detached from s.ctx so that a shutdown does not kill
	// a snapshot already in progress.
	if _, err := s.store.Commit(context.WithoutCancel(s.ctx), message); err != nil {
		s.log.Error().Err(err).Msg("history snapshot failed")
	}
}
