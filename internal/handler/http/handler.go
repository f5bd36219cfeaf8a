// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/tanq16/yamanaka/internal/logger"
	"github.com/tanq16/yamanaka/internal/registry"
	"github.com/tanq16/yamanaka/internal/spool"
	"github.com/tanq16/yamanaka/internal/syncengine"
)

// Handler holds the dependencies every route handler in this package needs.
type Handler struct {
	engine   *syncengine.Engine
	registry *registry.Registry
	spool    *spool.Spool

	resyncThreshold   int
	heartbeatInterval time.Duration
	allowedOrigin     string

	logger *logger.Logger
}

// NewHandler returns a Handler wired to engine, registry, and spool.
// resyncThreshold and heartbeatInterval govern the event stream endpoint's
// catch-up and keep-alive behavior; allowedOrigin configures CORS.
func NewHandler(
	engine *syncengine.Engine,
	reg *registry.Registry,
	sp *spool.Spool,
	resyncThreshold int,
	heartbeatInterval time.Duration,
	allowedOrigin string,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		engine:            engine,
		registry:          reg,
		spool:             sp,
		resyncThreshold:   resyncThreshold,
		heartbeatInterval: heartbeatInterval,
		allowedOrigin:     allowedOrigin,
		logger:            logger,
	}
}
