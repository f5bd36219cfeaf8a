package server

import (
	"context"
	"net/http"

	"github.com/tanq16/yamanaka/internal/config"
	"github.com/tanq16/yamanaka/internal/logger"
)

type server struct {
	ctx        context.Context
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer wraps router behind an HTTP server listening on cfg's address.
// ctx governs shutdown: when it is cancelled, RunServer returns after
// draining in-flight requests.
func NewServer(ctx context.Context, router http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	if cfg.ListenAddress == "" {
		return nil, errNoListenAddress
	}

	logger.Info().Str("address", cfg.ListenAddress).Msg("creating new server...")

	return &server{
		ctx:        ctx,
		httpServer: newHTTPServer(router, cfg.ListenAddress),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	s.logger.Info().Msg("launching HTTP server")
	go s.httpServer.RunServer()

	<-s.ctx.Done()
	s.Shutdown()
	s.logger.Info().Msg("server shutdown gracefully")
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
