package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

type httpServer struct {
	server *http.Server
}

func newHTTPServer(handler http.Handler, addr string) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:    addr,
			Handler: handler,
		},
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Printf("HTTP server ListenAndServe: %v\n", err)
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		fmt.Printf("HTTP server Shutdown: %v\n", err)
	}
}
