package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanq16/yamanaka/internal/config"
	"github.com/tanq16/yamanaka/internal/logger"
)

func TestNewServer_RejectsEmptyListenAddress(t *testing.T) {
	_, err := NewServer(context.Background(), http.NewServeMux(), config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errNoListenAddress)
}

func TestNewServer_AcceptsConfiguredAddress(t *testing.T) {
	srv, err := NewServer(context.Background(), http.NewServeMux(), config.Server{ListenAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, srv)
}

func TestRunServer_ReturnsWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv, err := NewServer(ctx, http.NewServeMux(), config.Server{ListenAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		srv.RunServer()
		close(done)
	}()

	// Give the HTTP server goroutine a moment to start listening before
	// tearing it down.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunServer did not return after context cancellation")
	}
}

func TestShutdown_IsSafeBeforeRun(t *testing.T) {
	srv, err := NewServer(context.Background(), http.NewServeMux(), config.Server{ListenAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		srv.Shutdown()
	})
}

func TestHTTPServer_RunServerAndShutdown(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := newHTTPServer(mux, "127.0.0.1:0")
	go h.RunServer()

	time.Sleep(20 * time.Millisecond)
	assert.NotPanics(t, func() {
		h.Shutdown()
	})
}

func TestHTTPServer_ServesRequestsThroughHandler(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("fine"))
	})

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "fine", rr.Body.String())
}
