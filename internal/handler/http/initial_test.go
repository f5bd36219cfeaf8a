// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildTarGz(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	for name, content := range files {
		hdr := &tar.Header{
			Name: name,
			Mode: 0o644,
			Size: int64(len(content)),
		}
		require.NoError(t, tw.WriteHeader(hdr))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestInitial_ReplacesVaultContents(t *testing.T) {
	h, vaultRoot := newTestHandlerWithVaultRoot(t)
	require.NoError(t, os.WriteFile(filepath.Join(vaultRoot, "stale.md"), []byte("old"), 0o644))

	archive := buildTarGz(t, map[string]string{"fresh.md": "new content"})

	httpReq := httptest.NewRequest(http.MethodPost, "/api/sync/initial?device_id=device-a", bytes.NewReader(archive))
	rr := httptest.NewRecorder()
	h.initial(rr, httpReq)

	require.Equal(t, http.StatusOK, rr.Code)

	_, err := os.Stat(filepath.Join(vaultRoot, "stale.md"))
	require.True(t, os.IsNotExist(err))

	content, err := os.ReadFile(filepath.Join(vaultRoot, "fresh.md"))
	require.NoError(t, err)
	require.Equal(t, "new content", string(content))
}

func TestInitial_InvalidArchiveReturns500(t *testing.T) {
	h := newTestHandlerWithDeps(t)

	httpReq := httptest.NewRequest(http.MethodPost, "/api/sync/initial?device_id=device-a", bytes.NewReader([]byte("not a gzip archive")))
	rr := httptest.NewRecorder()
	h.initial(rr, httpReq)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}
