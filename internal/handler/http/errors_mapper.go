package http

import (
	"errors"
	"net/http"

	"github.com/tanq16/yamanaka/internal/history"
	"github.com/tanq16/yamanaka/internal/vault"
)

var errorStatusMap = map[error]int{
	vault.ErrBadPath:   http.StatusBadRequest,
	vault.ErrStorage:   http.StatusInternalServerError,
	vault.ErrArchive:   http.StatusInternalServerError,
	history.ErrHistory: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
