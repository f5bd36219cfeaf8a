// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"path/filepath"
	"strings"
)

// resolve validates relPath and joins it to the vault root. A path is
// rejected with ErrBadPath if, after cleaning, it is absolute, escapes the
// root via "..", or names the history or spool directory at any depth.
func (s *Store) resolve(relPath string) (string, error) {
	if relPath == "" || filepath.IsAbs(relPath) {
		return "", ErrBadPath
	}

	cleaned := filepath.Clean(relPath)
	if cleaned == "." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || cleaned == ".." {
		return "", ErrBadPath
	}

	for _, part := range strings.Split(filepath.ToSlash(cleaned), "/") {
		if isReservedName(part) {
			return "", ErrBadPath
		}
	}

	full := filepath.Join(s.root, cleaned)
	rel, err := filepath.Rel(s.root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrBadPath
	}

	return full, nil
}
