// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "errors"

var (
	// ErrBadPath indicates a path escaped the vault root, was absolute, or
	// named a reserved directory.
	ErrBadPath = errors.New("bad path")
	// ErrStorage indicates a filesystem failure on write, delete, or walk.
	ErrStorage = errors.New("storage error")
	// ErrArchive indicates a gzipped tar stream was malformed or carried an
	// unsupported entry kind.
	ErrArchive = errors.New("archive error")
)
