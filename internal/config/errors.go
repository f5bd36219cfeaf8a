package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid after defaults have been
// applied.
var (
	// ErrInvalidVaultConfig indicates the vault root directory is empty.
	ErrInvalidVaultConfig = errors.New("invalid vault configuration")
	// ErrInvalidServerConfig indicates the HTTP listen address is empty.
	ErrInvalidServerConfig = errors.New("invalid server configuration")
	// ErrInvalidSyncConfig indicates a non-positive resync threshold.
	ErrInvalidSyncConfig = errors.New("invalid sync configuration")
	// ErrInvalidSnapshotConfig indicates a non-positive snapshot interval.
	ErrInvalidSnapshotConfig = errors.New("invalid snapshot configuration")
)
