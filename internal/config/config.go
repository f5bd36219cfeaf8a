package config

import (
	"time"
)

// Defaults applied to any field left at its zero value after env, flag, and
// JSON sources have all been merged. See spec.md §6 "Configuration".
const (
	DefaultRootDir           = "./data"
	DefaultListenAddress     = ":8080"
	DefaultSnapshotInterval  = 6 * time.Hour
	DefaultResyncThreshold   = 10
	DefaultHeartbeatInterval = 2 * time.Minute
	DefaultAllowedOrigin     = "app://obsidian.md"
)

// StructuredConfig is the top-level configuration container for the
// Yamanaka sync server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Vault holds settings for the on-disk note vault the server manages.
	Vault Vault `envPrefix:"VAULT_"`

	// Server holds network address, CORS, and keep-alive settings for the
	// inbound HTTP/SSE transport.
	Server Server `envPrefix:"SERVER_"`

	// Snapshot holds timing settings for the periodic history snapshotter.
	Snapshot Snapshot `envPrefix:"SNAPSHOT_"`

	// Sync holds settings for the event stream catch-up/resync policy.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Vault holds the location of the note vault on disk.
type Vault struct {
	// RootDir is the path to the vault root directory. Default "./data".
	// Env: VAULT_ROOT_DIR
	RootDir string `env:"ROOT_DIR"`
}

// Server holds network and transport settings for the HTTP/SSE server.
type Server struct {
	// ListenAddress is the TCP address the HTTP server listens on, in
	// "host:port" format (e.g. ":8080"). Default ":8080".
	// Env: SERVER_LISTEN_ADDRESS
	ListenAddress string `env:"LISTEN_ADDRESS"`

	// AllowedOrigin is the CORS Access-Control-Allow-Origin value offered
	// to the embedded editor's plugin origin.
	// Env: SERVER_ALLOWED_ORIGIN
	AllowedOrigin string `env:"ALLOWED_ORIGIN"`

	// HeartbeatInterval is how often the event stream endpoint emits a
	// ":heartbeat" comment frame to keep idle intermediaries from closing
	// the connection. Default 2 minutes.
	// Env: SERVER_HEARTBEAT_INTERVAL
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL"`
}

// Snapshot holds timing settings for the background history snapshotter.
type Snapshot struct {
	// Interval is the fixed period between automatic vault snapshots.
	// Default 6 hours.
	// Env: SNAPSHOT_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
}

// Sync holds settings governing reconnect/catch-up behavior.
type Sync struct {
	// ResyncThreshold is the drained-spool size above which a reconnecting
	// subscriber is told to perform a full resync instead of replaying its
	// backlog. Default 10.
	// Env: SYNC_RESYNC_THRESHOLD
	ResyncThreshold int `env:"RESYNC_THRESHOLD"`
}

// GetStructuredConfig loads, merges, applies defaults to, and validates the
// server configuration from all available sources in the following
// priority order (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// applyDefaults fills in any field still at its zero value after merging.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Vault.RootDir == "" {
		cfg.Vault.RootDir = DefaultRootDir
	}
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.AllowedOrigin == "" {
		cfg.Server.AllowedOrigin = DefaultAllowedOrigin
	}
	if cfg.Server.HeartbeatInterval == 0 {
		cfg.Server.HeartbeatInterval = DefaultHeartbeatInterval
	}
	if cfg.Snapshot.Interval == 0 {
		cfg.Snapshot.Interval = DefaultSnapshotInterval
	}
	if cfg.Sync.ResyncThreshold == 0 {
		cfg.Sync.ResyncThreshold = DefaultResyncThreshold
	}
}
