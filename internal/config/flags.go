package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a              HTTP listen address in format [host]:port
//	-root-dir       vault root directory
//	-allowed-origin CORS allow-origin value for the editor plugin
//	-heartbeat      event-stream keep-alive interval (e.g., "2m")
//	-snapshot-interval history snapshot interval (e.g., "6h")
//	-resync-threshold  drained-spool size above which a reconnect triggers a full resync
//	-c/-config      JSON config file path
func ParseFlags() *StructuredConfig {
	var listenAddress string
	var rootDir string
	var allowedOrigin string
	var heartbeatInterval time.Duration
	var snapshotInterval time.Duration
	var resyncThreshold int
	var jsonConfigPath string

	flag.StringVar(&listenAddress, "a", "", "HTTP listen address host:port")
	flag.StringVar(&rootDir, "root-dir", "", "Vault root directory")
	flag.StringVar(&allowedOrigin, "allowed-origin", "", "CORS allow-origin value")
	flag.DurationVar(&heartbeatInterval, "heartbeat", 0, "Event-stream keep-alive interval (e.g., 2m)")
	flag.DurationVar(&snapshotInterval, "snapshot-interval", 0, "History snapshot interval (e.g., 6h)")
	flag.IntVar(&resyncThreshold, "resync-threshold", 0, "Drained-spool size above which a reconnect triggers a full resync")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Vault: Vault{
			RootDir: rootDir,
		},
		Server: Server{
			ListenAddress:     listenAddress,
			AllowedOrigin:     allowedOrigin,
			HeartbeatInterval: heartbeatInterval,
		},
		Snapshot: Snapshot{
			Interval: snapshotInterval,
		},
		Sync: Sync{
			ResyncThreshold: resyncThreshold,
		},
		JSONFilePath: jsonConfigPath,
	}
}
