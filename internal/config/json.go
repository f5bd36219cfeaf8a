package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the purpose of
// decoding a JSON config file with `json` tags, since [StructuredConfig]
// itself uses `env` tags for caarlos0/env and cannot cleanly carry both.
type StructuredJSONConfig struct {
	Vault struct {
		RootDir string `json:"root_dir"`
	} `json:"vault,omitempty"`

	Server struct {
		ListenAddress     string   `json:"listen_address"`
		AllowedOrigin     string   `json:"allowed_origin"`
		HeartbeatInterval Duration `json:"heartbeat_interval"`
	} `json:"server,omitempty"`

	Snapshot struct {
		Interval Duration `json:"interval"`
	} `json:"snapshot,omitempty"`

	Sync struct {
		ResyncThreshold int `json:"resync_threshold"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Vault: Vault{
			RootDir: jsonCfg.Vault.RootDir,
		},
		Server: Server{
			ListenAddress:     jsonCfg.Server.ListenAddress,
			AllowedOrigin:     jsonCfg.Server.AllowedOrigin,
			HeartbeatInterval: time.Duration(jsonCfg.Server.HeartbeatInterval),
		},
		Snapshot: Snapshot{
			Interval: time.Duration(jsonCfg.Snapshot.Interval),
		},
		Sync: Sync{
			ResyncThreshold: jsonCfg.Sync.ResyncThreshold,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s" in addition to plain numbers
// of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
