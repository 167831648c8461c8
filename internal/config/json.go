package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		APIKey    string `json:"api_key"`
		Workspace string `json:"workspace"`
		LogLevel  string `json:"log_level"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RetryAttempts  uint64   `json:"retry_attempts"`
		RetryBackoff   Duration `json:"retry_backoff"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		FlushInterval Duration `json:"flush_interval"`
		BatchSize     int      `json:"batch_size"`
		FlushLimit    int      `json:"flush_limit"`
		MaxAttempts   int      `json:"max_attempts"`
	} `json:"workers,omitempty"`

	Server struct {
		MetricsAddress string `json:"metrics_address"`
	} `json:"server,omitempty"`

	Target struct {
		DatasetName       string `json:"dataset_name"`
		DatasetID         string `json:"dataset_id"`
		SkipDeduplication bool   `json:"skip_deduplication"`
	} `json:"target,omitempty"`
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
		App: App{
			APIKey:    jsonCfg.App.APIKey,
			Workspace: jsonCfg.App.Workspace,
			LogLevel:  jsonCfg.App.LogLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			RetryAttempts:  jsonCfg.Adapter.RetryAttempts,
			RetryBackoff:   time.Duration(jsonCfg.Adapter.RetryBackoff),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Workers: Workers{
			FlushInterval: time.Duration(jsonCfg.Workers.FlushInterval),
			BatchSize:     jsonCfg.Workers.BatchSize,
			FlushLimit:    jsonCfg.Workers.FlushLimit,
			MaxAttempts:   jsonCfg.Workers.MaxAttempts,
		},
		Server: Server{
			MetricsAddress: jsonCfg.Server.MetricsAddress,
		},
		Target: Target{
			DatasetName:       jsonCfg.Target.DatasetName,
			DatasetID:         jsonCfg.Target.DatasetID,
			SkipDeduplication: jsonCfg.Target.SkipDeduplication,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
