// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-dataset-loader/models"
)

// StructuredConfig is the top-level configuration container for the
// go-dataset-loader application. It aggregates all sub-configurations and is
// populated by merging values from an optional JSON file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds credentials and logging settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the dataset API address, timeouts and retry policy.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the staging store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds batching and flush job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Server holds the metrics endpoint address used by the serve command.
	Server Server `envPrefix:"SERVER_"`

	// Target names the dataset that commands operate on.
	Target Target `envPrefix:"TARGET_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args are the positional command-line arguments left after flag parsing
	// (the command and its operands).
	Args []string
}

// App holds application-level configuration values.
type App struct {
	// APIKey is sent in the Authorization header of every API request.
	// Env: APP_API_KEY
	APIKey string `env:"API_KEY"`

	// Workspace is sent in the Comet-Workspace header when set.
	// Env: APP_WORKSPACE
	Workspace string `env:"WORKSPACE"`

	// LogLevel is one of "debug", "info", "warn", "error".
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter holds settings of the outbound dataset API client.
type Adapter struct {
	// HTTPAddress is the base URL of the dataset API
	// (e.g. "http://localhost:5173/api"). A scheme-less value gets "http://".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single API request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryAttempts is how many times a transient upload failure is retried.
	// Env: ADAPTER_RETRY_ATTEMPTS
	RetryAttempts uint64 `env:"RETRY_ATTEMPTS"`

	// RetryBackoff is the base delay of the exponential retry backoff.
	// Env: ADAPTER_RETRY_BACKOFF
	RetryBackoff time.Duration `env:"RETRY_BACKOFF"`
}

// Storage groups the configuration for the staging store.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the staging store.
type DB struct {
	// DSN selects the backend: a "postgres://" or "postgresql://" URL opens
	// Postgres, anything else is a SQLite file path (an optional "sqlite://"
	// prefix is stripped).
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds batching and flush settings.
type Workers struct {
	// FlushInterval is how often the serve command flushes staged items.
	// Env: WORKERS_FLUSH_INTERVAL
	FlushInterval time.Duration `env:"FLUSH_INTERVAL"`

	// BatchSize is the maximum number of items per API request (1..1000).
	// Env: WORKERS_BATCH_SIZE
	BatchSize int `env:"BATCH_SIZE"`

	// FlushLimit caps how many staged items a single flush reads.
	// Env: WORKERS_FLUSH_LIMIT
	FlushLimit int `env:"FLUSH_LIMIT"`

	// MaxAttempts is how many failed flushes a staged item survives before it
	// is marked failed.
	// Env: WORKERS_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`
}

// Server holds the metrics endpoint settings.
type Server struct {
	// MetricsAddress is the "host:port" the serve command exposes /metrics
	// and /healthz on. Empty disables the endpoint. A bare ":port" binds
	// 127.0.0.1; the flush and requeue endpoints are unauthenticated, so
	// any other host should stay on a trusted network.
	// Env: SERVER_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`
}

// Target names the dataset commands operate on. At most one of DatasetName
// and DatasetID may be set.
type Target struct {
	// Env: TARGET_DATASET_NAME
	DatasetName string `env:"DATASET_NAME"`

	// Env: TARGET_DATASET_ID
	DatasetID string `env:"DATASET_ID"`

	// SkipDeduplication disables content-hash deduplication of items.
	// Env: TARGET_SKIP_DEDUPLICATION
	SkipDeduplication bool `env:"SKIP_DEDUPLICATION"`
}

// Ref converts the target into a dataset reference.
func (t Target) Ref() (models.DatasetRef, error) {
	return models.NewDatasetRefFromFields(&t.DatasetName, &t.DatasetID)
}

// Default values applied to fields left empty by every source.
const (
	DefaultHTTPAddress    = "http://localhost:5173/api"
	DefaultRequestTimeout = 30 * time.Second
	DefaultRetryAttempts  = 3
	DefaultRetryBackoff   = 500 * time.Millisecond
	DefaultDSN            = "loader.db"
	DefaultFlushInterval  = 30 * time.Second
	DefaultBatchSize      = 1000
	DefaultFlushLimit     = 5000
	DefaultMaxAttempts    = 5
	DefaultLogLevel       = "info"

	// MaxBatchSize is the largest batch the dataset API accepts.
	MaxBatchSize = 1000
)

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources in priority order (later wins for non-zero fields):
//  1. JSON file (path resolved from the other two sources)
//  2. Environment variables
//  3. Command-line flags parsed from args
//
// Defaults are applied to whatever is still empty.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
