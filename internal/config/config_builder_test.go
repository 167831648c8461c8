package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, uint64(DefaultRetryAttempts), cfg.Adapter.RetryAttempts)
	assert.Equal(t, DefaultRetryBackoff, cfg.Adapter.RetryBackoff)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultBatchSize, cfg.Workers.BatchSize)
	assert.Equal(t, DefaultFlushInterval, cfg.Workers.FlushInterval)
	assert.Equal(t, DefaultFlushLimit, cfg.Workers.FlushLimit)
	assert.Equal(t, DefaultMaxAttempts, cfg.Workers.MaxAttempts)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that later configs override non-zero
// fields of earlier ones and leave the rest untouched.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{APIKey: "from-json", Workspace: "json-ws"},
			Workers: Workers{BatchSize: 100},
		},
		&StructuredConfig{
			App:     App{APIKey: "from-env"},
			Workers: Workers{BatchSize: 200},
		},
		&StructuredConfig{
			Workers: Workers{BatchSize: 300},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.APIKey)
	assert.Equal(t, "json-ws", cfg.App.Workspace)
	assert.Equal(t, 300, cfg.Workers.BatchSize)
}

// TestBuild_ValidationError verifies that an invalid merged config is
// rejected.
func TestBuild_ValidationError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Workers: Workers{BatchSize: 5000}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// ── withFlags / withJSON ──────────────────────────────────────────────────────

// TestWithFlags_BadFlag verifies that a flag parse error is recorded.
func TestWithFlags_BadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-batch-size", "many"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// TestWithJSON_NoPath verifies that without a JSON path nothing is added.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_IsPrepended verifies that the JSON config goes first, so
// flag values override it.
func TestWithJSON_IsPrepended(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"api_key": "json-key", "workspace": "json-ws"},
		"workers": map[string]any{"batch_size": 10, "flush_interval": "1m"},
	})

	cfg, err := newConfigBuilder().
		withFlags([]string{"-c", path, "-batch-size", "20", "upload", "items.jsonl"}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.APIKey)
	assert.Equal(t, "json-ws", cfg.App.Workspace)
	assert.Equal(t, 20, cfg.Workers.BatchSize)
	assert.Equal(t, time.Minute, cfg.Workers.FlushInterval)
	assert.Equal(t, []string{"upload", "items.jsonl"}, cfg.Args)
}

// TestWithJSON_MissingFile verifies that an unreadable JSON path is an error.
func TestWithJSON_MissingFile(t *testing.T) {
	_, err := newConfigBuilder().
		withFlags([]string{"-config", "/definitely/not/here.json"}).
		withJSON().
		build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_EnvAndFlags verifies the full pipeline: flags
// override env, env overrides JSON.
func TestGetStructuredConfig_EnvAndFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"api_key": "json-key", "log_level": "debug"},
		"adapter": map[string]any{"http_address": "json-host:5173/api"},
	})
	t.Setenv("CONFIG", path)
	t.Setenv("APP_API_KEY", "env-key")
	t.Setenv("ADAPTER_ADDRESS", "http://env-host:5173/api")

	cfg, err := GetStructuredConfig([]string{"-a", "http://flag-host:5173/api/", "stats"})
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.App.APIKey)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "http://flag-host:5173/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, []string{"stats"}, cfg.Args)
}
