package config

import (
	"testing"

	"github.com/MKhiriev/go-dataset-loader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()
	return cfg
}

func TestApplyDefaults_AddsScheme(t *testing.T) {
	cfg := &StructuredConfig{Adapter: Adapter{HTTPAddress: "localhost:5173/api/"}}
	cfg.applyDefaults()
	assert.Equal(t, "http://localhost:5173/api", cfg.Adapter.HTTPAddress)

	cfg = &StructuredConfig{Adapter: Adapter{HTTPAddress: "https://www.comet.com/opik/api"}}
	cfg.applyDefaults()
	assert.Equal(t, "https://www.comet.com/opik/api", cfg.Adapter.HTTPAddress)
}

func TestApplyDefaults_KeepsSetValues(t *testing.T) {
	cfg := &StructuredConfig{
		Workers: Workers{BatchSize: 50, MaxAttempts: 2},
		Storage: Storage{DB: DB{DSN: "postgres://u:p@localhost/loader"}},
	}
	cfg.applyDefaults()

	assert.Equal(t, 50, cfg.Workers.BatchSize)
	assert.Equal(t, 2, cfg.Workers.MaxAttempts)
	assert.Equal(t, "postgres://u:p@localhost/loader", cfg.Storage.DB.DSN)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.App.LogLevel = "loud" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "address without host",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.HTTPAddress = "http://" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.RequestTimeout = -1 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "blank dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "  " },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "batch size above limit",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.BatchSize = MaxBatchSize + 1 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "negative batch size",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.BatchSize = -5 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "negative max attempts",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.MaxAttempts = -1 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "bad metrics address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.MetricsAddress = "nowhere" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "both dataset name and id",
			mutate: func(cfg *StructuredConfig) {
				cfg.Target.DatasetName = "evals"
				cfg.Target.DatasetID = "42"
			},
			wantErr: ErrInvalidTargetConfigs,
		},
		{
			name:   "no target is fine",
			mutate: func(cfg *StructuredConfig) { cfg.Target = Target{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ReportsEveryGroup(t *testing.T) {
	cfg := validConfig()
	cfg.App.LogLevel = "loud"
	cfg.Workers.BatchSize = 0

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

func TestTarget_Ref(t *testing.T) {
	ref, err := Target{DatasetName: "evals"}.Ref()
	require.NoError(t, err)
	assert.Equal(t, models.ByName("evals"), ref)

	_, err = Target{}.Ref()
	assert.ErrorIs(t, err, models.ErrMissingDatasetReference)
}
