// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-dataset-loader/models"
	"github.com/rs/zerolog"
)

// applyDefaults fills every field left empty by all sources.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if !strings.Contains(cfg.Adapter.HTTPAddress, "://") {
		cfg.Adapter.HTTPAddress = "http://" + cfg.Adapter.HTTPAddress
	}
	cfg.Adapter.HTTPAddress = strings.TrimRight(cfg.Adapter.HTTPAddress, "/")
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.RetryAttempts == 0 {
		cfg.Adapter.RetryAttempts = DefaultRetryAttempts
	}
	if cfg.Adapter.RetryBackoff == 0 {
		cfg.Adapter.RetryBackoff = DefaultRetryBackoff
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}

	if cfg.Workers.FlushInterval == 0 {
		cfg.Workers.FlushInterval = DefaultFlushInterval
	}
	if cfg.Workers.BatchSize == 0 {
		cfg.Workers.BatchSize = DefaultBatchSize
	}
	if cfg.Workers.FlushLimit == 0 {
		cfg.Workers.FlushLimit = DefaultFlushLimit
	}
	if cfg.Workers.MaxAttempts == 0 {
		cfg.Workers.MaxAttempts = DefaultMaxAttempts
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Every failing group is reported; the result matches each group's sentinel
// with [errors.Is].
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.App.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel))
	}

	if u, err := url.Parse(cfg.Adapter.HTTPAddress); err != nil || u.Host == "" {
		errs = append(errs, fmt.Errorf("%w: address %q", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress))
	}
	if cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.RetryBackoff < 0 {
		errs = append(errs, fmt.Errorf("%w: negative duration", ErrInvalidAdapterConfigs))
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.Workers.BatchSize < 1 || cfg.Workers.BatchSize > MaxBatchSize {
		errs = append(errs, fmt.Errorf("%w: batch size must be between 1 and %d, got %d",
			ErrInvalidWorkerConfigs, MaxBatchSize, cfg.Workers.BatchSize))
	}
	if cfg.Workers.FlushInterval < 0 || cfg.Workers.FlushLimit < 1 || cfg.Workers.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%w: flush interval, flush limit and max attempts must be positive", ErrInvalidWorkerConfigs))
	}

	if cfg.Server.MetricsAddress != "" {
		var addr NetAddress
		if err := addr.Set(cfg.Server.MetricsAddress); err != nil {
			errs = append(errs, fmt.Errorf("%w: metrics address: %w", ErrInvalidAdapterConfigs, err))
		}
	}

	if _, err := cfg.Target.Ref(); errors.Is(err, models.ErrAmbiguousDatasetReference) {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidTargetConfigs, err))
	}

	return errors.Join(errs...)
}
