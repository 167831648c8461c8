package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid dataset API client settings
	// (for example, a malformed base URL or a non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid staging store settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid batching or flush settings
	// (for example, a batch size above the API limit).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidTargetConfigs indicates that both a dataset name and a dataset
	// id were configured.
	ErrInvalidTargetConfigs = errors.New("invalid target configuration")
)
