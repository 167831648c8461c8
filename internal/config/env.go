// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// sdkEnv holds the variables the Opik SDKs read. They only fill fields the
// loader's own variables left empty.
type sdkEnv struct {
	URLOverride string `env:"OPIK_URL_OVERRIDE"`
	APIKey      string `env:"OPIK_API_KEY"`
	Workspace   string `env:"OPIK_WORKSPACE"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	var sdk sdkEnv
	if err := env.Parse(&sdk); err != nil {
		return fmt.Errorf("error getting sdk env configs: %w", err)
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = sdk.URLOverride
	}
	if cfg.App.APIKey == "" {
		cfg.App.APIKey = sdk.APIKey
	}
	if cfg.App.Workspace == "" {
		cfg.App.Workspace = sdk.Workspace
	}

	return nil
}
