// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a [StructuredConfig] from environ, given in os.Environ
// form ("KEY=value"). Names come from the env and envPrefix tags, so
// APP_TOKEN_SIGN_KEY fills App.TokenSignKey. Unset variables stay zero and
// are filled later by flags, the JSON file or defaults.
func parseEnv(environ []string) (*StructuredConfig, error) {
	cfg, err := env.ParseAsWithOptions[StructuredConfig](env.Options{
		Environment: env.ToMap(environ),
	})
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
