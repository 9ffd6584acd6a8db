// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from APP_*, SERVER_*, ADAPTER_* and WORKERS_*
// variables, then normalises the values shells tend to mangle: format IDs are
// upper-cased and blank or padded proxy entries are cleaned up.
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.App.DefaultFormat = strings.ToUpper(strings.TrimSpace(cfg.App.DefaultFormat))
	cfg.Server.TrustedProxies = cleanList(cfg.Server.TrustedProxies)

	return nil
}

// cleanList trims every entry and drops the empty ones. It returns nil when
// nothing is left so an empty variable does not override lower layers.
func cleanList(items []string) []string {
	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
