// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/netip"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.DefaultFormat) == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RateLimitRPS < 0 || cfg.Server.RateLimitBurst < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RateLimitRPS > 0 && cfg.Server.RateLimitBurst == 0 {
		return ErrInvalidServerConfigs
	}

	for _, proxy := range cfg.Server.TrustedProxies {
		if !validProxy(strings.TrimSpace(proxy)) {
			return ErrInvalidServerConfigs
		}
	}

	return nil
}

// validProxy reports whether proxy is an IP address or a CIDR prefix.
func validProxy(proxy string) bool {
	if strings.Contains(proxy, "/") {
		_, err := netip.ParsePrefix(proxy)
		return err == nil
	}
	_, err := netip.ParseAddr(proxy)
	return err == nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.App.DefaultFormat) == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Online() && cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Online() && cfg.Workers.CatalogRefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
