// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":        "1.2.3",
		"APP_FORMATS_FILE":   "/etc/formats.yaml",
		"APP_DEFAULT_FORMAT": "MDA",
		"APP_CASE_FOLDING":   "true",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":  "30s",
		"SERVER_RATE_LIMIT_RPS":   "12.5",
		"SERVER_RATE_LIMIT_BURST": "25",
		"SERVER_TRUSTED_PROXIES":  "10.0.0.0/8,192.168.1.10",

		"ADAPTER_ADDRESS":         "http://localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT": "10s",

		"WORKERS_CATALOG_REFRESH_INTERVAL": "2m",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/etc/formats.yaml", cfg.App.FormatsFile)
	assert.Equal(t, "MDA", cfg.App.DefaultFormat)
	assert.True(t, cfg.App.CaseFolding)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 12.5, cfg.Server.RateLimitRPS)
	assert.Equal(t, 25, cfg.Server.RateLimitBurst)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.10"}, cfg.Server.TrustedProxies)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 2*time.Minute, cfg.Workers.CatalogRefreshInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "not-a-duration")

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_NormalisesValues(t *testing.T) {
	t.Setenv("APP_DEFAULT_FORMAT", " mda ")
	t.Setenv("SERVER_TRUSTED_PROXIES", " 10.0.0.0/8 , ,1.2.3.4,")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "MDA", cfg.App.DefaultFormat)
	assert.Equal(t, []string{"10.0.0.0/8", "1.2.3.4"}, cfg.Server.TrustedProxies)
}

func TestParseEnv_BlankProxyListLeavesNil(t *testing.T) {
	t.Setenv("SERVER_TRUSTED_PROXIES", " , ")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Nil(t, cfg.Server.TrustedProxies)
	assert.Equal(t, "", cfg.App.DefaultFormat)
}
