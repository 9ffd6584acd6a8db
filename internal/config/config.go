// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings shared by server and client: version, access-code
	// formats and editor behaviour.
	App App `envPrefix:"APP_"`

	// Server holds the catalog API listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client-side settings for reaching the catalog API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string exposed via /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// FormatsFile is an optional YAML file with extra access-code formats
	// registered on top of the built-in ones.
	// Env: APP_FORMATS_FILE
	FormatsFile string `env:"FORMATS_FILE"`

	// DefaultFormat is the access-code format selected when the secure-entry
	// flow opens (e.g. "RBM").
	// Env: APP_DEFAULT_FORMAT
	DefaultFormat string `env:"DEFAULT_FORMAT"`

	// CaseFolding makes the access-code editor accept lower-case letters and
	// store them upper-cased.
	// Env: APP_CASE_FOLDING
	CaseFolding bool `env:"CASE_FOLDING"`
}

// Server holds network, timeout and throttling settings for the catalog API.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimitRPS is the sustained number of requests per second allowed for
	// one client address. Zero disables rate limiting.
	// Env: SERVER_RATE_LIMIT_RPS
	RateLimitRPS float64 `env:"RATE_LIMIT_RPS"`

	// RateLimitBurst is the bucket size of the per-client limiter.
	// Env: SERVER_RATE_LIMIT_BURST
	RateLimitBurst int `env:"RATE_LIMIT_BURST"`

	// TrustedProxies lists proxy addresses or CIDR prefixes whose
	// X-Forwarded-For and X-Real-IP headers are believed. Requests from any
	// other peer are keyed on the peer address. Empty trusts nobody.
	// Env: SERVER_TRUSTED_PROXIES (comma-separated)
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// Adapter holds settings used by the client to reach the catalog API.
type Adapter struct {
	// HTTPAddress is the catalog API address, with or without scheme.
	// Empty means the client works on the built-in catalog only.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound catalog request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// CatalogRefreshInterval is how often the client re-fetches plans and
	// formats from the server.
	// Env: WORKERS_CATALOG_REFRESH_INTERVAL
	CatalogRefreshInterval time.Duration `env:"CATALOG_REFRESH_INTERVAL"`
}

// Defaults returns the built-in configuration merged beneath every other
// source.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:       "1.0.0",
			DefaultFormat: "RBM",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			RateLimitRPS:   30,
			RateLimitBurst: 60,
		},
		Adapter: Adapter{
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			CatalogRefreshInterval: 5 * time.Minute,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
