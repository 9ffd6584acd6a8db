package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Version is shown in the build-info window when linker flags are absent.
	Version string
	// FormatsFile is an optional YAML file with extra access-code formats.
	FormatsFile string
	// DefaultFormat is selected when the secure-entry flow opens.
	DefaultFormat string
	// CaseFolding enables lower-case entry in the access-code editor.
	CaseFolding bool
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the catalog API address. Empty means offline mode.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// CatalogRefreshInterval defines how often the catalog is refreshed.
	CatalogRefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Workers ClientWorkers
}

// Online reports whether the client should talk to a catalog server.
func (c *ClientConfig) Online() bool {
	return c.Adapter.HTTPAddress != ""
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version:       cfg.App.Version,
			FormatsFile:   cfg.App.FormatsFile,
			DefaultFormat: cfg.App.DefaultFormat,
			CaseFolding:   cfg.App.CaseFolding,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{
			CatalogRefreshInterval: cfg.Workers.CatalogRefreshInterval,
		},
	}
}
