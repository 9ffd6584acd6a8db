package service

import (
	"fmt"

	"github.com/MKhiriev/go-access-desk/internal/accesscode"
	"github.com/MKhiriev/go-access-desk/internal/adapter"
	"github.com/MKhiriev/go-access-desk/internal/config"
	"github.com/MKhiriev/go-access-desk/internal/logger"
	"github.com/MKhiriev/go-access-desk/internal/store"
)

// ClientServices groups the services used by the TUI.
type ClientServices struct {
	PlanService   PlanService
	FormatService FormatService
	AccessService AccessService

	// RefreshJob is nil when the client runs offline.
	RefreshJob CatalogRefreshJob
}

// NewClientServices wires the client-side services. serverAdapter may be nil,
// in which case the client works from the local catalog only.
func NewClientServices(plans store.PlanStorage, registry *accesscode.Registry, serverAdapter adapter.ServerAdapter, cfg config.ClientApp, logger *logger.Logger) (*ClientServices, error) {
	formatSvc := NewFormatService(registry, logger)

	accessSvc, err := NewAccessService(registry, AccessOptions{
		DefaultFormat: cfg.DefaultFormat,
		CaseFolding:   cfg.CaseFolding,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating access service: %w", err)
	}

	services := &ClientServices{
		PlanService:   NewPlanService(plans, logger),
		FormatService: formatSvc,
		AccessService: accessSvc,
	}
	if serverAdapter != nil {
		services.RefreshJob = NewCatalogRefreshJob(serverAdapter, plans, formatSvc, logger)
	}

	return services, nil
}
