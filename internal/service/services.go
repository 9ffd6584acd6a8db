package service

import (
	"fmt"

	"github.com/MKhiriev/go-access-desk/internal/accesscode"
	"github.com/MKhiriev/go-access-desk/internal/config"
	"github.com/MKhiriev/go-access-desk/internal/logger"
	"github.com/MKhiriev/go-access-desk/internal/store"
)

// Services groups the services backing the catalog HTTP API.
type Services struct {
	PlanService    PlanService
	FormatService  FormatService
	AppInfoService AppInfoService
}

// NewServices wires the server-side services.
func NewServices(plans store.PlanStorage, registry *accesscode.Registry, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, registry, plans, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		PlanService:    NewPlanService(plans, logger),
		FormatService:  NewFormatService(registry, logger),
		AppInfoService: appInfoService,
	}, nil
}
