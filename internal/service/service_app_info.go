package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-access-desk/internal/accesscode"
	"github.com/MKhiriev/go-access-desk/internal/config"
	"github.com/MKhiriev/go-access-desk/internal/logger"
	"github.com/MKhiriev/go-access-desk/internal/store"
	"github.com/MKhiriev/go-access-desk/models"
)

// formatLister is the part of [accesscode.Registry] the info service reads.
type formatLister interface {
	Formats() []accesscode.FormatSpec
}

type appInfoService struct {
	appVersion    string
	defaultFormat string
	formats       formatLister
	plans         store.PlanStorage

	logger *logger.Logger
}

// NewAppInfoService returns an [AppInfoService] reporting cfg.Version together
// with the formats and plans currently served.
func NewAppInfoService(cfg config.App, formats formatLister, plans store.PlanStorage, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	defaultFormat := cfg.DefaultFormat
	if defaultFormat == "" {
		defaultFormat = accesscode.DefaultFormat
	}

	return &appInfoService{
		appVersion:    cfg.Version,
		defaultFormat: defaultFormat,
		formats:       formats,
		plans:         plans,
		logger:        logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetAppInfo(ctx context.Context) (models.AppInfo, error) {
	plans, err := s.plans.Plans(ctx)
	if err != nil {
		return models.AppInfo{}, fmt.Errorf("error counting plans: %w", err)
	}

	specs := s.formats.Formats()
	ids := make([]string, 0, len(specs))
	for _, f := range specs {
		ids = append(ids, f.ID)
	}

	return models.AppInfo{
		Version:       s.appVersion,
		DefaultFormat: s.defaultFormat,
		Formats:       ids,
		Plans:         len(plans),
	}, nil
}
