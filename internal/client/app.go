package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-access-desk/internal/config"
	"github.com/MKhiriev/go-access-desk/internal/logger"
	"github.com/MKhiriev/go-access-desk/internal/service"
	"github.com/MKhiriev/go-access-desk/internal/tui"
	"github.com/MKhiriev/go-access-desk/internal/workers"
)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp wires the client runtime. When the client is online the catalog
// refresh job is registered as a background worker.
func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errNoServices
	}
	if ui == nil {
		return nil, errNoUI
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(workers.NewCatalogRefreshWorker(services.RefreshJob, cfg.CatalogRefreshInterval)),
		logger:   logger,
	}, nil
}

func (a *App) Run() error {
	return a.run(context.Background())
}

func (a *App) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var startupErr error
	if a.services.RefreshJob != nil {
		if err := a.services.RefreshJob.RefreshNow(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("initial catalog refresh failed, using local catalog")
			startupErr = err
		}
	}

	a.workers.Run(ctx)
	defer a.workers.Stop()

	a.logger.Info().Int("workers", a.workers.Len()).Msg("client started")

	err := a.ui.Run(ctx, startupErr)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error running ui: %w", err)
	}
	return nil
}
