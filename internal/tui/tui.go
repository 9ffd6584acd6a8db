// Package tui implements the terminal client: the pricing page, the
// access-code page and the build information window.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-access-desk/internal/logger"
	"github.com/MKhiriev/go-access-desk/internal/service"
	"github.com/MKhiriev/go-access-desk/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("client services are not provided")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the pricing page until the user quits. startupErr, when set, is
// shown on the pricing page (typically a failed initial catalog refresh).
func (t *TUI) Run(ctx context.Context, startupErr error) error {
	root := t.rootModel(ctx, startupErr)

	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("user interrupted the client")
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) rootModel(ctx context.Context, startupErr error) RootModel {
	pages := map[string]tea.Model{
		pagePricing: NewPricingModel(ctx, t.services.PlanService, t.services.RefreshJob, startupErr),
		pageAccess:  NewAccessModel(ctx, t.services.AccessService, t.services.FormatService),
	}
	return NewRootModel(pages, pagePricing, t.buildInfo)
}
