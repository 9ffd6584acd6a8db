package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-access-desk/internal/adapter"
	"github.com/MKhiriev/go-access-desk/internal/logger"
	"github.com/MKhiriev/go-access-desk/internal/store"
	"github.com/MKhiriev/go-access-desk/internal/validators"
)

const defaultRefreshInterval = 5 * time.Minute

type catalogRefreshJob struct {
	serverAdapter adapter.ServerAdapter
	plans         store.PlanStorage
	formats       FormatService
	validator     validators.Validator

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewCatalogRefreshJob creates a job that pulls plans and formats from the
// server into the local catalog. The job is idle until Start is called.
func NewCatalogRefreshJob(serverAdapter adapter.ServerAdapter, plans store.PlanStorage, formats FormatService, logger *logger.Logger) CatalogRefreshJob {
	return &catalogRefreshJob{
		serverAdapter: serverAdapter,
		plans:         plans,
		formats:       formats,
		validator:     validators.NewPlanValidator(),
		logger:        logger,
	}
}

// RefreshNow implements CatalogRefreshJob. Plans and formats are refreshed
// independently: a failure on one side keeps the previous snapshot of that
// side and is reported in the joined error.
func (j *catalogRefreshJob) RefreshNow(ctx context.Context) error {
	return errors.Join(j.refreshPlans(ctx), j.refreshFormats(ctx))
}

func (j *catalogRefreshJob) refreshPlans(ctx context.Context) error {
	plans, err := j.serverAdapter.GetPlans(ctx)
	if err != nil {
		j.logger.Err(err).Msg("error fetching plans, keeping previous catalog")
		return fmt.Errorf("error fetching plans: %w", err)
	}

	if err = j.validator.Validate(ctx, plans); err != nil {
		j.logger.Err(err).Msg("server sent an invalid catalog, keeping previous catalog")
		return fmt.Errorf("error validating plans: %w", err)
	}

	if err = j.plans.ReplacePlans(ctx, plans); err != nil {
		j.logger.Err(err).Msg("error replacing plans, keeping previous catalog")
		return fmt.Errorf("error replacing plans: %w", err)
	}

	j.logger.Debug().Int("plans", len(plans)).Msg("plans refreshed")
	return nil
}

func (j *catalogRefreshJob) refreshFormats(ctx context.Context) error {
	formats, err := j.serverAdapter.GetFormats(ctx)
	if err != nil {
		j.logger.Err(err).Msg("error fetching access code formats")
		return fmt.Errorf("error fetching formats: %w", err)
	}

	if err = j.formats.Register(ctx, formats...); err != nil {
		return fmt.Errorf("error registering formats: %w", err)
	}

	j.logger.Debug().Int("formats", len(formats)).Msg("access code formats refreshed")
	return nil
}

// Start implements CatalogRefreshJob. It stops any previously running job,
// then launches a background goroutine that calls RefreshNow every interval.
// If interval is zero or negative it defaults to 5 minutes. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *catalogRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.RefreshNow(jobCtx)
			}
		}
	}()
}

// Stop implements CatalogRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *catalogRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
