package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-access-desk/internal/accesscode"
	"github.com/MKhiriev/go-access-desk/models"
)

// PlanService exposes the pricing catalog and the plan-selection step of the
// pricing page.
type PlanService interface {
	// Plans returns the catalog in display order.
	Plans(ctx context.Context) ([]models.Plan, error)

	// Plan returns a single plan or an error wrapping store.ErrPlanNotFound.
	Plan(ctx context.Context, planID string) (models.Plan, error)

	// Price renders the plan price for cycle: "$19", "$190" or "Custom".
	Price(plan models.Plan, cycle models.BillingCycle) string

	// Period renders the billing period suffix: "/month", "/year", or ""
	// for custom plans.
	Period(plan models.Plan, cycle models.BillingCycle) string

	// AnnualSavings returns how many dollars a year the annual price saves
	// compared to twelve monthly payments. ok is false for free and custom
	// plans and when there is nothing to save.
	AnnualSavings(plan models.Plan) (savings int, ok bool)

	// SelectPlan validates the choice and returns the selection record.
	SelectPlan(ctx context.Context, planID string, cycle models.BillingCycle) (models.PlanSelection, error)
}

// FormatService exposes the registered access-code formats.
type FormatService interface {
	// Formats returns the registered formats in registration order.
	Formats(ctx context.Context) []accesscode.FormatSpec

	// Format returns one format or an error wrapping
	// accesscode.ErrUnknownFormat.
	Format(ctx context.Context, formatID string) (accesscode.FormatSpec, error)

	// Register adds or replaces formats. Invalid formats are skipped and
	// reported in the joined error; valid ones are still registered.
	Register(ctx context.Context, formats ...accesscode.FormatSpec) error
}

// AccessService drives the secure-entry flow: it opens an editing session,
// turns a complete code into an access grant and discards the session.
type AccessService interface {
	// Open starts a new session on the configured default format.
	Open(ctx context.Context) (*AccessSession, error)

	// Submit returns a grant for the session's code. It fails with
	// [ErrIncompleteCode] while the code is not complete. The session is
	// closed on success. Submit and Close write to the session editor and
	// must be called by the session owner.
	Submit(ctx context.Context, session *AccessSession) (models.AccessGrant, error)

	// Close clears the session's editor. Safe to call more than once.
	Close(ctx context.Context, session *AccessSession)
}

// AppInfoService reports the version of the running application and the
// catalog it serves.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string

	// GetAppInfo returns the version, the default and registered access-code
	// formats and the number of plans.
	GetAppInfo(ctx context.Context) (models.AppInfo, error)
}

// CatalogRefreshJob keeps the client catalog in sync with the server.
type CatalogRefreshJob interface {
	// RefreshNow fetches plans and formats once and applies them.
	RefreshNow(ctx context.Context) error

	// Start launches a background goroutine calling RefreshNow every
	// interval. Any previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and waits for it.
	Stop()
}
