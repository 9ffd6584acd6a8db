package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPlanID       = errors.New("invalid plan ID")
	ErrDuplicatePlanID     = errors.New("duplicate plan ID")
	ErrEmptyPlanName       = errors.New("plan name is required")
	ErrNegativePrice       = errors.New("plan price cannot be negative")
	ErrEmptyFeature        = errors.New("plan feature cannot be empty")
	ErrInvalidBillingCycle = errors.New("invalid billing cycle")
)
