package store

import "errors"

// Sentinel errors returned by storage methods. Callers should use [errors.Is].
var (
	// ErrPlanNotFound is returned when no plan matches the requested ID.
	ErrPlanNotFound = errors.New("plan was not found")

	// ErrEmptyCatalog is returned when a catalog replacement carries no plans.
	ErrEmptyCatalog = errors.New("plan catalog is empty")
)
