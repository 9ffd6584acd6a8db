// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the in-memory pricing catalog shared by the server
// handlers and the client TUI. Nothing is persisted: the catalog is seeded at
// startup and replaced wholesale when a fresher snapshot arrives.
package store

import (
	"context"

	"github.com/MKhiriev/go-access-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/plan_storage_mock.go -package=mock

// PlanStorage keeps the list of plans offered on the pricing page.
type PlanStorage interface {
	// Plans returns a copy of all plans in catalog order.
	Plans(ctx context.Context) ([]models.Plan, error)

	// Plan returns the plan with the given ID or [ErrPlanNotFound].
	Plan(ctx context.Context, planID string) (models.Plan, error)

	// ReplacePlans swaps the whole catalog. An empty list is rejected with
	// [ErrEmptyCatalog] so a bad refresh never blanks the pricing page.
	ReplacePlans(ctx context.Context, plans []models.Plan) error
}
