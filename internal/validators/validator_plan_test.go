// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-access-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validPlan() models.Plan {
	return models.Plan{
		ID:           "pro",
		Name:         "Pro",
		MonthlyPrice: 19,
		AnnualPrice:  190,
		Features:     []string{"Unlimited messages"},
	}
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestNewPlanValidator(t *testing.T) {
	require.NotNil(t, NewPlanValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewPlanValidator()
	ctx := context.Background()
	plan := validPlan()
	catalog := []models.Plan{plan}
	selection := models.PlanSelection{PlanID: "pro", BillingCycle: models.BillingMonthly}

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{name: "plan value", obj: plan},
		{name: "plan pointer", obj: &plan},
		{name: "catalog value", obj: catalog},
		{name: "catalog pointer", obj: &catalog},
		{name: "selection value", obj: selection},
		{name: "selection pointer", obj: &selection},
		{name: "unsupported", obj: "pro", wantErr: ErrUnsupportedType},
		{name: "nil", obj: nil, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Plan
// ---------------------------------------------------------------------------

func TestValidate_Plan(t *testing.T) {
	v := NewPlanValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(p *models.Plan)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Plan) {}},
		{name: "empty id", mutate: func(p *models.Plan) { p.ID = " " }, wantErr: ErrInvalidPlanID},
		{name: "id with slash", mutate: func(p *models.Plan) { p.ID = "pro/annual" }, wantErr: ErrInvalidPlanID},
		{name: "empty name", mutate: func(p *models.Plan) { p.Name = "" }, wantErr: ErrEmptyPlanName},
		{name: "negative monthly", mutate: func(p *models.Plan) { p.MonthlyPrice = -1 }, wantErr: ErrNegativePrice},
		{name: "negative annual", mutate: func(p *models.Plan) { p.AnnualPrice = -10 }, wantErr: ErrNegativePrice},
		{
			name:   "custom plan prices ignored",
			mutate: func(p *models.Plan) { p.Custom = true; p.MonthlyPrice = -1 },
		},
		{name: "empty feature", mutate: func(p *models.Plan) { p.Features = append(p.Features, "") }, wantErr: ErrEmptyFeature},
		{
			name:   "scoped to name skips id",
			mutate: func(p *models.Plan) { p.ID = "" },
			fields: []string{FieldPlanName},
		},
		{name: "unknown field", mutate: func(*models.Plan) {}, fields: []string{"color"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := validPlan()
			tt.mutate(&plan)

			err := v.Validate(ctx, plan, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Catalog
// ---------------------------------------------------------------------------

func TestValidate_Catalog(t *testing.T) {
	v := NewPlanValidator()
	ctx := context.Background()

	free := models.Plan{ID: "free", Name: "Free"}
	pro := validPlan()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, []models.Plan{free, pro}))
	})

	t.Run("empty catalog passes", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, []models.Plan{}))
	})

	t.Run("duplicate id", func(t *testing.T) {
		err := v.Validate(ctx, []models.Plan{free, pro, pro})
		require.ErrorIs(t, err, ErrDuplicatePlanID)
		assert.Contains(t, err.Error(), `plan 2 ("pro")`)
	})

	t.Run("invalid entry reports its index", func(t *testing.T) {
		broken := pro
		broken.Name = ""

		err := v.Validate(ctx, []models.Plan{free, broken})
		require.ErrorIs(t, err, ErrEmptyPlanName)
		assert.Contains(t, err.Error(), "plan 1")
	})

	t.Run("unique ids only", func(t *testing.T) {
		unnamed := models.Plan{ID: "team"}
		assert.NoError(t, v.Validate(ctx, []models.Plan{unnamed, free}, FieldUniqueIDs))
		assert.ErrorIs(t, v.Validate(ctx, []models.Plan{free, free}, FieldUniqueIDs), ErrDuplicatePlanID)
	})

	t.Run("plan fields without uniqueness", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, []models.Plan{free, free}, FieldPlanName))
	})
}

// ---------------------------------------------------------------------------
// Selection
// ---------------------------------------------------------------------------

func TestValidate_Selection(t *testing.T) {
	v := NewPlanValidator()
	ctx := context.Background()

	tests := []struct {
		name      string
		selection models.PlanSelection
		fields    []string
		wantErr   error
	}{
		{name: "valid", selection: models.PlanSelection{PlanID: "pro", BillingCycle: models.BillingAnnual}},
		{name: "missing plan", selection: models.PlanSelection{BillingCycle: models.BillingAnnual}, wantErr: ErrInvalidPlanID},
		{name: "bad cycle", selection: models.PlanSelection{PlanID: "pro", BillingCycle: "weekly"}, wantErr: ErrInvalidBillingCycle},
		{
			name:      "scoped to cycle",
			selection: models.PlanSelection{BillingCycle: models.BillingMonthly},
			fields:    []string{FieldBillingCycle},
		},
		{name: "unknown field", selection: models.PlanSelection{PlanID: "pro"}, fields: []string{FieldPrices}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.selection, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
