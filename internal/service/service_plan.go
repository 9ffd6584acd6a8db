// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-access-desk/internal/logger"
	"github.com/MKhiriev/go-access-desk/internal/store"
	"github.com/MKhiriev/go-access-desk/internal/validators"
	"github.com/MKhiriev/go-access-desk/models"
)

const customPriceLabel = "Custom"

type planService struct {
	plans     store.PlanStorage
	validator validators.Validator

	logger *logger.Logger
}

// NewPlanService returns a [PlanService] backed by plans.
func NewPlanService(plans store.PlanStorage, logger *logger.Logger) PlanService {
	return &planService{plans: plans, validator: validators.NewPlanValidator(), logger: logger}
}

func (s *planService) Plans(ctx context.Context) ([]models.Plan, error) {
	plans, err := s.plans.Plans(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting plans: %w", err)
	}
	return plans, nil
}

func (s *planService) Plan(ctx context.Context, planID string) (models.Plan, error) {
	plan, err := s.plans.Plan(ctx, planID)
	if err != nil {
		return models.Plan{}, fmt.Errorf("error getting plan: %w", err)
	}
	return plan, nil
}

func (s *planService) Price(plan models.Plan, cycle models.BillingCycle) string {
	if plan.Custom {
		return customPriceLabel
	}
	if cycle == models.BillingAnnual {
		return fmt.Sprintf("$%d", plan.AnnualPrice)
	}
	return fmt.Sprintf("$%d", plan.MonthlyPrice)
}

func (s *planService) Period(plan models.Plan, cycle models.BillingCycle) string {
	if plan.Custom {
		return ""
	}
	if cycle == models.BillingAnnual {
		return "/year"
	}
	return "/month"
}

func (s *planService) AnnualSavings(plan models.Plan) (int, bool) {
	if plan.Custom || plan.Free() {
		return 0, false
	}

	savings := plan.MonthlyPrice*12 - plan.AnnualPrice
	if savings <= 0 {
		return 0, false
	}
	return savings, true
}

func (s *planService) SelectPlan(ctx context.Context, planID string, cycle models.BillingCycle) (models.PlanSelection, error) {
	check := models.PlanSelection{PlanID: planID, BillingCycle: cycle}
	if err := s.validator.Validate(ctx, check, validators.FieldBillingCycle); err != nil {
		return models.PlanSelection{}, fmt.Errorf("%w: %q", ErrInvalidBillingCycle, cycle)
	}

	plan, err := s.Plan(ctx, planID)
	if err != nil {
		return models.PlanSelection{}, err
	}

	selection := models.PlanSelection{
		PlanID:       plan.ID,
		BillingCycle: cycle,
		Price:        s.Price(plan, cycle) + s.Period(plan, cycle),
	}

	s.logger.Info().
		Str("plan", selection.PlanID).
		Str("billing", string(selection.BillingCycle)).
		Str("price", selection.Price).
		Msg("plan selected")

	return selection, nil
}
