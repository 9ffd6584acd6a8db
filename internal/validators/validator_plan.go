package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-access-desk/models"
)

const (
	FieldPlanID       = "id"
	FieldPlanName     = "name"
	FieldPrices       = "prices"
	FieldFeatures     = "features"
	FieldUniqueIDs    = "unique_ids"
	FieldBillingCycle = "billing_cycle"
)

// PlanValidator validates catalog entries: a single models.Plan, a whole
// catalog ([]models.Plan) and models.PlanSelection. Value and pointer forms
// are accepted.
type PlanValidator struct {
}

// NewPlanValidator constructs a PlanValidator and returns it as the Validator
// interface.
func NewPlanValidator() Validator {
	return &PlanValidator{}
}

// Validate dispatches validation by the dynamic type of obj.
// Returns ErrUnsupportedType for anything else.
func (v *PlanValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Plan:
		return v.validatePlan(ctx, value, fields...)
	case *models.Plan:
		return v.validatePlan(ctx, *value, fields...)

	case []models.Plan:
		return v.validateCatalog(ctx, value, fields...)
	case *[]models.Plan:
		return v.validateCatalog(ctx, *value, fields...)

	case models.PlanSelection:
		return v.validateSelection(ctx, value, fields...)
	case *models.PlanSelection:
		return v.validateSelection(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validatePlan checks one plan.
//
// Default fields: FieldPlanID, FieldPlanName, FieldPrices, FieldFeatures.
// Prices of custom plans are not checked.
func (v *PlanValidator) validatePlan(_ context.Context, plan models.Plan, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPlanID, FieldPlanName, FieldPrices, FieldFeatures}
	}

	for _, f := range fields {
		switch f {
		case FieldPlanID:
			if strings.TrimSpace(plan.ID) == "" || strings.ContainsAny(plan.ID, " \t\n/") {
				return ErrInvalidPlanID
			}
		case FieldPlanName:
			if strings.TrimSpace(plan.Name) == "" {
				return ErrEmptyPlanName
			}
		case FieldPrices:
			if !plan.Custom && (plan.MonthlyPrice < 0 || plan.AnnualPrice < 0) {
				return ErrNegativePrice
			}
		case FieldFeatures:
			for _, feature := range plan.Features {
				if strings.TrimSpace(feature) == "" {
					return ErrEmptyFeature
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCatalog checks every plan of a catalog and then that plan IDs are
// unique. FieldUniqueIDs may be passed alone to skip the per-plan checks;
// any other fields are applied to each plan.
//
// An empty catalog passes: whether it may be stored is up to the storage.
func (v *PlanValidator) validateCatalog(ctx context.Context, plans []models.Plan, fields ...string) error {
	checkUnique := len(fields) == 0
	planFields := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == FieldUniqueIDs {
			checkUnique = true
			continue
		}
		planFields = append(planFields, f)
	}

	seen := make(map[string]struct{}, len(plans))
	for i, plan := range plans {
		if len(fields) == 0 || len(planFields) > 0 {
			if err := v.validatePlan(ctx, plan, planFields...); err != nil {
				return fmt.Errorf("plan %d (%q): %w", i, plan.ID, err)
			}
		}
		if !checkUnique {
			continue
		}
		if _, ok := seen[plan.ID]; ok {
			return fmt.Errorf("plan %d (%q): %w", i, plan.ID, ErrDuplicatePlanID)
		}
		seen[plan.ID] = struct{}{}
	}

	return nil
}

// validateSelection checks a plan selection.
//
// Default fields: FieldPlanID, FieldBillingCycle.
func (v *PlanValidator) validateSelection(_ context.Context, selection models.PlanSelection, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPlanID, FieldBillingCycle}
	}

	for _, f := range fields {
		switch f {
		case FieldPlanID:
			if strings.TrimSpace(selection.PlanID) == "" {
				return ErrInvalidPlanID
			}
		case FieldBillingCycle:
			if !selection.BillingCycle.Valid() {
				return ErrInvalidBillingCycle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
