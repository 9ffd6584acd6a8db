package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-access-desk/models"
)

type memoryPlanStorage struct {
	mu    sync.RWMutex
	plans []models.Plan
}

// NewMemoryPlanStorage creates a [PlanStorage] seeded with plans. When plans
// is empty the storage starts with [DefaultPlans].
func NewMemoryPlanStorage(plans ...models.Plan) PlanStorage {
	if len(plans) == 0 {
		plans = DefaultPlans()
	}
	return &memoryPlanStorage{plans: clonePlans(plans)}
}

// DefaultPlans returns the built-in catalog.
func DefaultPlans() []models.Plan {
	return []models.Plan{
		{
			ID:           "free",
			Name:         "Free",
			MonthlyPrice: 0,
			AnnualPrice:  0,
			Features: []string{
				"100 messages/month",
				"Basic AI responses",
				"Standard support",
				"Web access only",
			},
		},
		{
			ID:           "pro",
			Name:         "Pro",
			MonthlyPrice: 19,
			AnnualPrice:  190,
			Popular:      true,
			Features: []string{
				"Unlimited messages",
				"Advanced AI features",
				"Priority support",
				"Mobile app access",
				"Custom integrations",
			},
		},
		{
			ID:     "enterprise",
			Name:   "Enterprise",
			Custom: true,
			Features: []string{
				"Custom integrations",
				"Dedicated support",
				"Advanced analytics",
				"White-label options",
				"API access",
			},
		},
	}
}

func (s *memoryPlanStorage) Plans(_ context.Context) ([]models.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return clonePlans(s.plans), nil
}

func (s *memoryPlanStorage) Plan(_ context.Context, planID string) (models.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := slices.IndexFunc(s.plans, func(p models.Plan) bool { return p.ID == planID })
	if idx < 0 {
		return models.Plan{}, fmt.Errorf("%w: %q", ErrPlanNotFound, planID)
	}

	plan := s.plans[idx]
	plan.Features = slices.Clone(plan.Features)
	return plan, nil
}

func (s *memoryPlanStorage) ReplacePlans(_ context.Context, plans []models.Plan) error {
	if len(plans) == 0 {
		return ErrEmptyCatalog
	}

	cloned := clonePlans(plans)

	s.mu.Lock()
	s.plans = cloned
	s.mu.Unlock()

	return nil
}

func clonePlans(plans []models.Plan) []models.Plan {
	out := make([]models.Plan, len(plans))
	for i, p := range plans {
		p.Features = slices.Clone(p.Features)
		out[i] = p
	}
	return out
}
