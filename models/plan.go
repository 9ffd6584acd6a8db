package models

// BillingCycle selects which price of a plan applies.
type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingAnnual  BillingCycle = "annual"
)

// Valid reports whether c is a known billing cycle.
func (c BillingCycle) Valid() bool {
	return c == BillingMonthly || c == BillingAnnual
}

// Toggle returns the other billing cycle.
func (c BillingCycle) Toggle() BillingCycle {
	if c == BillingAnnual {
		return BillingMonthly
	}
	return BillingAnnual
}

// Plan is one entry of the pricing catalog.
type Plan struct {
	// ID is the stable plan identifier (e.g. "pro").
	ID string `json:"id"`

	// Name is the display name (e.g. "Pro").
	Name string `json:"name"`

	// MonthlyPrice is the price in whole dollars per month.
	MonthlyPrice int `json:"monthly_price"`

	// AnnualPrice is the price in whole dollars per year.
	AnnualPrice int `json:"annual_price"`

	// Custom marks plans priced on request. Prices are ignored for them.
	Custom bool `json:"custom,omitempty"`

	// Popular highlights the plan in the catalog.
	Popular bool `json:"popular,omitempty"`

	// Features lists the selling points shown under the plan.
	Features []string `json:"features"`
}

// Free reports whether the plan costs nothing.
func (p Plan) Free() bool {
	return !p.Custom && p.MonthlyPrice == 0 && p.AnnualPrice == 0
}

// PlanSelection is the result of picking a plan on the pricing page.
type PlanSelection struct {
	PlanID       string       `json:"plan_id"`
	BillingCycle BillingCycle `json:"billing_cycle"`
	Price        string       `json:"price"`
}
