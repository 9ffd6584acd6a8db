package tui

import (
	"github.com/MKhiriev/go-access-desk/models"
)

// Page names registered in [RootModel].
const (
	pagePricing = "pricing"
	pageAccess  = "access"
)

// NavigateTo switches the active page. When Payload is set it is delivered
// to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

type plansLoadedMsg struct {
	plans []models.Plan
	err   error
}

type planSelectedMsg struct {
	selection models.PlanSelection
	err       error
}

type catalogRefreshedMsg struct {
	err error
}

type clipboardPastedMsg struct {
	text string
	err  error
}

// accessGrantedNotice is passed to the pricing page after a code was validated.
type accessGrantedNotice struct {
	grant models.AccessGrant
}

// openAccessPage asks the access page to start a fresh session.
type openAccessPage struct{}

type clearStatusMsg struct{}
