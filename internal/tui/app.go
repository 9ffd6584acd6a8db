package tui

import (
	"github.com/MKhiriev/go-access-desk/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// discarder is implemented by pages holding secret input that must be wiped
// when the program stops or the page is left.
type discarder interface {
	discard()
}

// RootModel routes messages between the pricing and access-code pages.
//
// It owns the global keys: ctrl+c wipes the active page and quits, "v" opens
// the build information window on the pricing page. NavigateTo switches pages;
// everything else goes to the active page.
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentPage string

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:       pages,
		current:     pages[startPage],
		currentPage: startPage,
		buildInfo:   buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if next, cmd, handled := r.handleGlobalKey(msg); handled {
			return next, cmd
		}

	case NavigateTo:
		return r.navigate(msg)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) handleGlobalKey(msg tea.KeyMsg) (RootModel, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.interrupt):
		r.discardCurrent()
		r.quitByUser = true
		return r, tea.Quit, true

	case r.showBuildInfo:
		// the window swallows everything but its own keys
		if key.Matches(msg, keys.esc, keys.about) {
			r.showBuildInfo = false
		}
		return r, nil, true

	case key.Matches(msg, keys.about) && r.isPricingPage():
		// on the access page "v" is typed into the code
		r.showBuildInfo = true
		return r, nil, true
	}

	return r, nil, false
}

func (r RootModel) navigate(nav NavigateTo) (RootModel, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	if nav.Page != r.currentPage {
		r.discardCurrent()
	}

	r.showBuildInfo = false
	r.current = next
	r.currentPage = nav.Page

	if nav.Payload != nil {
		return r, func() tea.Msg { return nav.Payload }
	}
	return r, r.current.Init()
}

func (r RootModel) discardCurrent() {
	if d, ok := r.current.(discarder); ok {
		d.discard()
	}
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("GoAccessDesk", "", "")
	}
	return r.current.View()
}

func (r RootModel) isPricingPage() bool {
	return r.currentPage == pagePricing
}
