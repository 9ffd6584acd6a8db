// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-access-desk/internal/service"
	"github.com/MKhiriev/go-access-desk/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	statusTTL       = 3 * time.Second
	featureMaxWidth = 48
)

// PricingModel is the Bubble Tea model for the pricing page. It lists the
// plan catalog, toggles the billing cycle and turns the chosen plan into a
// [models.PlanSelection]. It is also the entry point of the access-code page.
//
// A plan is chosen with the first enter and confirmed with the second one.
type PricingModel struct {
	ctx     context.Context
	plans   service.PlanService
	refresh service.CatalogRefreshJob

	items    []models.Plan
	idx      int
	chosenID string
	cycle    models.BillingCycle

	loading    bool
	syncing    bool
	spinner    spinner.Model
	status     string
	errOverlay *errorOverlayModel
}

// NewPricingModel creates the pricing page. refresh may be nil when the client
// runs offline. A non-nil startupErr is shown in the status line.
func NewPricingModel(ctx context.Context, plans service.PlanService, refresh service.CatalogRefreshJob, startupErr error) *PricingModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := &PricingModel{
		ctx:     ctx,
		plans:   plans,
		refresh: refresh,
		cycle:   models.BillingMonthly,
		loading: true,
		spinner: s,
	}
	if startupErr != nil {
		m.status = "Offline: " + humanizeServerUnavailableError(startupErr)
	}
	return m
}

// Init implements [tea.Model]. Loads the plan catalog.
func (m *PricingModel) Init() tea.Cmd {
	return m.cmdLoadPlans()
}

// Update implements [tea.Model].
func (m *PricingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case plansLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errOverlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.setItems(msg.plans)
		return m, nil

	case catalogRefreshedMsg:
		m.syncing = false
		if msg.err != nil {
			m.status = "Catalog refresh failed: " + humanizeServerUnavailableError(msg.err)
			return m, m.cmdLoadPlans()
		}
		m.status = "Catalog updated"
		return m, tea.Batch(m.cmdLoadPlans(), cmdClearStatus())

	case planSelectedMsg:
		if msg.err != nil {
			m.errOverlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.chosenID = ""
		m.status = fmt.Sprintf("Selected plan %s: %s billing, %s",
			msg.selection.PlanID, msg.selection.BillingCycle, msg.selection.Price)
		return m, cmdClearStatus()

	case accessGrantedNotice:
		m.status = fmt.Sprintf("Access code accepted (%s)", msg.grant.Format)
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.syncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *PricingModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.errOverlay != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.errOverlay = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.billing):
		m.cycle = m.cycle.Toggle()
	case key.Matches(msg, keys.enter):
		plan, ok := m.current()
		if !ok {
			return m, nil
		}
		if m.chosenID != plan.ID {
			m.chosenID = plan.ID
			return m, nil
		}
		return m, m.cmdSelectPlan(plan.ID, m.cycle)
	case key.Matches(msg, keys.access):
		return m, func() tea.Msg { return NavigateTo{Page: pageAccess} }
	case key.Matches(msg, keys.refresh):
		if m.refresh == nil || m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdRefresh())
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

// View implements [tea.Model].
func (m *PricingModel) View() string {
	if m.errOverlay != nil {
		return m.errOverlay.View()
	}

	var b strings.Builder

	if m.cycle == models.BillingAnnual {
		b.WriteString("Billing: ( ) Monthly  (•) Annual\n\n")
	} else {
		b.WriteString("Billing: (•) Monthly  ( ) Annual\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Loading plans...\n")
	case len(m.items) == 0:
		b.WriteString("No plans available\n")
	default:
		b.WriteString(m.renderTable())
		b.WriteString(m.renderFeatures())
	}

	if m.syncing {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Refreshing catalog...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	hotKeys := "↑/↓: navigate │ enter: choose │ b: billing │ a: access code │ v: version │ q: quit"
	if m.refresh != nil {
		hotKeys = "↑/↓: navigate │ enter: choose │ b: billing │ a: access code │ r: refresh │ v: version │ q: quit"
	}
	return renderPage("PRICING", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *PricingModel) renderTable() string {
	var b strings.Builder

	names := make([]string, len(m.items))
	prices := make([]string, len(m.items))
	nameWidth := lipgloss.Width("Plan")
	priceWidth := lipgloss.Width("Price")
	for i, plan := range m.items {
		names[i] = plan.Name
		if plan.Popular {
			names[i] += " ★"
		}
		prices[i] = m.plans.Price(plan, m.cycle) + m.plans.Period(plan, m.cycle)
		nameWidth = max(nameWidth, lipgloss.Width(names[i]))
		priceWidth = max(priceWidth, lipgloss.Width(prices[i]))
	}

	b.WriteString(fmt.Sprintf("    %-*s │ %-*s │\n", nameWidth, "Plan", priceWidth, "Price"))
	b.WriteString("  ──")
	b.WriteString(strings.Repeat("─", nameWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", priceWidth))
	b.WriteString("─┤\n")

	for i, plan := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		mark := " "
		if plan.ID == m.chosenID {
			mark = "✓"
		}

		name := fmt.Sprintf("%-*s", nameWidth, names[i])
		if plan.Popular {
			name = popularStyle.Render(name)
		}
		if plan.ID == m.chosenID {
			name = selectedStyle.Render(name)
		}

		b.WriteString(fmt.Sprintf("%s %s %s │ %-*s │", cursor, mark, name, priceWidth, prices[i]))
		if m.cycle == models.BillingAnnual {
			if savings, ok := m.plans.AnnualSavings(plan); ok {
				b.WriteString(fmt.Sprintf(" Save $%d/year", savings))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m *PricingModel) renderFeatures() string {
	plan, ok := m.current()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(plan.Name)
	b.WriteString(":\n")
	for _, feature := range plan.Features {
		b.WriteString("  ✓ ")
		b.WriteString(fitText(feature, featureMaxWidth))
		b.WriteString("\n")
	}

	if m.chosenID == plan.ID {
		b.WriteString("\n[Get started with ")
		b.WriteString(plan.Name)
		b.WriteString(": press enter]\n")
	}
	return b.String()
}

func (m *PricingModel) current() (models.Plan, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Plan{}, false
	}
	return m.items[m.idx], true
}

func (m *PricingModel) setItems(plans []models.Plan) {
	m.items = plans
	if m.idx >= len(plans) {
		m.idx = max(len(plans)-1, 0)
	}

	if m.chosenID == "" {
		return
	}
	for _, plan := range plans {
		if plan.ID == m.chosenID {
			return
		}
	}
	m.chosenID = ""
}

func (m *PricingModel) cmdLoadPlans() tea.Cmd {
	ctx := m.ctx
	plans := m.plans

	return func() tea.Msg {
		items, err := plans.Plans(ctx)
		return plansLoadedMsg{plans: items, err: err}
	}
}

func (m *PricingModel) cmdSelectPlan(planID string, cycle models.BillingCycle) tea.Cmd {
	ctx := m.ctx
	plans := m.plans

	return func() tea.Msg {
		selection, err := plans.SelectPlan(ctx, planID, cycle)
		return planSelectedMsg{selection: selection, err: err}
	}
}

func (m *PricingModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	refresh := m.refresh

	return func() tea.Msg {
		return catalogRefreshedMsg{err: refresh.RefreshNow(ctx)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
