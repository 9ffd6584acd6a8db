// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-access-desk/internal/accesscode"
	"github.com/MKhiriev/go-access-desk/internal/service"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AccessModel is the Bubble Tea model for the access-code page.
//
// The text input is only a surface: every change it makes is forwarded to the
// session editor as one edit event and the input is then reset to the editor's
// display with the cursor at the end. Cursor movement keys never reach the
// input, so an edit is always an append or a removal at the tail.
//
// The session editor is touched only from Update and View, which Bubble Tea
// calls on its event loop. Commands returned to the runtime never capture the
// session.
type AccessModel struct {
	ctx     context.Context
	access  service.AccessService
	formats service.FormatService

	session   *service.AccessSession
	surface   textinput.Model
	formatIDs []string
	pickerIdx int
	errMsg    string

	readClipboard func() (string, error)
}

// NewAccessModel creates the access-code page. A session is opened each time
// the page is entered.
func NewAccessModel(ctx context.Context, access service.AccessService, formats service.FormatService) *AccessModel {
	surface := textinput.New()
	surface.Prompt = ""
	surface.Width = 24
	surface.Focus()

	return &AccessModel{
		ctx:           ctx,
		access:        access,
		formats:       formats,
		surface:       surface,
		readClipboard: clipboard.ReadAll,
	}
}

// Init implements [tea.Model]. Opens a fresh session and starts the cursor blink.
func (m *AccessModel) Init() tea.Cmd {
	return tea.Batch(func() tea.Msg { return openAccessPage{} }, textinput.Blink)
}

// Update implements [tea.Model]. Handled messages:
//   - openAccessPage: closes any previous session and opens a new one.
//   - clipboardPastedMsg: applies the clipboard text as one edit event.
//   - tab, shift+tab: switch the format, which empties the code.
//   - ctrl+e: shows or hides the code.
//   - ctrl+l: clears the code.
//   - ctrl+v: pastes from the clipboard.
//   - enter: validates a complete code and returns to the pricing page.
//   - esc: discards the session and goes back.
//
// Other keys are forwarded to the surface.
func (m *AccessModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openAccessPage:
		m.open()
		return m, nil

	case clipboardPastedMsg:
		if m.session == nil {
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = "Clipboard is unavailable"
			return m, nil
		}
		m.applyEdit(m.session.Editor.Display() + msg.text)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.surface, cmd = m.surface.Update(msg)
	return m, cmd
}

func (m *AccessModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		m.back()
		return m, func() tea.Msg { return NavigateTo{Page: pagePricing} }
	}
	if m.session == nil {
		return m, nil
	}

	editor := m.session.Editor

	switch {
	case key.Matches(msg, keys.tab):
		m.selectFormat(m.pickerIdx + 1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.selectFormat(m.pickerIdx - 1)
		return m, nil
	case key.Matches(msg, keys.reveal):
		editor.ToggleDisplayMode()
		m.sync()
		return m, nil
	case key.Matches(msg, keys.clear):
		editor.Clear()
		m.errMsg = ""
		m.sync()
		return m, nil
	case key.Matches(msg, keys.paste):
		return m, m.cmdPaste()
	case key.Matches(msg, keys.enter):
		if !editor.IsComplete() {
			m.errMsg = fmt.Sprintf("The access code is incomplete: %d characters missing", editor.Remaining())
			return m, nil
		}
		return m, m.submit()
	case key.Matches(msg, keys.cursor):
		return m, nil
	}

	var cmd tea.Cmd
	m.surface, cmd = m.surface.Update(msg)
	m.applyEdit(m.surface.Value())
	return m, cmd
}

// View implements [tea.Model].
func (m *AccessModel) View() string {
	var b strings.Builder

	b.WriteString("Enter your access code to unlock special features.\n\n")
	b.WriteString("Format requirements:\n")
	for _, f := range m.formats.Formats(m.ctx) {
		b.WriteString("  • ")
		b.WriteString(f.ID)
		b.WriteString(": ")
		b.WriteString(f.Describe())
		if f.Example != "" {
			b.WriteString(", example ")
			b.WriteString(f.Example)
		}
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("  • Letters are masked with %c, numbers with %c\n", accesscode.LetterMask, accesscode.DigitMask))
	b.WriteString("  • Only uppercase letters and numbers are allowed\n\n")

	if m.session == nil {
		b.WriteString("No access session\n")
		if m.errMsg != "" {
			b.WriteString("\nError: ")
			b.WriteString(m.errMsg)
			b.WriteString("\n")
		}
		return renderPage("ACCESS CODE", strings.TrimRight(b.String(), "\n"), "esc: back")
	}

	editor := m.session.Editor
	eye := "hidden"
	if editor.DisplayMode() == accesscode.Revealed {
		eye = "shown"
	}

	b.WriteString("Format │ Code\n")
	b.WriteString("───────┼──────────────────────────────\n")
	b.WriteString(fmt.Sprintf("‹%s›  │ [%s] (%s)\n", editor.Format().ID, m.surface.View(), eye))

	switch editor.State() {
	case accesscode.Complete:
		b.WriteString("\nThe code is complete\n")
	case accesscode.Partial:
		b.WriteString(fmt.Sprintf("\n%d characters left\n", editor.Remaining()))
	default:
		b.WriteString("\n")
		b.WriteString(editor.Placeholder())
		b.WriteString("\n")
	}

	if editor.IsComplete() {
		b.WriteString("\n[Clear] [Back] [Validate]\n")
	} else {
		b.WriteString("\n[Clear] [Back] " + helpStyle.Render("[Validate]") + "\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("ACCESS CODE", strings.TrimRight(b.String(), "\n"),
		"tab: format │ ctrl+e: show/hide │ ctrl+l: clear │ ctrl+v: paste │ enter: validate │ esc: back")
}

func (m *AccessModel) open() {
	if m.session != nil {
		m.access.Close(m.ctx, m.session)
	}

	m.errMsg = ""
	session, err := m.access.Open(m.ctx)
	if err != nil {
		m.session = nil
		m.errMsg = humanizeError(err)
		return
	}
	m.session = session

	m.formatIDs = m.formatIDs[:0]
	for _, f := range m.formats.Formats(m.ctx) {
		m.formatIDs = append(m.formatIDs, f.ID)
	}
	m.pickerIdx = 0
	for i, id := range m.formatIDs {
		if id == session.Editor.Format().ID {
			m.pickerIdx = i
			break
		}
	}

	m.sync()
}

func (m *AccessModel) back() {
	if m.session != nil {
		m.access.Close(m.ctx, m.session)
		m.session = nil
	}
	m.errMsg = ""
	m.surface.SetValue("")
}

// discard implements discarder: the session is closed and its code wiped.
func (m *AccessModel) discard() {
	m.back()
}

func (m *AccessModel) selectFormat(idx int) {
	if len(m.formatIDs) == 0 {
		return
	}
	idx = (idx + len(m.formatIDs)) % len(m.formatIDs)

	if err := m.session.Editor.SelectFormat(m.formatIDs[idx]); err != nil {
		m.errMsg = humanizeError(err)
		return
	}
	m.pickerIdx = idx
	m.errMsg = ""
	m.sync()
}

func (m *AccessModel) applyEdit(surfaceText string) {
	res := m.session.Editor.ApplyEditEvent(surfaceText)
	switch {
	case res.Rejected > 0:
		m.errMsg = rejectedHint(m.session.Editor)
	case res.Accepted > 0 || res.Removed > 0:
		m.errMsg = ""
	}
	m.sync()
}

// sync resets the surface to the editor's display and pins the cursor to the end.
func (m *AccessModel) sync() {
	if m.session == nil {
		m.surface.SetValue("")
		return
	}
	editor := m.session.Editor
	m.surface.Placeholder = editor.Placeholder()
	m.surface.SetValue(editor.Display())
	m.surface.CursorEnd()
}

func rejectedHint(editor *accesscode.Editor) string {
	if editor.IsComplete() {
		return "The code is already complete"
	}
	f := editor.Format()
	pos := len(editor.Value())
	if f.ClassAt(pos) == accesscode.ClassLetter {
		return fmt.Sprintf("Character %d must be an uppercase letter", pos+1)
	}
	return fmt.Sprintf("Character %d must be a number", pos+1)
}

// submit validates the code on the event loop. Submit only hashes the code
// and closes the session, so it never blocks the UI. The returned command
// carries the grant, not the session.
func (m *AccessModel) submit() tea.Cmd {
	grant, err := m.access.Submit(m.ctx, m.session)
	if err != nil {
		m.errMsg = humanizeError(err)
		m.sync()
		return nil
	}

	m.session = nil
	m.errMsg = ""
	m.surface.SetValue("")

	return func() tea.Msg {
		return NavigateTo{Page: pagePricing, Payload: accessGrantedNotice{grant: grant}}
	}
}

func (m *AccessModel) cmdPaste() tea.Cmd {
	readClipboard := m.readClipboard

	return func() tea.Msg {
		text, err := readClipboard()
		return clipboardPastedMsg{text: text, err: err}
	}
}
