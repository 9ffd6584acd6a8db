// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package accesscode

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Mask symbols used by [Editor.MaskedProjection].
const (
	LetterMask = '*'
	DigitMask  = '-'
)

// DisplayMode controls how the surface shows the code.
type DisplayMode int

const (
	// Masked shows the masked projection.
	Masked DisplayMode = iota
	// Revealed shows the canonical value.
	Revealed
)

// String returns "masked" or "revealed".
func (m DisplayMode) String() string {
	if m == Revealed {
		return "revealed"
	}
	return "masked"
}

// State is the completion state of the buffer for the active format.
type State int

const (
	Empty State = iota
	Partial
	Complete
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Partial:
		return "partial"
	case Complete:
		return "complete"
	default:
		return "empty"
	}
}

// EditResult is returned by [Editor.ApplyEditEvent] so that the caller can
// re-render the surface without issuing extra queries.
type EditResult struct {
	// Masked is the masked projection after the event.
	Masked string
	// Complete reports whether the value fills the active format.
	Complete bool
	// Accepted is the number of characters appended by the event.
	Accepted int
	// Rejected is the number of characters the event tried to append but
	// which were discarded (wrong class or over capacity).
	Rejected int
	// Removed is the number of characters truncated by the event.
	Removed int
}

// Option configures an [Editor].
type Option func(*Editor)

// WithCaseFolding makes the editor accept lower-case letters and store them
// upper-cased. Without it lower-case input is rejected.
//
// Enabling it reproduces the legacy pricing modal, which upper-cased all input
// before validating it.
func WithCaseFolding() Option {
	return func(e *Editor) {
		e.foldCase = true
	}
}

// Editor owns the canonical value of an access code being entered.
//
// The value only changes through SelectFormat, ApplyEditEvent and Clear.
// Every stored character matches the class of its position in the active
// format and the value never outgrows the format. The masked projection is
// derived from the value and is never read back.
//
// An Editor belongs to a single editing session and is not safe for
// concurrent use.
type Editor struct {
	formats  FormatLookup
	format   FormatSpec
	value    []byte
	mode     DisplayMode
	foldCase bool
}

// NewEditor creates an empty, masked editor on the given format.
func NewEditor(formats FormatLookup, formatID string, opts ...Option) (*Editor, error) {
	f, err := formats.Lookup(formatID)
	if err != nil {
		return nil, err
	}

	e := &Editor{
		formats: formats,
		format:  f,
		value:   make([]byte, 0, f.TotalLength),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// SelectFormat switches the active grammar. The value is always discarded and
// the display goes back to Masked, even when formatID is already active.
// On [ErrUnknownFormat] the editor is left untouched.
func (e *Editor) SelectFormat(formatID string) error {
	f, err := e.formats.Lookup(formatID)
	if err != nil {
		return err
	}

	e.format = f
	e.value = make([]byte, 0, f.TotalLength)
	e.mode = Masked
	return nil
}

// ApplyEditEvent reconciles the new surface text against the current value.
//
// The surface always shows exactly len(Value()) characters (either the value
// or its projection), so the length delta alone classifies the event: a longer
// surface appends its trailing characters one by one, a shorter one truncates
// the value by the difference, an equal one is ignored. Appended characters
// are taken from surfaceText itself. Characters that do not fit are dropped
// silently.
func (e *Editor) ApplyEditEvent(surfaceText string) EditResult {
	var res EditResult

	prevLen := len(e.value)
	newLen := utf8.RuneCountInString(surfaceText)

	switch {
	case newLen > prevLen:
		runes := []rune(surfaceText)
		for _, r := range runes[prevLen:] {
			if e.appendRune(r) {
				res.Accepted++
			} else {
				res.Rejected++
			}
		}
	case newLen < prevLen:
		res.Removed = e.truncate(prevLen - newLen)
	}

	res.Masked = e.MaskedProjection()
	res.Complete = e.IsComplete()
	return res
}

func (e *Editor) appendRune(r rune) bool {
	pos := len(e.value)
	if pos >= e.format.TotalLength {
		return false
	}

	if e.foldCase && r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}

	switch e.format.ClassAt(pos) {
	case ClassLetter:
		if r < 'A' || r > 'Z' {
			return false
		}
	case ClassDigit:
		if r < '0' || r > '9' {
			return false
		}
	}

	e.value = append(e.value, byte(r))
	return true
}

func (e *Editor) truncate(n int) int {
	if n > len(e.value) {
		n = len(e.value)
	}
	e.value = e.value[:len(e.value)-n]
	return n
}

// ToggleDisplayMode flips between Masked and Revealed and returns the new mode.
func (e *Editor) ToggleDisplayMode() DisplayMode {
	if e.mode == Masked {
		e.mode = Revealed
	} else {
		e.mode = Masked
	}
	return e.mode
}

// Clear empties the value and masks the display.
func (e *Editor) Clear() {
	e.value = e.value[:0]
	e.mode = Masked
}

// MaskedProjection returns LetterMask for every letter position and DigitMask
// for every digit position of the current value.
func (e *Editor) MaskedProjection() string {
	var b strings.Builder
	b.Grow(len(e.value))
	for i := range e.value {
		if e.format.ClassAt(i) == ClassLetter {
			b.WriteByte(LetterMask)
		} else {
			b.WriteByte(DigitMask)
		}
	}
	return b.String()
}

// IsComplete reports whether the value fills the active format. Stored
// characters are already class-checked, so length is sufficient.
func (e *Editor) IsComplete() bool {
	return len(e.value) == e.format.TotalLength
}

// State returns Empty, Partial or Complete.
func (e *Editor) State() State {
	switch {
	case len(e.value) == 0:
		return Empty
	case e.IsComplete():
		return Complete
	default:
		return Partial
	}
}

// Value returns the canonical value.
func (e *Editor) Value() string {
	return string(e.value)
}

// Display returns what the surface should show in the current mode.
func (e *Editor) Display() string {
	if e.mode == Revealed {
		return e.Value()
	}
	return e.MaskedProjection()
}

// DisplayMode returns the current display mode.
func (e *Editor) DisplayMode() DisplayMode {
	return e.mode
}

// Format returns the active format.
func (e *Editor) Format() FormatSpec {
	return e.format
}

// Remaining returns how many characters are still missing.
func (e *Editor) Remaining() int {
	return e.format.TotalLength - len(e.value)
}

// Placeholder returns an input hint such as "ABC1234 (7 chars)".
func (e *Editor) Placeholder() string {
	if e.format.Example == "" {
		return fmt.Sprintf("%d chars", e.format.TotalLength)
	}
	return fmt.Sprintf("%s (%d chars)", e.format.Example, e.format.TotalLength)
}

// Code returns the submitted form of the code, "<format>-<value>", and true
// when the value is complete. Otherwise it returns "" and false.
func (e *Editor) Code() (string, bool) {
	if !e.IsComplete() {
		return "", false
	}
	return e.format.ID + "-" + e.Value(), true
}
