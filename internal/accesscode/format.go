// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package accesscode implements the masked access-code editor used by the
// pricing flow.
//
// An access code is a short secret made of a leading run of upper-case ASCII
// letters followed by a trailing run of digits. The split and the total length
// are defined by a [FormatSpec] kept in a [Registry]. The [Editor] owns the
// canonical value of a code being typed, filters every keystroke against the
// active format and renders a masked projection of the value for display.
package accesscode

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Identifiers of the predefined formats.
const (
	FormatMDA = "MDA"
	FormatRBM = "RBM"

	// DefaultFormat is selected when a new editing session opens.
	DefaultFormat = FormatRBM
)

// CharClass is the character class required at a code position.
type CharClass int

const (
	// ClassLetter accepts upper-case ASCII letters.
	ClassLetter CharClass = iota
	// ClassDigit accepts ASCII digits.
	ClassDigit
)

// String returns a human readable class name.
func (c CharClass) String() string {
	if c == ClassLetter {
		return "letter"
	}
	return "digit"
}

// FormatSpec is the grammar of one access-code format.
type FormatSpec struct {
	// ID is the format identifier, also used as the code prefix (e.g. "MDA").
	ID string `json:"id" yaml:"id"`

	// TotalLength is the number of characters in a complete code.
	TotalLength int `json:"total_length" yaml:"total_length"`

	// LetterPrefixLength is the number of leading letter positions. All
	// remaining positions are digits.
	LetterPrefixLength int `json:"letter_prefix_length" yaml:"letter_prefix_length"`

	// Example is an optional sample code shown as an input placeholder.
	Example string `json:"example,omitempty" yaml:"example,omitempty"`
}

// DigitSuffixLength returns the number of trailing digit positions.
func (f FormatSpec) DigitSuffixLength() int {
	return f.TotalLength - f.LetterPrefixLength
}

// ClassAt returns the character class required at position i.
func (f FormatSpec) ClassAt(i int) CharClass {
	if i < f.LetterPrefixLength {
		return ClassLetter
	}
	return ClassDigit
}

// Validate checks the structural invariants of the format.
func (f FormatSpec) Validate() error {
	if strings.TrimSpace(f.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidFormat)
	}
	if f.TotalLength <= 0 {
		return fmt.Errorf("%w: %s: total length must be positive", ErrInvalidFormat, f.ID)
	}
	if f.LetterPrefixLength < 0 || f.LetterPrefixLength > f.TotalLength {
		return fmt.Errorf("%w: %s: letter prefix length out of range", ErrInvalidFormat, f.ID)
	}
	return nil
}

// Describe renders a short grammar summary, e.g. "7 characters (3 letters + 4 numbers)".
func (f FormatSpec) Describe() string {
	return fmt.Sprintf("%d characters (%d letters + %d numbers)",
		f.TotalLength, f.LetterPrefixLength, f.DigitSuffixLength())
}

// FormatLookup resolves a format identifier to its grammar.
type FormatLookup interface {
	Lookup(formatID string) (FormatSpec, error)
}

// DefaultFormats returns the predefined formats in display order.
func DefaultFormats() []FormatSpec {
	return []FormatSpec{
		{ID: FormatMDA, TotalLength: 7, LetterPrefixLength: 3, Example: "ABC1234"},
		{ID: FormatRBM, TotalLength: 8, LetterPrefixLength: 3, Example: "ABC12345"},
	}
}

// Registry maps format identifiers to their grammar. It is safe for
// concurrent use; lookups never mutate it.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]FormatSpec
	order   []string
}

// NewRegistry creates a registry holding the given formats.
func NewRegistry(formats ...FormatSpec) (*Registry, error) {
	r := &Registry{formats: make(map[string]FormatSpec, len(formats))}
	for _, f := range formats {
		if err := r.Register(f); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NewDefaultRegistry creates a registry holding [DefaultFormats].
func NewDefaultRegistry() *Registry {
	r, _ := NewRegistry(DefaultFormats()...)
	return r
}

// Register adds f to the registry or replaces the format with the same ID.
// The ID is normalised to upper case.
func (r *Registry) Register(f FormatSpec) error {
	f.ID = normalizeID(f.ID)
	if err := f.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formats[f.ID]; !exists {
		r.order = append(r.order, f.ID)
	}
	r.formats[f.ID] = f
	return nil
}

// Lookup implements [FormatLookup]. It returns [ErrUnknownFormat] when
// formatID is not registered.
func (r *Registry) Lookup(formatID string) (FormatSpec, error) {
	id := normalizeID(formatID)

	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formats[id]
	if !ok {
		return FormatSpec{}, fmt.Errorf("%w: %q", ErrUnknownFormat, formatID)
	}
	return f, nil
}

// Formats returns all registered formats in registration order.
func (r *Registry) Formats() []FormatSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]FormatSpec, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.formats[id])
	}
	return out
}

type formatsFile struct {
	Formats []FormatSpec `yaml:"formats"`
}

// LoadFormats reads format definitions from a YAML file of the form
//
//	formats:
//	  - id: XYZ
//	    total_length: 6
//	    letter_prefix_length: 2
//
// Every format is validated before being returned.
func LoadFormats(path string) ([]FormatSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading formats file: %w", err)
	}

	var parsed formatsFile
	if err = yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("error decoding formats file: %w", err)
	}

	for i := range parsed.Formats {
		parsed.Formats[i].ID = normalizeID(parsed.Formats[i].ID)
		if err = parsed.Formats[i].Validate(); err != nil {
			return nil, err
		}
	}
	return parsed.Formats, nil
}

func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
