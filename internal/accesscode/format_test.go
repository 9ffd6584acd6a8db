package accesscode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFormatsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "formats.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFormatSpec_ClassAt(t *testing.T) {
	f := FormatSpec{ID: "MDA", TotalLength: 7, LetterPrefixLength: 3}

	for i := 0; i < 3; i++ {
		assert.Equal(t, ClassLetter, f.ClassAt(i))
	}
	for i := 3; i < 7; i++ {
		assert.Equal(t, ClassDigit, f.ClassAt(i))
	}
	assert.Equal(t, 4, f.DigitSuffixLength())
	assert.Equal(t, "7 characters (3 letters + 4 numbers)", f.Describe())
}

func TestFormatSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    FormatSpec
		wantErr bool
	}{
		{name: "valid", spec: FormatSpec{ID: "A", TotalLength: 5, LetterPrefixLength: 2}},
		{name: "letters only", spec: FormatSpec{ID: "A", TotalLength: 3, LetterPrefixLength: 3}},
		{name: "digits only", spec: FormatSpec{ID: "A", TotalLength: 3, LetterPrefixLength: 0}},
		{name: "empty id", spec: FormatSpec{ID: " ", TotalLength: 3}, wantErr: true},
		{name: "zero length", spec: FormatSpec{ID: "A", TotalLength: 0}, wantErr: true},
		{name: "negative prefix", spec: FormatSpec{ID: "A", TotalLength: 3, LetterPrefixLength: -1}, wantErr: true},
		{name: "prefix too long", spec: FormatSpec{ID: "A", TotalLength: 3, LetterPrefixLength: 4}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDefaultRegistry_PredefinedFormats(t *testing.T) {
	r := NewDefaultRegistry()

	mda, err := r.Lookup(FormatMDA)
	require.NoError(t, err)
	assert.Equal(t, 7, mda.TotalLength)
	assert.Equal(t, 3, mda.LetterPrefixLength)

	rbm, err := r.Lookup(FormatRBM)
	require.NoError(t, err)
	assert.Equal(t, 8, rbm.TotalLength)
	assert.Equal(t, 3, rbm.LetterPrefixLength)

	assert.NotEqual(t, mda.TotalLength, rbm.TotalLength)
}

func TestRegistry_LookupUnknown(t *testing.T) {
	_, err := NewDefaultRegistry().Lookup("ZZZ")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRegistry_LookupNormalizesID(t *testing.T) {
	f, err := NewDefaultRegistry().Lookup(" mda ")
	require.NoError(t, err)
	assert.Equal(t, FormatMDA, f.ID)
}

func TestRegistry_RegisterKeepsOrderAndReplaces(t *testing.T) {
	r := NewDefaultRegistry()

	require.NoError(t, r.Register(FormatSpec{ID: "xyz", TotalLength: 4, LetterPrefixLength: 1}))
	require.NoError(t, r.Register(FormatSpec{ID: "MDA", TotalLength: 9, LetterPrefixLength: 3}))

	formats := r.Formats()
	require.Len(t, formats, 3)
	assert.Equal(t, []string{"MDA", "RBM", "XYZ"}, []string{formats[0].ID, formats[1].ID, formats[2].ID})
	assert.Equal(t, 9, formats[0].TotalLength)
}

func TestRegistry_RegisterInvalid(t *testing.T) {
	r := NewDefaultRegistry()

	err := r.Register(FormatSpec{ID: "BAD", TotalLength: 0})

	assert.ErrorIs(t, err, ErrInvalidFormat)
	assert.Len(t, r.Formats(), 2)
}

func TestNewRegistry_Invalid(t *testing.T) {
	r, err := NewRegistry(FormatSpec{ID: "BAD", TotalLength: 2, LetterPrefixLength: 3})
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestEditor_UsesRegisteredFormat(t *testing.T) {
	r := NewDefaultRegistry()
	require.NoError(t, r.Register(FormatSpec{ID: "PIN", TotalLength: 4, LetterPrefixLength: 0}))

	e, err := NewEditor(r, "PIN")
	require.NoError(t, err)

	e.ApplyEditEvent("A12345")
	assert.Equal(t, "1234", e.Value())
	assert.Equal(t, "----", e.MaskedProjection())
	assert.True(t, e.IsComplete())
}

func TestLoadFormats_Success(t *testing.T) {
	path := writeFormatsFile(t, `
formats:
  - id: xyz
    total_length: 6
    letter_prefix_length: 2
    example: XY1234
  - id: PIN
    total_length: 4
    letter_prefix_length: 0
`)

	formats, err := LoadFormats(path)
	require.NoError(t, err)
	require.Len(t, formats, 2)
	assert.Equal(t, FormatSpec{ID: "XYZ", TotalLength: 6, LetterPrefixLength: 2, Example: "XY1234"}, formats[0])
	assert.Equal(t, "PIN", formats[1].ID)
}

func TestLoadFormats_InvalidFormat(t *testing.T) {
	path := writeFormatsFile(t, `
formats:
  - id: BAD
    total_length: 2
    letter_prefix_length: 5
`)

	_, err := LoadFormats(path)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestLoadFormats_BadYAML(t *testing.T) {
	path := writeFormatsFile(t, "formats: [::")

	_, err := LoadFormats(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding formats file")
}

func TestLoadFormats_MissingFile(t *testing.T) {
	_, err := LoadFormats(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading formats file")
}
