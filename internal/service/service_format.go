package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-access-desk/internal/accesscode"
	"github.com/MKhiriev/go-access-desk/internal/logger"
)

type formatService struct {
	registry *accesscode.Registry

	logger *logger.Logger
}

// NewFormatService returns a [FormatService] over registry.
func NewFormatService(registry *accesscode.Registry, logger *logger.Logger) FormatService {
	return &formatService{registry: registry, logger: logger}
}

func (s *formatService) Formats(_ context.Context) []accesscode.FormatSpec {
	return s.registry.Formats()
}

func (s *formatService) Format(_ context.Context, formatID string) (accesscode.FormatSpec, error) {
	return s.registry.Lookup(formatID)
}

func (s *formatService) Register(_ context.Context, formats ...accesscode.FormatSpec) error {
	var errs error
	for _, f := range formats {
		if err := s.registry.Register(f); err != nil {
			s.logger.Warn().Err(err).Str("format", f.ID).Msg("skipping access code format")
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

// NewFormatRegistry returns a registry holding the predefined formats plus
// the formats read from formatsFile, when set. A format in the file replaces
// a predefined one with the same ID.
func NewFormatRegistry(formatsFile string, logger *logger.Logger) (*accesscode.Registry, error) {
	registry := accesscode.NewDefaultRegistry()
	if formatsFile == "" {
		return registry, nil
	}

	formats, err := accesscode.LoadFormats(formatsFile)
	if err != nil {
		return nil, fmt.Errorf("error loading access code formats: %w", err)
	}
	for _, f := range formats {
		if err = registry.Register(f); err != nil {
			return nil, fmt.Errorf("error registering access code format: %w", err)
		}
	}

	logger.Info().
		Str("file", formatsFile).
		Int("formats", len(formats)).
		Msg("access code formats loaded")

	return registry, nil
}
