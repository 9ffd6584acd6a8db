package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-access-desk/internal/accesscode"
	"github.com/MKhiriev/go-access-desk/internal/config"
	"github.com/MKhiriev/go-access-desk/internal/logger"
	"github.com/MKhiriev/go-access-desk/internal/utils"
	"github.com/MKhiriev/go-access-desk/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetPlans implements [ServerAdapter]. It GETs /api/plans and decodes the
// JSON array into [models.Plan] values.
func (h *httpServerAdapter) GetPlans(ctx context.Context) ([]models.Plan, error) {
	var plans []models.Plan

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&plans).
		Get("/api/plans")
	if err != nil {
		return nil, fmt.Errorf("get plans request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().Int("plans", len(plans)).Msg("plans fetched from server")
	return plans, nil
}

// GetFormats implements [ServerAdapter]. It GETs /api/formats.
func (h *httpServerAdapter) GetFormats(ctx context.Context) ([]accesscode.FormatSpec, error) {
	var formats []accesscode.FormatSpec

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&formats).
		Get("/api/formats")
	if err != nil {
		return nil, fmt.Errorf("get formats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().Int("formats", len(formats)).Msg("formats fetched from server")
	return formats, nil
}

// GetVersion implements [ServerAdapter]. The server answers GET /api/version/
// with a plain-text body.
func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("get version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
