// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the access desk catalog server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-access-desk/internal/accesscode"
	"github.com/MKhiriev/go-access-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the catalog
// server. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// GetPlans fetches the pricing catalog in display order.
	GetPlans(ctx context.Context) ([]models.Plan, error)

	// GetFormats fetches the access-code formats known to the server. The
	// formats are returned as sent; validation is left to the registry.
	GetFormats(ctx context.Context) ([]accesscode.FormatSpec, error)

	// GetVersion returns the server application version.
	GetVersion(ctx context.Context) (string, error)
}
