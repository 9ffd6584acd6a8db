// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// GoAccessDesk server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of a request.
package app

const (
	// MsgInvalidDataProvided is returned when a path parameter or query value
	// cannot be interpreted (e.g. an unknown billing cycle).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgPlanNotFound is returned when no catalog plan matches the requested ID.
	MsgPlanNotFound = "plan not found"

	// MsgFormatNotFound is returned when no access-code format matches the
	// requested ID.
	MsgFormatNotFound = "access code format not found"

	// MsgCatalogUnavailable is returned while the plan catalog is empty.
	MsgCatalogUnavailable = "plan catalog is unavailable"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "too many requests"
)
