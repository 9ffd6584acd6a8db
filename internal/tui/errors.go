// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-access-desk/internal/accesscode"
	"github.com/MKhiriev/go-access-desk/internal/service"
	"github.com/MKhiriev/go-access-desk/internal/store"
)

const serverUnavailableMessage = "Network is down or the server is unavailable"

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return serverUnavailableMessage
	}

	return err.Error()
}

// humanizeError turns service errors into short messages for the status line.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrIncompleteCode):
		return "The access code is incomplete"
	case errors.Is(err, service.ErrSessionClosed), errors.Is(err, service.ErrNoSession):
		return "The access session has expired, reopen the page"
	case errors.Is(err, accesscode.ErrUnknownFormat):
		return "Unknown access code format"
	case errors.Is(err, store.ErrPlanNotFound):
		return "The plan is no longer available"
	case errors.Is(err, store.ErrEmptyCatalog):
		return "The pricing catalog is empty"
	}
	return humanizeServerUnavailableError(err)
}
