package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-access-desk/internal/accesscode"
	"github.com/MKhiriev/go-access-desk/internal/service"
	"github.com/MKhiriev/go-access-desk/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestHumanizeServerUnavailableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "connection refused", err: errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), want: serverUnavailableMessage},
		{name: "timeout", err: errors.New("Get \"http://x\": context deadline exceeded"), want: serverUnavailableMessage},
		{name: "unknown host", err: errors.New("lookup nowhere: no such host"), want: serverUnavailableMessage},
		{name: "other", err: errors.New("http 418: teapot"), want: "http 418: teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeServerUnavailableError(tt.err))
		})
	}
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "incomplete", err: fmt.Errorf("%w: 2 characters missing", service.ErrIncompleteCode), want: "The access code is incomplete"},
		{name: "no session", err: service.ErrNoSession, want: "The access session has expired, reopen the page"},
		{name: "unknown format", err: fmt.Errorf("%w: %q", accesscode.ErrUnknownFormat, "XYZ"), want: "Unknown access code format"},
		{name: "plan not found", err: fmt.Errorf("get plan: %w", store.ErrPlanNotFound), want: "The plan is no longer available"},
		{name: "network", err: errors.New("dial tcp: i/o timeout"), want: serverUnavailableMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
