package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-access-desk/internal/accesscode"
	"github.com/MKhiriev/go-access-desk/internal/app"
	"github.com/MKhiriev/go-access-desk/internal/service"
	"github.com/MKhiriev/go-access-desk/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "plan not found", err: fmt.Errorf("error getting plan: %w", store.ErrPlanNotFound), want: http.StatusNotFound},
		{name: "unknown format", err: fmt.Errorf("%w: %q", accesscode.ErrUnknownFormat, "XYZ"), want: http.StatusNotFound},
		{name: "invalid format", err: accesscode.ErrInvalidFormat, want: http.StatusBadRequest},
		{name: "invalid billing cycle", err: service.ErrInvalidBillingCycle, want: http.StatusBadRequest},
		{name: "empty catalog", err: store.ErrEmptyCatalog, want: http.StatusServiceUnavailable},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMessageFromError(t *testing.T) {
	assert.Equal(t, app.MsgPlanNotFound, messageFromError(fmt.Errorf("wrap: %w", store.ErrPlanNotFound)))
	assert.Equal(t, app.MsgFormatNotFound, messageFromError(accesscode.ErrUnknownFormat))
	assert.Equal(t, app.MsgCatalogUnavailable, messageFromError(store.ErrEmptyCatalog))
	assert.Equal(t, app.MsgInvalidDataProvided, messageFromError(service.ErrInvalidBillingCycle))
	assert.Equal(t, app.MsgInternalServerError, messageFromError(errors.New("boom")))
}
