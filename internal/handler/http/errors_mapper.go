package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-access-desk/internal/accesscode"
	"github.com/MKhiriev/go-access-desk/internal/app"
	"github.com/MKhiriev/go-access-desk/internal/service"
	"github.com/MKhiriev/go-access-desk/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidBillingCycle:   http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	accesscode.ErrUnknownFormat: http.StatusNotFound,
	accesscode.ErrInvalidFormat: http.StatusBadRequest,

	store.ErrPlanNotFound: http.StatusNotFound,
	store.ErrEmptyCatalog: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

var errorMessageMap = map[error]string{
	service.ErrInvalidBillingCycle:   app.MsgInvalidDataProvided,
	service.ErrVersionIsNotSpecified: app.MsgInternalServerError,

	accesscode.ErrUnknownFormat: app.MsgFormatNotFound,
	accesscode.ErrInvalidFormat: app.MsgInvalidDataProvided,

	store.ErrPlanNotFound: app.MsgPlanNotFound,
	store.ErrEmptyCatalog: app.MsgCatalogUnavailable,
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}
