package http

import (
	"net/http"

	"github.com/MKhiriev/go-access-desk/internal/logger"
	"github.com/MKhiriev/go-access-desk/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getFormats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	formats := h.services.FormatService.Formats(r.Context())

	if _, err := utils.WriteJSON(w, formats, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getFormats").Msg("error writing response")
	}
}

func (h *Handler) getFormat(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	formatID := chi.URLParam(r, "formatID")

	format, err := h.services.FormatService.Format(r.Context(), formatID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getFormat").Str("format", formatID).Msg("error getting access code format")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, format, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getFormat").Msg("error writing response")
	}
}
