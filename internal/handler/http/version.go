package http

import (
	"net/http"

	"github.com/MKhiriev/go-access-desk/internal/logger"
	"github.com/MKhiriev/go-access-desk/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// getServerInfo reports the version together with the formats and the plan
// count the server currently offers.
func (h *Handler) getServerInfo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	info, err := h.services.AppInfoService.GetAppInfo(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getServerInfo").Msg("error getting server info")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, info, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getServerInfo").Msg("error writing response")
	}
}
