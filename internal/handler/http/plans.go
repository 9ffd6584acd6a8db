package http

import (
	"net/http"

	"github.com/MKhiriev/go-access-desk/internal/logger"
	"github.com/MKhiriev/go-access-desk/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getPlans(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	plans, err := h.services.PlanService.Plans(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPlans").Msg("error getting plans")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, plans, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getPlans").Msg("error writing response")
	}
}

func (h *Handler) getPlan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	planID := chi.URLParam(r, "planID")

	plan, err := h.services.PlanService.Plan(r.Context(), planID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPlan").Str("plan", planID).Msg("error getting plan")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, plan, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getPlan").Msg("error writing response")
	}
}
