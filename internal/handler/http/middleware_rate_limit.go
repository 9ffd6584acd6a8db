package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-access-desk/internal/app"
	"github.com/MKhiriev/go-access-desk/internal/logger"
)

func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := h.clientIP.ClientIP(r)

		if !h.limiter.allow(client, time.Now()) {
			logger.FromRequest(r).Warn().
				Str("client", client).
				Str("uri", r.RequestURI).
				Msg("rate limit exceeded")
			h.metrics.rateLimited.Inc()

			w.Header().Set("Retry-After", "1")
			http.Error(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
