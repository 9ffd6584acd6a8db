package http

import (
	"github.com/MKhiriev/go-access-desk/internal/config"
	"github.com/MKhiriev/go-access-desk/internal/logger"
	"github.com/MKhiriev/go-access-desk/internal/service"
	"github.com/MKhiriev/go-access-desk/internal/utils"
)

type Handler struct {
	services *service.Services
	limiter  *rateLimiter
	clientIP *utils.ClientIPResolver
	metrics  *httpMetrics

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. Rate limiting is enabled when
// cfg.RateLimitRPS is positive and is keyed on the peer address unless the
// peer is one of cfg.TrustedProxies.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	clientIP, err := utils.NewClientIPResolver(cfg.TrustedProxies)
	if err != nil {
		logger.Err(err).Msg("ignoring trusted proxies, keying clients on peer address")
		clientIP = &utils.ClientIPResolver{}
	}

	logger.Info().Strs("trusted_proxies", cfg.TrustedProxies).Msg("http handler created")
	return &Handler{
		services: services,
		limiter:  newRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 0),
		clientIP: clientIP,
		metrics:  newHTTPMetrics(),
		logger:   logger,
	}
}
