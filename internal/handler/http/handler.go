package http

import (
	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/metrics"
	"github.com/MKhiriev/go-nutri-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-nutri-keeper/internal/service"
)

// Options carries the optional collaborators of the HTTP layer. Zero values
// disable the corresponding feature.
type Options struct {
	Metrics            *metrics.Metrics
	RegisterLimiter    *ratelimit.Limiter
	CORSAllowedOrigins []string
}

type Handler struct {
	services *service.Services

	metrics         *metrics.Metrics
	registerLimiter *ratelimit.Limiter
	corsOrigins     []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, opts Options, logger *logger.Logger) *Handler {
	logger.Info().
		Bool("rate_limit", opts.RegisterLimiter.Enabled()).
		Strs("cors_origins", opts.CORSAllowedOrigins).
		Msg("http handler created")
	return &Handler{
		services:        services,
		metrics:         opts.Metrics,
		registerLimiter: opts.RegisterLimiter,
		corsOrigins:     opts.CORSAllowedOrigins,
		logger:          logger,
	}
}
