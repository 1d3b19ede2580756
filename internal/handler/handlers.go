package handler

import (
	"github.com/MKhiriev/go-nutri-keeper/internal/config"
	"github.com/MKhiriev/go-nutri-keeper/internal/handler/http"
	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, opts http.Options, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	if len(opts.CORSAllowedOrigins) == 0 {
		opts.CORSAllowedOrigins = cfg.CORSAllowedOrigins
	}

	return &Handlers{
		HTTP: http.NewHandler(services, opts, logger),
	}, nil
}
