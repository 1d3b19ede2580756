package service

import (
	"context"

	"github.com/MKhiriev/go-nutri-keeper/internal/config"
	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/models"
)

const appName = "Nutri Keeper API"

// Pinger checks a backing dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

type appInfoService struct {
	appVersion string
	pinger     Pinger

	logger *logger.Logger
}

// NewAppInfoService returns the service behind GET /api. pinger may be nil,
// in which case the status is always "ok".
func NewAppInfoService(cfg config.App, pinger Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		pinger:     pinger,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	status := "ok"
	if s.pinger != nil {
		if err := s.pinger.Ping(ctx); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*appInfoService.GetAppInfo").Msg("database ping failed")
			status = "degraded"
		}
	}

	return models.AppInfo{
		Name:    appName,
		Version: s.appVersion,
		Status:  status,
	}
}
