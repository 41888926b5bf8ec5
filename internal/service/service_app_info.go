package service

import (
	"context"

	"github.com/MKhiriev/portfolio-server/internal/config"
	"github.com/MKhiriev/portfolio-server/internal/logger"
)

type appInfoService struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService fails when no release version was configured or
// stamped into the binary at build time.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	logger.Debug().Str("version", cfg.Version).Msg("serving release version")

	return &appInfoService{version: cfg.Version, logger: logger}, nil
}

// GetAppVersion is served as plain text on /api/version.
func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
