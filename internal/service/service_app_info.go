package service

import (
	"context"

	"github.com/MKhiriev/go-circuit-runner/internal/config"
	"github.com/MKhiriev/go-circuit-runner/internal/logger"
	"github.com/MKhiriev/go-circuit-runner/internal/simulator"
	"github.com/MKhiriev/go-circuit-runner/models"
)

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService captures the version and the backend identity once;
// neither changes for the lifetime of the process.
func NewAppInfoService(cfg config.App, backend simulator.Backend, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	if backend == nil {
		return nil, ErrNoBackend
	}

	return &appInfoService{
		info: models.AppInfo{
			Version: cfg.Version,
			Backend: backend.Name(),
			Method:  backend.Method(),
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.info
}
