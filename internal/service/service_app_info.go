package service

import (
	"context"

	"github.com/MKhiriev/levelup/internal/config"
	"github.com/MKhiriev/levelup/internal/logger"
	"github.com/MKhiriev/levelup/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService returns the build info reported by the version endpoint.
// A non-empty cfg.Version overrides the linked-in version.
func NewAppInfoService(buildInfo models.AppBuildInfo, cfg config.App, logger *logger.Logger) AppInfoService {
	if cfg.Version != "" {
		buildInfo.Version = cfg.Version
	}

	return &appInfoService{
		buildInfo: buildInfo,
		logger:    logger,
	}
}

func (s *appInfoService) GetAppBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}
