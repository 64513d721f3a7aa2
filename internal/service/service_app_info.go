package service

import (
	"context"

	"github.com/MKhiriev/go-ligand/internal/config"
	"github.com/MKhiriev/go-ligand/internal/logger"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(settings *config.Settings, logger *logger.Logger) (AppInfoService, error) {
	if settings.APIVersion == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: settings.APIVersion,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
