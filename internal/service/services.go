package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ligand/internal/adapter"
	"github.com/MKhiriev/go-ligand/internal/config"
	"github.com/MKhiriev/go-ligand/internal/logger"
)

type Services struct {
	AuthService          AuthService
	OpenAPIClientService OpenAPIClientService
	AppInfoService       AppInfoService
}

// Adapters are the outbound dependencies of the services.
type Adapters struct {
	KeyProvider     adapter.KeyProvider
	ClientGenerator adapter.ClientGenerator
}

func NewServices(ctx context.Context, settings *config.Settings, adapters Adapters, spec SpecProvider, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(ctx, settings, adapters.KeyProvider, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(settings, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:          authService,
		OpenAPIClientService: NewOpenAPIClientService(settings, spec, adapters.ClientGenerator, logger),
		AppInfoService:       appInfoService,
	}, nil
}
