package http

import (
	"github.com/MKhiriev/go-ligand/internal/api"
	"github.com/MKhiriev/go-ligand/internal/config"
	"github.com/MKhiriev/go-ligand/internal/logger"
	"github.com/MKhiriev/go-ligand/internal/service"
)

type Handler struct {
	services *service.Services
	settings *config.Settings
	api      *api.API

	logger *logger.Logger
}

// NewHandler returns a Handler for settings. Services and the API are
// attached by Init once the router exists.
func NewHandler(settings *config.Settings, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		settings: settings,
		logger:   logger,
	}
}
