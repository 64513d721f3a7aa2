package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-ligand/internal/config"
	"github.com/MKhiriev/go-ligand/internal/logger"
	"github.com/MKhiriev/go-ligand/internal/utils"
	"github.com/MKhiriev/go-ligand/models"
)

type openAPIGenerator struct {
	client    *utils.HTTPClient
	serverURL string

	logger *logger.Logger
}

// NewOpenAPIGenerator returns a [ClientGenerator] talking to the
// OPENAPI_GEN_SERVER_URL service.
func NewOpenAPIGenerator(settings *config.Settings, log *logger.Logger) ClientGenerator {
	return &openAPIGenerator{
		client:    newHTTPClient(settings),
		serverURL: settings.OpenAPIGenServerURL,
		logger:    log,
	}
}

// Generate implements [ClientGenerator]. It POSTs req to
// /api/gen/clients/<language>. Transport errors, non-2xx answers and
// undecodable bodies are wrapped in [ErrGeneratorRequest].
func (g *openAPIGenerator) Generate(ctx context.Context, language string, req models.ClientGenerationRequest) (models.ClientDownload, error) {
	endpoint, err := url.JoinPath(g.serverURL, "api", "gen", "clients", language)
	if err != nil {
		return models.ClientDownload{}, fmt.Errorf("%w: invalid server url: %w", ErrGeneratorRequest, err)
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(endpoint)
	if err != nil {
		return models.ClientDownload{}, fmt.Errorf("%w: %w", ErrGeneratorRequest, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ClientDownload{}, fmt.Errorf("%w: %w", ErrGeneratorRequest, err)
	}

	var download models.ClientDownload
	if err = json.Unmarshal(resp.Body(), &download); err != nil {
		return models.ClientDownload{}, fmt.Errorf("%w: decoding response: %w", ErrGeneratorRequest, err)
	}

	g.logger.Debug().Str("language", language).Str("code", download.Code.String()).Msg("client generated")
	return download, nil
}
