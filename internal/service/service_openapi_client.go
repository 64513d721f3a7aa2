package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ligand/internal/adapter"
	"github.com/MKhiriev/go-ligand/internal/config"
	"github.com/MKhiriev/go-ligand/internal/logger"
	"github.com/MKhiriev/go-ligand/internal/metrics"
	"github.com/MKhiriev/go-ligand/models"
)

// Generator names of the supported client languages.
const (
	LanguageTypescriptAxios = "typescript-axios"
	LanguagePython          = "python"
)

type openAPIClientService struct {
	spec      SpecProvider
	generator adapter.ClientGenerator

	clientName string
	version    string
	publicURL  string
	privateURL string

	logger *logger.Logger
}

func NewOpenAPIClientService(settings *config.Settings, spec SpecProvider, generator adapter.ClientGenerator, logger *logger.Logger) OpenAPIClientService {
	return &openAPIClientService{
		spec:       spec,
		generator:  generator,
		clientName: settings.OpenAPIClientName,
		version:    settings.APIVersion,
		publicURL:  settings.ServicePublicURL,
		privateURL: settings.ServicePrivateURL,
		logger:     logger,
	}
}

// TypescriptAxiosLink implements [OpenAPIClientService].
func (s *openAPIClientService) TypescriptAxiosLink(ctx context.Context, usePrivateURL bool) (models.ClientDownload, error) {
	return s.generate(ctx, LanguageTypescriptAxios, map[string]any{
		"npmName":                   s.clientName,
		"npmVersion":                s.version,
		"supportsES6":               true,
		"useSingleRequestParameter": true,
	}, usePrivateURL)
}

// PythonLink implements [OpenAPIClientService].
func (s *openAPIClientService) PythonLink(ctx context.Context, usePrivateURL bool) (models.ClientDownload, error) {
	return s.generate(ctx, LanguagePython, map[string]any{
		"packageName":    strings.ReplaceAll(s.clientName, "-", "_"),
		"projectName":    s.clientName,
		"packageVersion": s.version,
	}, usePrivateURL)
}

func (s *openAPIClientService) generate(ctx context.Context, language string, options map[string]any, usePrivateURL bool) (models.ClientDownload, error) {
	log := logger.FromContext(ctx)

	download, err := s.requestClient(ctx, language, options, usePrivateURL)
	if err != nil {
		metrics.ClientGenerationsTotal.WithLabelValues(language, metrics.ResultFailure).Inc()
		log.Err(err).Str("language", language).Msg("client generation failed")
		return models.ClientDownload{}, fmt.Errorf("%w: %w", ErrClientGeneration, err)
	}

	metrics.ClientGenerationsTotal.WithLabelValues(language, metrics.ResultSuccess).Inc()
	log.Info().Str("language", language).Str("code", download.Code.String()).Msg("client generated")

	return download, nil
}

func (s *openAPIClientService) requestClient(ctx context.Context, language string, options map[string]any, usePrivateURL bool) (models.ClientDownload, error) {
	raw, err := s.spec.SpecJSON()
	if err != nil {
		return models.ClientDownload{}, err
	}

	var doc map[string]any
	if err = json.Unmarshal(raw, &doc); err != nil {
		return models.ClientDownload{}, fmt.Errorf("error decoding OpenAPI document: %w", err)
	}

	serverURL := s.publicURL
	if usePrivateURL {
		serverURL = s.privateURL
	}
	setFirstServer(doc, serverURL)

	return s.generator.Generate(ctx, language, models.ClientGenerationRequest{Spec: doc, Options: options})
}

// setFirstServer replaces servers[0] with url, appending it to an empty
// list. Other servers are kept.
func setFirstServer(doc map[string]any, url string) {
	entry := map[string]any{"url": url}

	servers, _ := doc["servers"].([]any)
	if len(servers) == 0 {
		doc["servers"] = []any{entry}
		return
	}

	servers[0] = entry
}
