package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ligand/internal/adapter"
	"github.com/MKhiriev/go-ligand/internal/config"
	"github.com/MKhiriev/go-ligand/internal/logger"
	"github.com/MKhiriev/go-ligand/internal/metrics"
	"github.com/MKhiriev/go-ligand/internal/mock"
	"github.com/MKhiriev/go-ligand/models"
)

type staticSpec struct {
	doc []byte
	err error
}

func (s staticSpec) SpecJSON() ([]byte, error) {
	return s.doc, s.err
}

const specWithServers = `{
	"openapi": "3.0.3",
	"info": {"title": "Pets", "version": "1.0.0"},
	"paths": {},
	"servers": [
		{"url": "http://public.url", "description": "Public URL"},
		{"url": "http://mirror.url"}
	]
}`

func clientSettings() *config.Settings {
	return &config.Settings{
		OpenAPIClientName: "pet-store",
		APIVersion:        "1.0.0",
		ServicePublicURL:  "http://public.url",
		ServicePrivateURL: "http://private.url",
	}
}

func newTestClientService(t *testing.T, spec SpecProvider) (OpenAPIClientService, *mock.MockClientGenerator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	gen := mock.NewMockClientGenerator(ctrl)

	return NewOpenAPIClientService(clientSettings(), spec, gen, logger.Nop()), gen
}

// ── options per language ─────────────────────────────────────────────────────

func TestOpenAPIClientService_Languages_TableTest(t *testing.T) {
	code := uuid.New()
	download := models.ClientDownload{Code: code, Link: "http://gen/download/" + code.String()}

	tests := []struct {
		name        string
		call        func(OpenAPIClientService, context.Context, bool) (models.ClientDownload, error)
		private     bool
		wantLang    string
		wantServer  string
		wantOptions map[string]any
	}{
		{
			name:       "typescript public",
			call:       OpenAPIClientService.TypescriptAxiosLink,
			wantLang:   LanguageTypescriptAxios,
			wantServer: "http://public.url",
			wantOptions: map[string]any{
				"npmName":                   "pet-store",
				"npmVersion":                "1.0.0",
				"supportsES6":               true,
				"useSingleRequestParameter": true,
			},
		},
		{
			name:       "python private",
			call:       OpenAPIClientService.PythonLink,
			private:    true,
			wantLang:   LanguagePython,
			wantServer: "http://private.url",
			wantOptions: map[string]any{
				"packageName":    "pet_store",
				"projectName":    "pet-store",
				"packageVersion": "1.0.0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, gen := newTestClientService(t, staticSpec{doc: []byte(specWithServers)})

			gen.EXPECT().Generate(gomock.Any(), tt.wantLang, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, req models.ClientGenerationRequest) (models.ClientDownload, error) {
					assert.Equal(t, tt.wantOptions, req.Options)

					servers := req.Spec["servers"].([]any)
					require.Len(t, servers, 2)
					assert.Equal(t, map[string]any{"url": tt.wantServer}, servers[0])
					assert.Equal(t, map[string]any{"url": "http://mirror.url"}, servers[1])
					return download, nil
				},
			)

			before := testutil.ToFloat64(metrics.ClientGenerationsTotal.WithLabelValues(tt.wantLang, metrics.ResultSuccess))

			got, err := tt.call(svc, context.Background(), tt.private)
			require.NoError(t, err)
			assert.Equal(t, download, got)

			after := testutil.ToFloat64(metrics.ClientGenerationsTotal.WithLabelValues(tt.wantLang, metrics.ResultSuccess))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestOpenAPIClientService_EmptyServers(t *testing.T) {
	svc, gen := newTestClientService(t, staticSpec{doc: []byte(`{"openapi":"3.0.3","paths":{}}`)})

	gen.EXPECT().Generate(gomock.Any(), LanguagePython, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, req models.ClientGenerationRequest) (models.ClientDownload, error) {
			assert.Equal(t, []any{map[string]any{"url": "http://public.url"}}, req.Spec["servers"])
			return models.ClientDownload{}, nil
		},
	)

	_, err := svc.PythonLink(context.Background(), false)
	assert.NoError(t, err)
}

// ── failures ─────────────────────────────────────────────────────────────────

func TestOpenAPIClientService_Failures(t *testing.T) {
	t.Run("generator fails", func(t *testing.T) {
		svc, gen := newTestClientService(t, staticSpec{doc: []byte(specWithServers)})
		gen.EXPECT().Generate(gomock.Any(), LanguageTypescriptAxios, gomock.Any()).
			Return(models.ClientDownload{}, adapter.ErrGeneratorRequest)

		before := testutil.ToFloat64(metrics.ClientGenerationsTotal.WithLabelValues(LanguageTypescriptAxios, metrics.ResultFailure))

		_, err := svc.TypescriptAxiosLink(context.Background(), false)
		assert.ErrorIs(t, err, ErrClientGeneration)
		assert.ErrorIs(t, err, adapter.ErrGeneratorRequest)

		after := testutil.ToFloat64(metrics.ClientGenerationsTotal.WithLabelValues(LanguageTypescriptAxios, metrics.ResultFailure))
		assert.Equal(t, before+1, after)
	})

	t.Run("spec unavailable", func(t *testing.T) {
		svc, _ := newTestClientService(t, staticSpec{err: errors.New("boom")})

		_, err := svc.PythonLink(context.Background(), false)
		assert.ErrorIs(t, err, ErrClientGeneration)
	})

	t.Run("spec undecodable", func(t *testing.T) {
		svc, _ := newTestClientService(t, staticSpec{doc: []byte("{")})

		_, err := svc.PythonLink(context.Background(), true)
		assert.ErrorIs(t, err, ErrClientGeneration)
	})
}
