package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ligand/internal/logger"
)

func TestGetSpec(t *testing.T) {
	_, a, _ := newTestRouter(t)

	rec := serve(a.Router(), httptest.NewRequest(http.MethodGet, "/openapi/api-spec.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

	assert.Equal(t, "3.0.3", doc["openapi"])
	info := doc["info"].(map[string]any)
	assert.Equal(t, "TESTING Pets", info["title"])
	assert.Equal(t, "1.0.0", info["version"])

	schemes := doc["components"].(map[string]any)["securitySchemes"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "http", "scheme": "bearer", "bearerFormat": "JWT"}, schemes["bearerAuth"])

	paths := doc["paths"].(map[string]any)
	assert.Contains(t, paths, "/openapi/python/")
	assert.Contains(t, paths, "/openapi/typescript-axios/")
}

func TestGetSwaggerUI(t *testing.T) {
	_, a, _ := newTestRouter(t)

	rec := serve(a.Router(), httptest.NewRequest(http.MethodGet, "/apidocs", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, `<title>TESTING Pets</title>`)
	assert.Contains(t, body, `https://cdn.example.com/swagger-ui/swagger-ui-bundle.js`)
	assert.Contains(t, body, `data-spec-url="/openapi/api-spec.json"`)
}

func TestGetSwaggerUI_SpecURLUnderPrefix(t *testing.T) {
	settings := testSettings()
	settings.OpenAPIURLPrefix = "/pets"
	h := NewHandler(settings, logger.Nop())

	rec := httptest.NewRecorder()
	h.getSwaggerUI(rec, injectNopLogger(httptest.NewRequest(http.MethodGet, "/pets/apidocs", nil)))

	body := rec.Body.String()
	assert.Contains(t, body, `data-spec-url="/pets/openapi/api-spec.json"`)
	assert.NotContains(t, body, `\/`)
}

func TestDocsPath_TableTest(t *testing.T) {
	tests := []struct {
		prefix string
		path   string
		want   string
	}{
		{prefix: "", path: "/openapi/api-spec.json", want: "/openapi/api-spec.json"},
		{prefix: "/", path: "/apidocs", want: "/apidocs"},
		{prefix: "/pets", path: "/apidocs", want: "/pets/apidocs"},
		{prefix: "pets/", path: "openapi.json", want: "/pets/openapi.json"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			settings := testSettings()
			settings.OpenAPIURLPrefix = tt.prefix

			assert.Equal(t, tt.want, (&Handler{settings: settings}).docsPath(tt.path))
		})
	}
}
