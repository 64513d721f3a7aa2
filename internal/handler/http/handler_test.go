package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ligand/internal/api"
	"github.com/MKhiriev/go-ligand/internal/config"
	"github.com/MKhiriev/go-ligand/internal/logger"
	"github.com/MKhiriev/go-ligand/internal/mock"
	"github.com/MKhiriev/go-ligand/internal/service"
)

// ---- Helpers ----

func testSettings() *config.Settings {
	return &config.Settings{
		APITitle:             "TESTING Pets",
		APIVersion:           "1.0.0",
		AllowedRoles:         []string{"user", "admin"},
		JWTHeaderName:        "Authorization",
		JWTHeaderType:        "Bearer",
		OpenAPIGenServerURL:  "http://openapi.fake.address",
		OpenAPIVersion:       "3.0.3",
		OpenAPIJSONPath:      "/openapi/api-spec.json",
		OpenAPISwaggerUIPath: "/apidocs",
		OpenAPISwaggerUIURL:  "https://cdn.example.com/swagger-ui/",
		CORSAllowedOrigins:   []string{"*"},
		CORSExposeHeaders:    []string{"X-Pagination", "ETag"},
	}
}

type testServices struct {
	auth    *mock.MockAuthService
	clients *mock.MockOpenAPIClientService
	info    *mock.MockAppInfoService
}

func newTestServices(t *testing.T) (*service.Services, testServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := testServices{
		auth:    mock.NewMockAuthService(ctrl),
		clients: mock.NewMockOpenAPIClientService(ctrl),
		info:    mock.NewMockAppInfoService(ctrl),
	}

	return &service.Services{
		AuthService:          m.auth,
		OpenAPIClientService: m.clients,
		AppInfoService:       m.info,
	}, m
}

// newTestRouter builds the complete router the way an application does.
func newTestRouter(t *testing.T) (*Handler, *api.API, testServices) {
	t.Helper()

	settings := testSettings()
	h := NewHandler(settings, logger.Nop())
	a := api.NewAPI(h.NewRouter(), api.Info{
		Title:          settings.APITitle,
		Version:        settings.APIVersion,
		OpenAPIVersion: settings.OpenAPIVersion,
	})

	services, m := newTestServices(t)
	require.NoError(t, h.Init(a, services))

	return h, a, m
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

func serve(router chi.Router, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)
	return rec
}

func decodeHTTPError(t *testing.T, rec *httptest.ResponseRecorder) api.HTTPError {
	t.Helper()

	var body api.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
