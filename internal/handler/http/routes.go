package http

import (
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MKhiriev/go-ligand/internal/api"
	"github.com/MKhiriev/go-ligand/internal/metrics"
	"github.com/MKhiriev/go-ligand/internal/service"
)

// NewRouter returns the application router with every request middleware
// installed. Routes are added afterwards by Init and by application
// blueprints.
func (h *Handler) NewRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withMetrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.settings.CORSAllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: h.settings.CORSExposeHeaders,
	}))

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}

// Init mounts the built-in routes on the router of a: the OpenAPI document
// and its Swagger UI, /metrics, /version and the openapi blueprint.
func (h *Handler) Init(a *api.API, services *service.Services) error {
	h.api = a
	h.services = services

	router := a.Router()
	router.Get(h.docsPath(h.settings.OpenAPIJSONPath), h.getSpec)
	if h.settings.OpenAPISwaggerUIPath != "" {
		router.Get(h.docsPath(h.settings.OpenAPISwaggerUIPath), h.getSwaggerUI)
	}
	router.Handle("/metrics", metrics.Handler())
	router.Get("/version", h.getServerVersion)

	return a.RegisterBlueprint(h.openAPIBlueprint())
}

// docsPath places p under OPENAPI_URL_PREFIX.
func (h *Handler) docsPath(p string) string {
	return path.Join("/", h.settings.OpenAPIURLPrefix, p)
}
