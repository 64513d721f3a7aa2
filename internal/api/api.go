package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-ligand/internal/config"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
)

// BearerAuth is the name of the JWT security scheme declared in every
// document.
const BearerAuth = "bearerAuth"

// Info describes the document-level fields of an [API].
type Info struct {
	Title          string
	Version        string
	OpenAPIVersion string
	Servers        []config.ServerSpec
}

// API is the OpenAPI document of a service together with the router its
// operations are mounted on. It is safe for concurrent use.
type API struct {
	mu         sync.RWMutex
	doc        *openapi3.T
	router     chi.Router
	blueprints map[string]struct{}
}

// NewAPI returns an API mounting blueprints on router.
func NewAPI(router chi.Router, info Info) *API {
	doc := &openapi3.T{
		OpenAPI: info.OpenAPIVersion,
		Info: &openapi3.Info{
			Title:   info.Title,
			Version: info.Version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			SecuritySchemes: openapi3.SecuritySchemes{
				BearerAuth: &openapi3.SecuritySchemeRef{Value: openapi3.NewJWTSecurityScheme()},
			},
		},
	}
	for _, s := range info.Servers {
		doc.AddServer(&openapi3.Server{URL: s.URL, Description: s.Description})
	}

	return &API{
		doc:        doc,
		router:     router,
		blueprints: make(map[string]struct{}),
	}
}

// RegisterBlueprint mounts every route of bp on the router and documents it.
// Nothing is mounted when any route fails to document.
func (a *API) RegisterBlueprint(bp *Blueprint) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.blueprints[bp.Name]; ok {
		return fmt.Errorf("%w: '%s'", ErrBlueprintRegistered, bp.Name)
	}

	ops := make([]*openapi3.Operation, len(bp.routes))
	for i, rt := range bp.routes {
		op, err := rt.operation(bp.Name)
		if err != nil {
			return fmt.Errorf("route %s %s: %w", rt.method, bp.path(rt.pattern), err)
		}
		ops[i] = op
	}

	for i, rt := range bp.routes {
		path := bp.path(rt.pattern)
		a.router.With(rt.cfg.middlewares...).Method(rt.method, path, rt.handler)

		docPath := openAPIPath(path)
		item := a.doc.Paths.Value(docPath)
		if item == nil {
			item = &openapi3.PathItem{}
			a.doc.Paths.Set(docPath, item)
		}
		item.SetOperation(rt.method, ops[i])
	}

	a.doc.Tags = append(a.doc.Tags, &openapi3.Tag{Name: bp.Name, Description: bp.Description})
	a.blueprints[bp.Name] = struct{}{}

	return nil
}

// Router returns the router blueprints are mounted on.
func (a *API) Router() chi.Router {
	return a.router
}

// Spec returns a deep copy of the current document.
func (a *API) Spec() (*openapi3.T, error) {
	data, err := a.SpecJSON()
	if err != nil {
		return nil, err
	}

	var doc openapi3.T
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error decoding OpenAPI document: %w", err)
	}

	return &doc, nil
}

// SpecJSON returns the JSON encoding of the current document.
func (a *API) SpecJSON() ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	data, err := json.Marshal(a.doc)
	if err != nil {
		return nil, fmt.Errorf("error encoding OpenAPI document: %w", err)
	}

	return data, nil
}
