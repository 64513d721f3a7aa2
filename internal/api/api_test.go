package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-ligand/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type petOut struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Website string    `json:"website" format:"uri"`
}

type petQuery struct {
	Species string `mapstructure:"species" validate:"required" description:"Species filter"`
	Limit   int    `mapstructure:"limit"`
}

func newTestAPI() *API {
	return NewAPI(chi.NewRouter(), Info{
		Title:          "Pets",
		Version:        "1.2.3",
		OpenAPIVersion: "3.0.3",
		Servers:        []config.ServerSpec{{URL: "http://public.url", Description: "Public URL"}},
	})
}

func specMap(t *testing.T, a *API) map[string]any {
	t.Helper()

	data, err := a.SpecJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func dig(t *testing.T, v any, keys ...string) any {
	t.Helper()

	for _, k := range keys {
		m, ok := v.(map[string]any)
		require.True(t, ok, "expected object at %q", k)
		v, ok = m[k]
		require.True(t, ok, "missing key %q", k)
	}
	return v
}

// ── document ──

func TestNewAPI_Document(t *testing.T) {
	doc := specMap(t, newTestAPI())

	assert.Equal(t, "3.0.3", doc["openapi"])
	assert.Equal(t, "Pets", dig(t, doc, "info", "title"))
	assert.Equal(t, "1.2.3", dig(t, doc, "info", "version"))
	assert.Equal(t, []any{map[string]any{"url": "http://public.url", "description": "Public URL"}}, doc["servers"])
	assert.Equal(t, map[string]any{"type": "http", "scheme": "bearer", "bearerFormat": "JWT"},
		dig(t, doc, "components", "securitySchemes", BearerAuth))
}

// ── blueprints ──

func TestAPI_RegisterBlueprint(t *testing.T) {
	a := newTestAPI()

	bp := NewBlueprint("pets", "/pets/", "Pet operations").
		Route(http.MethodGet, "/{id:[0-9a-f-]+}", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(chi.URLParam(r, "id")))
		},
			WithSummary("Get a pet"),
			WithOperationID("getPet"),
			WithResponse(http.StatusOK, petOut{}, "The pet"),
			WithSecurity(BearerAuth),
		).
		Route(http.MethodGet, "/", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
			WithQuery(petQuery{}),
			WithResponse(http.StatusNoContent, nil, "Nothing"),
		)

	require.NoError(t, a.RegisterBlueprint(bp))

	t.Run("routes are mounted", func(t *testing.T) {
		rr := httptest.NewRecorder()
		a.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/pets/abc-1", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "abc-1", rr.Body.String())

		rr = httptest.NewRecorder()
		a.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/pets/", nil))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	doc := specMap(t, a)

	t.Run("operation is documented", func(t *testing.T) {
		op := dig(t, doc, "paths", "/pets/{id}", "get")
		assert.Equal(t, "Get a pet", dig(t, op, "summary"))
		assert.Equal(t, "getPet", dig(t, op, "operationId"))
		assert.Equal(t, []any{"pets"}, dig(t, op, "tags"))
		assert.Equal(t, []any{map[string]any{BearerAuth: []any{}}}, dig(t, op, "security"))

		props := dig(t, op, "responses", "200", "content", "application/json", "schema", "properties")
		assert.Equal(t, "uuid", dig(t, props, "id", "format"))
		assert.Equal(t, "uri", dig(t, props, "website", "format"))
		assert.NotNil(t, dig(t, op, "responses", "default"))

		params := dig(t, op, "parameters").([]any)
		require.Len(t, params, 1)
		assert.Equal(t, "id", dig(t, params[0], "name"))
		assert.Equal(t, "path", dig(t, params[0], "in"))
	})

	t.Run("query parameters", func(t *testing.T) {
		params := dig(t, doc, "paths", "/pets/", "get", "parameters").([]any)
		require.Len(t, params, 2)
		assert.Equal(t, "species", dig(t, params[0], "name"))
		assert.Equal(t, true, dig(t, params[0], "required"))
		assert.Equal(t, "Species filter", dig(t, params[0], "description"))
		assert.Equal(t, "limit", dig(t, params[1], "name"))
	})

	t.Run("tag is documented", func(t *testing.T) {
		assert.Equal(t, []any{map[string]any{"name": "pets", "description": "Pet operations"}}, doc["tags"])
	})

	t.Run("duplicate blueprint", func(t *testing.T) {
		err := a.RegisterBlueprint(NewBlueprint("pets", "/other", ""))
		assert.ErrorIs(t, err, ErrBlueprintRegistered)
	})
}

func TestAPI_RegisterBlueprint_Middleware(t *testing.T) {
	a := newTestAPI()
	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
	}

	bp := NewBlueprint("secret", "/secret", "").
		Route(http.MethodGet, "/", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}, WithMiddleware(deny))
	require.NoError(t, a.RegisterBlueprint(bp))

	rr := httptest.NewRecorder()
	a.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/secret/", nil))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestAPI_RegisterBlueprint_BadQuery(t *testing.T) {
	a := newTestAPI()
	bp := NewBlueprint("bad", "/bad", "").
		Route(http.MethodGet, "/", func(http.ResponseWriter, *http.Request) {}, WithQuery(42))

	err := a.RegisterBlueprint(bp)
	assert.ErrorIs(t, err, ErrBuildingSchema)
}

func TestAPI_Spec(t *testing.T) {
	a := newTestAPI()

	doc, err := a.Spec()
	require.NoError(t, err)
	assert.Equal(t, "Pets", doc.Info.Title)

	doc.Info.Title = "changed"
	again, err := a.Spec()
	require.NoError(t, err)
	assert.Equal(t, "Pets", again.Info.Title)
}
