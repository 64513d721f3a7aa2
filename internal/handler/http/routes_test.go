package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ligand/internal/api"
	"github.com/MKhiriev/go-ligand/internal/metrics"
)

func TestRouter_CORS(t *testing.T) {
	_, a, m := newTestRouter(t)
	m.info.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set("Origin", "http://frontend.example.com")
	rec := serve(a.Router(), req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	exposed := rec.Header().Get("Access-Control-Expose-Headers")
	assert.Contains(t, exposed, "X-Pagination")
	assert.Contains(t, strings.ToLower(exposed), "etag")
}

func TestRouter_CORSPreflight(t *testing.T) {
	_, a, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/openapi/python/", nil)
	req.Header.Set("Origin", "http://frontend.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := serve(a.Router(), req)

	assert.Less(t, rec.Code, 300)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_TraceIDHeader(t *testing.T) {
	_, a, m := newTestRouter(t)
	m.info.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set(traceIDHeader, "abc")
	rec := serve(a.Router(), req)

	assert.Equal(t, "abc", rec.Header().Get(traceIDHeader))
}

func TestRouter_Metrics(t *testing.T) {
	_, a, m := newTestRouter(t)
	m.info.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/version", "200")
	before := testutil.ToFloat64(counter)

	serve(a.Router(), httptest.NewRequest(http.MethodGet, "/version", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(counter))

	rec := serve(a.Router(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ligand_http_requests_total")
}

func TestRouter_UnmatchedRouteLabel(t *testing.T) {
	_, a, _ := newTestRouter(t)

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")
	before := testutil.ToFloat64(counter)

	serve(a.Router(), httptest.NewRequest(http.MethodGet, "/does/not/exist", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestInit_BlueprintRegisteredOnce(t *testing.T) {
	h, a, _ := newTestRouter(t)

	err := a.RegisterBlueprint(h.openAPIBlueprint())
	assert.ErrorIs(t, err, api.ErrBlueprintRegistered)
}
