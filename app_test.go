package ligand_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ligand"
	"github.com/MKhiriev/go-ligand/ligandtest"
	"github.com/MKhiriev/go-ligand/models"
)

func serve(app *ligand.App, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, r)
	return rec
}

// ── CreateApp ────────────────────────────────────────────────────────────────

func TestCreateApp_InvalidEnvironment(t *testing.T) {
	_, err := ligand.CreateApp(context.Background(), "qa", "Pets", "1.0.0", "pets", nil, ligand.WithLogger(zerolog.Nop()))
	assert.ErrorIs(t, err, ligand.ErrInvalidEnvironment)
}

func TestCreateApp_ProtectedOverride(t *testing.T) {
	_, err := ligand.CreateApp(context.Background(), ligand.EnvTesting, "Pets", "1.0.0", "pets",
		map[string]any{"API_TITLE": "Other"}, ligand.WithLogger(zerolog.Nop()))
	assert.ErrorIs(t, err, ligand.ErrProtectedSetting)
}

func TestCreateApp_Testing(t *testing.T) {
	app := ligandtest.NewApp(t, map[string]any{"MY_FEATURE_FLAG": true})

	assert.Equal(t, "TESTING "+ligandtest.Title, app.Settings.APITitle)
	assert.Equal(t, ligandtest.Version, app.Settings.APIVersion)
	assert.NotNil(t, app.DB)
	assert.NotNil(t, app.Auth)

	flag, ok := app.Settings.Value("MY_FEATURE_FLAG")
	require.True(t, ok)
	assert.Equal(t, true, flag)

	rec := serve(app, httptest.NewRequest(http.MethodGet, "/openapi/api-spec.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "TESTING Test API", doc["info"].(map[string]any)["title"])
	assert.Equal(t, []any{map[string]any{"url": "http://public.url", "description": "Public URL"}}, doc["servers"])

	rec = serve(app, httptest.NewRequest(http.MethodGet, "/version", nil))
	assert.Equal(t, ligandtest.Version, rec.Body.String())
}

func TestCreateApp_RunMigrations(t *testing.T) {
	app := ligandtest.NewApp(t, map[string]any{
		"DB_AUTO_UPGRADE":  true,
		"DB_MIGRATION_DIR": "migrations/testdata/widgets",
	})

	var color string
	_, err := app.DB.ExecContext(context.Background(), "INSERT INTO widgets (name) VALUES ('a')")
	require.NoError(t, err)
	require.NoError(t, app.DB.QueryRowContext(context.Background(), "SELECT color FROM widgets").Scan(&color))
	assert.Equal(t, "grey", color)
}

func TestCreateApp_MigrationDirMissing(t *testing.T) {
	_, err := ligand.CreateApp(context.Background(), ligand.EnvTesting, "Pets", "1.0.0", "pets",
		map[string]any{"DB_AUTO_UPGRADE": true, "DB_MIGRATION_DIR": "does/not/exist"},
		ligand.WithLogger(zerolog.Nop()))
	assert.Error(t, err)
}

// ── blueprints and roles ─────────────────────────────────────────────────────

func TestApp_RoleRequired(t *testing.T) {
	app := ligandtest.NewApp(t, nil)

	var seen ligand.User
	bp := ligand.NewBlueprint("me", "/me", "Current user")
	bp.Route(http.MethodGet, "/", func(w http.ResponseWriter, r *http.Request) {
		user, ok := ligand.CurrentUser(r.Context())
		require.True(t, ok)
		seen = user
		w.WriteHeader(http.StatusNoContent)
	}, app.RoleRequired("admin"))
	require.NoError(t, app.RegisterBlueprint(bp))

	tests := []struct {
		name       string
		roles      []string
		withToken  bool
		wantStatus int
	}{
		{name: "no token", wantStatus: http.StatusUnauthorized},
		{name: "wrong role", withToken: true, roles: []string{"user"}, wantStatus: http.StatusForbidden},
		{name: "admin", withToken: true, roles: []string{"user", "admin"}, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me/", nil)
			if tt.withToken {
				req.Header = ligandtest.AuthHeader(app, ligandtest.AccessToken(t, app, "42", tt.roles...))
			}

			rec := serve(app, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	assert.Equal(t, ligand.User{ID: "42", Roles: []string{"user", "admin"}}, seen)
}

func TestApp_RegisterBlueprintTwice(t *testing.T) {
	app := ligandtest.NewApp(t, nil)

	bp := ligand.NewBlueprint("pets", "/pets", "")
	bp.Route(http.MethodGet, "/", func(http.ResponseWriter, *http.Request) {})

	require.NoError(t, app.RegisterBlueprint(bp))
	assert.Error(t, app.RegisterBlueprint(bp))
}

func TestApp_GenerateClientUnsupportedLanguage(t *testing.T) {
	app := ligandtest.NewApp(t, nil)

	_, err := app.GenerateClient(context.Background(), "cobol", false)
	assert.ErrorIs(t, err, ligand.ErrUnsupportedLanguage)
}

// ── offline auth ─────────────────────────────────────────────────────────────

func TestCreateApp_WithOfflineAuth(t *testing.T) {
	t.Setenv("OIDC_ISSUER_URL", "https://sso.example.com")
	t.Setenv("OIDC_REALM", "acme")
	t.Setenv("DATABASE_URI", "")

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	app, err := ligand.CreateApp(context.Background(), ligand.EnvLocal, "Pets", "1.0.0", "pets", nil,
		ligand.WithLogger(zerolog.Nop()), ligand.WithOfflineAuth(&priv.PublicKey))
	require.NoError(t, err)
	defer app.Close()

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		RealmAccess: models.RealmAccess{Roles: []string{"user"}},
	}).SignedString(priv)
	require.NoError(t, err)

	user, err := app.Auth.ParseToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, ligand.User{ID: "7", Roles: []string{"user"}}, user)

	_, err = app.Auth.CreateToken(context.Background(), user)
	assert.Error(t, err)
}

// ── OIDC discovery ───────────────────────────────────────────────────────────

func newOIDCIssuer(t *testing.T, pub *rsa.PublicKey) *httptest.Server {
	t.Helper()

	key, err := jwk.FromRaw(pub)
	require.NoError(t, err)
	set := jwk.NewSet()
	require.NoError(t, set.AddKey(key))
	jwks, err := json.Marshal(set)
	require.NoError(t, err)

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/realms/acme/.well-known/openid-configuration", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"jwks_uri": srv.URL + "/realms/acme/certs"})
	})
	mux.HandleFunc("/realms/acme/certs", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(jwks)
	})

	return srv
}

func TestCreateApp_ProdDiscoversIssuerKey(t *testing.T) {
	t.Setenv("JWT_DECODE_AUDIENCE", "")
	t.Setenv("LIGAND_CONFIG", "")

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	issuer := newOIDCIssuer(t, &priv.PublicKey)

	app, err := ligand.CreateApp(context.Background(), ligand.EnvProd, "Pets", "1.0.0", "pets", map[string]any{
		"SERVICE_PUBLIC_URL":     "https://pets.example.com",
		"SERVICE_PRIVATE_URL":    "http://pets.internal:5000",
		"ALLOWED_ROLES":          "user,admin",
		"OIDC_ISSUER_URL":        issuer.URL,
		"OIDC_REALM":             "acme",
		"DATABASE_URI":           "sqlite://:memory:",
		"OPENAPI_GEN_SERVER_URL": "http://openapi.fake.address",
	}, ligand.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, "Pets", app.Settings.APITitle)

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "9",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		RealmAccess: models.RealmAccess{Roles: []string{"admin"}},
	}).SignedString(priv)
	require.NoError(t, err)

	user, err := app.Auth.ParseToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, ligand.User{ID: "9", Roles: []string{"admin"}}, user)
}

// ── token lifetime ───────────────────────────────────────────────────────────

func TestCreateApp_TokenLifetimeInSeconds(t *testing.T) {
	app := ligandtest.NewApp(t, map[string]any{"JWT_ACCESS_TOKEN_EXPIRES": 300})

	assert.Equal(t, 300*time.Second, app.Settings.JWTAccessTokenExpires)

	token := ligandtest.AccessToken(t, app, "1", "user")

	claims := &models.Claims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(300*time.Second), claims.ExpiresAt.Time, 5*time.Second)

	_, err = app.Auth.ParseToken(context.Background(), token)
	assert.NoError(t, err)
}
