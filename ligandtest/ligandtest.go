// Package ligandtest builds ligand applications for tests of services built
// on the library.
//
// Apps run in the testing environment: an in-memory sqlite database, HS256
// tokens signed with a shared secret and no outbound request at startup.
package ligandtest

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ligand"
)

// Names given to apps built by [NewApp].
const (
	Title      = "Test API"
	Version    = "1.0.0"
	ClientName = "test-client"
)

// NewApp creates a testing-environment app with overrides applied. The app
// is closed when the test finishes.
func NewApp(t testing.TB, overrides map[string]any, opts ...ligand.Option) *ligand.App {
	t.Helper()

	opts = append([]ligand.Option{ligand.WithLogger(zerolog.Nop())}, opts...)
	app, err := ligand.CreateApp(context.Background(), ligand.EnvTesting, Title, Version, ClientName, overrides, opts...)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = app.Close()
	})

	return app
}

// AccessToken signs an access token for userID holding roles.
func AccessToken(t testing.TB, app *ligand.App, userID string, roles ...string) string {
	t.Helper()

	token, err := app.Auth.CreateToken(context.Background(), ligand.User{ID: userID, Roles: roles})
	require.NoError(t, err)

	return token
}

// AuthHeader returns the request header carrying token the way app expects
// it.
func AuthHeader(app *ligand.App, token string) http.Header {
	h := make(http.Header)
	h.Set(app.Settings.JWTHeaderName, app.Settings.JWTHeaderType+" "+token)
	return h
}
