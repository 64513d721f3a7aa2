package ligand

import (
	"crypto/rsa"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-ligand/internal/adapter"
	"github.com/MKhiriev/go-ligand/internal/logger"
)

// Option customizes [CreateApp].
type Option func(*options)

type options struct {
	keyProvider     adapter.KeyProvider
	clientGenerator adapter.ClientGenerator
	logger          *logger.Logger
}

// WithKeyProvider replaces OIDC key discovery with p.
func WithKeyProvider(p KeyProvider) Option {
	return func(o *options) {
		o.keyProvider = p
	}
}

// WithOfflineAuth verifies access tokens with pub instead of the key of the
// OIDC issuer, so no request leaves the process at startup.
func WithOfflineAuth(pub *rsa.PublicKey) Option {
	return WithKeyProvider(adapter.NewStaticKeyProvider(pub))
}

// WithClientGenerator replaces the OpenAPI generator client with g.
func WithClientGenerator(g ClientGenerator) Option {
	return func(o *options) {
		o.clientGenerator = g
	}
}

// WithLogger makes the app log through l. Its level is still set from
// LOG_LEVEL.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger.Logger{Logger: l}
	}
}
