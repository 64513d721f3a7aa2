// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP integrations of a go-ligand
// application.
//
// Two abstractions decouple the service layer from the remote systems:
//   - [KeyProvider] discovers the RSA public key that signs access tokens,
//     implemented against an OIDC issuer ([NewOIDCKeyProvider]);
//   - [ClientGenerator] asks an OpenAPI generator service to build a client
//     SDK ([NewOpenAPIGenerator]).
//
// Both implementations use resty with a 3.05s connect timeout, a 10s
// response timeout and TLS verification following VERIFY_SSL_CERT. Non-2xx
// answers are mapped by mapHTTPError to the sentinel errors of errors.go.
package adapter

import (
	"context"
	"crypto/rsa"

	"github.com/MKhiriev/go-ligand/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// KeyProvider supplies the public key access tokens are verified with.
type KeyProvider interface {
	// PublicKey returns the RSA signing key of the token issuer.
	PublicKey(ctx context.Context) (*rsa.PublicKey, error)
}

// ClientGenerator builds client SDKs from an OpenAPI document.
type ClientGenerator interface {
	// Generate asks the generator to build a client for language and returns
	// the download code and link.
	Generate(ctx context.Context, language string, req models.ClientGenerationRequest) (models.ClientDownload, error)
}
