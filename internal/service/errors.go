package service

import "errors"

// Token verification errors. The role middleware turns each into a 401 with
// its own message.
var (
	ErrTokenMissing = errors.New("missing authorization header")
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
)

var (
	// ErrOIDCIssuerNotSet is returned when token verification needs the OIDC
	// issuer but OIDC_ISSUER_URL is empty.
	ErrOIDCIssuerNotSet = errors.New("OIDC_ISSUER_URL is not set")

	// ErrUnsupportedAlgorithm is returned for JWT_ALGORITHM values that do
	// not match the configured key type.
	ErrUnsupportedAlgorithm = errors.New("unsupported JWT algorithm")

	// ErrSecretKeyNotSet is returned by CreateToken when no JWT_SECRET_KEY is
	// configured. Tokens are then issued by the OIDC provider only.
	ErrSecretKeyNotSet = errors.New("token creation requires JWT_SECRET_KEY")

	// ErrClientGeneration is returned when the OpenAPI generator could not
	// build a client.
	ErrClientGeneration = errors.New("openapi client generation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
