package adapter

import "errors"

var (
	// ErrPublicKeyRetrieval is returned by the OIDC key provider for any
	// failure while discovering the signing key.
	ErrPublicKeyRetrieval = errors.New("failed to retrieve public key")

	// ErrGeneratorRequest is returned when the generator service cannot be
	// reached or its answer cannot be used.
	ErrGeneratorRequest = errors.New("openapi generator request failed")
)

// Upstream status errors produced by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status code")
)
