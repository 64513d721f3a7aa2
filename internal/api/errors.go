package api

import "errors"

var (
	// ErrInvalidHTTPStatus is returned by [NewHTTPError] for codes that are
	// not standard HTTP status codes.
	ErrInvalidHTTPStatus = errors.New("invalid HTTP status code")

	// ErrBlueprintRegistered is returned when a blueprint name is registered
	// twice on the same [API].
	ErrBlueprintRegistered = errors.New("blueprint already registered")

	// ErrBuildingSchema is returned when a Go value cannot be described as an
	// OpenAPI schema.
	ErrBuildingSchema = errors.New("error building OpenAPI schema")
)
