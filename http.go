package ligand

import (
	"github.com/MKhiriev/go-ligand/internal/api"
	"github.com/MKhiriev/go-ligand/internal/utils"
)

// Request and response helpers for blueprint handlers.
var (
	// Abort writes the {code, status, message} error body for code.
	Abort = api.Abort
	// AbortError writes the error body for the status err maps to.
	AbortError = api.AbortError
	// NewHTTPError validates code and builds its error body.
	NewHTTPError = api.NewHTTPError

	DecodeJSON  = api.DecodeJSON
	DecodeQuery = api.DecodeQuery

	ParsePagination     = api.ParsePagination
	SetPaginationHeader = api.SetPaginationHeader

	ETag          = api.ETag
	CheckIfMatch  = api.CheckIfMatch
	WriteWithETag = api.WriteWithETag

	WriteJSON = utils.WriteJSON
)

// NewBlueprint returns an empty blueprint mounted under prefix.
func NewBlueprint(name, prefix, description string) *Blueprint {
	return api.NewBlueprint(name, prefix, description)
}

// Route options.
var (
	WithSummary     = api.WithSummary
	WithDescription = api.WithDescription
	WithOperationID = api.WithOperationID
	WithQuery       = api.WithQuery
	WithRequestBody = api.WithRequestBody
	WithResponse    = api.WithResponse
	WithMiddleware  = api.WithMiddleware
	WithSecurity    = api.WithSecurity
	RouteOptions    = api.Options
)

// BearerAuth is the name of the JWT security scheme of the document.
const BearerAuth = api.BearerAuth
