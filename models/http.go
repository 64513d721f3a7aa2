package models

import "github.com/google/uuid"

// ClientDownload is the answer of the OpenAPI generator service: a one-time
// code and the link to download the generated client archive.
type ClientDownload struct {
	Code uuid.UUID `json:"code"`
	Link string    `json:"link"`
}

// ClientDownloadQuery holds the query arguments of the client download
// endpoints.
type ClientDownloadQuery struct {
	// UsePrivateURL selects the private service URL as the server of the
	// generated client instead of the public one.
	UsePrivateURL bool `json:"use_private_url" mapstructure:"use_private_url"`
}

// ClientGenerationRequest is the body posted to the generator service.
type ClientGenerationRequest struct {
	// Spec is the OpenAPI document of the service with its server patched.
	Spec map[string]any `json:"spec"`

	// Options are the generator options of the target language.
	Options map[string]any `json:"options"`
}
