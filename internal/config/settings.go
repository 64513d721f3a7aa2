// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"slices"
	"time"
)

// Protected setting names. They are always populated from the arguments of
// [Build] and can never be supplied as overrides.
const (
	KeyAPITitle          = "API_TITLE"
	KeyAPIVersion        = "API_VERSION"
	KeyOpenAPIClientName = "OPENAPI_CLIENT_NAME"
)

var protectedKeys = []string{KeyAPITitle, KeyAPIVersion, KeyOpenAPIClientName}

// ServerSpec is a single entry of the OpenAPI "servers" list.
type ServerSpec struct {
	URL         string `mapstructure:"url" json:"url"`
	Description string `mapstructure:"description" json:"description,omitempty"`
}

// APISpecOptions holds document-level options copied into the generated
// OpenAPI document.
type APISpecOptions struct {
	Servers []ServerSpec `mapstructure:"servers" json:"servers"`
}

// Settings is the flat configuration record of a ligand application.
//
// Every field is addressed by its upper-case setting name (the mapstructure
// tag), which is also the name used for caller overrides. Fields left empty
// are treated as unset. Overrides with names that match no field are kept
// in Extra.
//
// A Settings value is built once per application and must not be mutated
// afterwards.
type Settings struct {
	// APITitle is the OpenAPI title, prefixed per environment.
	APITitle string `mapstructure:"API_TITLE"`
	// APIVersion is the service version reported in the OpenAPI document and
	// passed to generated clients as their package version.
	APIVersion string `mapstructure:"API_VERSION"`
	// OpenAPIClientName is the package name of generated OpenAPI clients.
	OpenAPIClientName string `mapstructure:"OPENAPI_CLIENT_NAME"`

	ServicePublicURL  string `mapstructure:"SERVICE_PUBLIC_URL"`
	ServicePrivateURL string `mapstructure:"SERVICE_PRIVATE_URL"`

	// AllowedRoles is the allow-list of role names any endpoint may require.
	AllowedRoles []string `mapstructure:"ALLOWED_ROLES"`

	// DatabaseURI selects the driver by scheme: "sqlite://<path>" or
	// "postgres://...".
	DatabaseURI    string `mapstructure:"DATABASE_URI"`
	DBAutoUpgrade  *bool  `mapstructure:"DB_AUTO_UPGRADE"`
	DBMigrationDir string `mapstructure:"DB_MIGRATION_DIR"`

	OIDCIssuerURL string `mapstructure:"OIDC_ISSUER_URL"`
	OIDCRealm     string `mapstructure:"OIDC_REALM"`
	VerifySSLCert *bool  `mapstructure:"VERIFY_SSL_CERT"`

	JWTHeaderName     string `mapstructure:"JWT_HEADER_NAME"`
	JWTHeaderType     string `mapstructure:"JWT_HEADER_TYPE"`
	JWTAlgorithm      string `mapstructure:"JWT_ALGORITHM"`
	JWTDecodeAudience string `mapstructure:"JWT_DECODE_AUDIENCE"`
	// JWTSecretKey switches token verification to HMAC with this key and
	// disables OIDC key discovery.
	JWTSecretKey          string        `mapstructure:"JWT_SECRET_KEY"`
	JWTAccessTokenExpires time.Duration `mapstructure:"JWT_ACCESS_TOKEN_EXPIRES"`

	OpenAPIGenServerURL  string         `mapstructure:"OPENAPI_GEN_SERVER_URL"`
	OpenAPIVersion       string         `mapstructure:"OPENAPI_VERSION"`
	OpenAPIURLPrefix     string         `mapstructure:"OPENAPI_URL_PREFIX"`
	OpenAPIJSONPath      string         `mapstructure:"OPENAPI_JSON_PATH"`
	OpenAPISwaggerUIPath string         `mapstructure:"OPENAPI_SWAGGER_UI_PATH"`
	OpenAPISwaggerUIURL  string         `mapstructure:"OPENAPI_SWAGGER_UI_URL"`
	APISpecOptions       APISpecOptions `mapstructure:"API_SPEC_OPTIONS"`

	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	CORSExposeHeaders  []string `mapstructure:"CORS_EXPOSE_HEADERS"`

	HTTPAddress string `mapstructure:"HTTP_ADDRESS"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Extra holds application-specific settings supplied as overrides.
	Extra map[string]any `mapstructure:"-"`
}

// RoleAllowed reports whether role is part of the ALLOWED_ROLES allow-list.
func (s *Settings) RoleAllowed(role string) bool {
	return slices.Contains(s.AllowedRoles, role)
}

// VerifySSL reports whether outbound TLS certificates must be verified.
// Unset means verify.
func (s *Settings) VerifySSL() bool {
	return s.VerifySSLCert == nil || *s.VerifySSLCert
}

// AutoUpgrade reports whether migrations run while the app is created.
func (s *Settings) AutoUpgrade() bool {
	return s.DBAutoUpgrade != nil && *s.DBAutoUpgrade
}

// Value returns an application-specific setting supplied as an override.
func (s *Settings) Value(key string) (any, bool) {
	v, ok := s.Extra[key]
	return v, ok
}

func boolPtr(b bool) *bool {
	return &b
}
