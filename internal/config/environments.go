// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"slices"
	"strings"
	"time"
)

// Environment names accepted by [Build].
const (
	EnvProd    = "prod"
	EnvStage   = "stage"
	EnvLocal   = "local"
	EnvTesting = "testing"
)

const (
	localServiceURL    = "http://localhost:5000"
	localAllowedRoles  = "user,admin"
	inMemorySQLite     = "sqlite://:memory:"
	localOpenAPIGenURL = "http://api.openapi-generator.tech"
	swaggerUICDN       = "https://cdn.jsdelivr.net/npm/swagger-ui-dist/"
)

// layer produces one partial Settings from the environment snapshot.
type layer func(e environ) Settings

// Environment is a named, ordered set of override layers applied over the
// base defaults.
type Environment struct {
	Name        string
	TitlePrefix string
	layers      []layer
}

var environments = map[string]Environment{
	EnvProd: {
		Name:   EnvProd,
		layers: []layer{prodLayer},
	},
	EnvStage: {
		Name:        EnvStage,
		TitlePrefix: "DEV ",
		layers:      []layer{prodLayer, stageLayer},
	},
	EnvLocal: {
		Name:        EnvLocal,
		TitlePrefix: "DEV FLASK LOCAL ",
		layers:      []layer{prodLayer, stageLayer, localLayer},
	},
	EnvTesting: {
		Name:        EnvTesting,
		TitlePrefix: "TESTING ",
		layers:      []layer{testingLayer},
	},
}

// Environments returns the registered environment names in sorted order.
func Environments() []string {
	names := make([]string, 0, len(environments))
	for name := range environments {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func baseLayer(e environ) Settings {
	return Settings{
		ServicePublicURL:  e.ServicePublicURL,
		ServicePrivateURL: e.ServicePrivateURL,
		AllowedRoles:      e.AllowedRoles,

		DatabaseURI:    e.DatabaseURI,
		DBAutoUpgrade:  boolPtr(false),
		DBMigrationDir: "migrations",

		OIDCIssuerURL: e.OIDCIssuerURL,
		OIDCRealm:     e.OIDCRealm,
		VerifySSLCert: boolPtr(true),

		JWTHeaderName: "Authorization",
		JWTHeaderType: "Bearer",
		JWTAlgorithm:  "RS256",

		OpenAPIGenServerURL:  e.OpenAPIGenServerURL,
		OpenAPIVersion:       e.OpenAPIVersion,
		OpenAPIURLPrefix:     "/",
		OpenAPIJSONPath:      "/openapi/api-spec.json",
		OpenAPISwaggerUIPath: e.OpenAPISwaggerUIPath,
		OpenAPISwaggerUIURL:  swaggerUICDN,
		APISpecOptions:       publicServerOptions(e.ServicePublicURL),

		CORSAllowedOrigins: []string{"*"},
		CORSExposeHeaders:  []string{"X-Pagination", "ETag"},

		HTTPAddress: e.HTTPAddress,
		LogLevel:    e.LogLevel,
	}
}

func prodLayer(e environ) Settings {
	return Settings{
		JWTAlgorithm:      "RS256",
		JWTDecodeAudience: e.JWTDecodeAudience,
	}
}

func stageLayer(environ) Settings {
	return Settings{
		VerifySSLCert: boolPtr(false),
	}
}

func localLayer(e environ) Settings {
	publicURL := fallback(e.ServicePublicURL, localServiceURL)

	return Settings{
		ServicePublicURL:    publicURL,
		ServicePrivateURL:   fallback(e.ServicePrivateURL, localServiceURL),
		AllowedRoles:        rolesOrDefault(e.AllowedRoles),
		DatabaseURI:         fallback(e.DatabaseURI, inMemorySQLite),
		OpenAPIGenServerURL: fallback(e.OpenAPIGenServerURL, localOpenAPIGenURL),
		APISpecOptions:      publicServerOptions(publicURL),
	}
}

func testingLayer(e environ) Settings {
	const publicURL = "http://public.url"

	return Settings{
		ServicePublicURL:      publicURL,
		ServicePrivateURL:     "http://private.url",
		AllowedRoles:          rolesOrDefault(e.AllowedRoles),
		DatabaseURI:           inMemorySQLite,
		OIDCIssuerURL:         "TESTING",
		OIDCRealm:             "TESTING",
		VerifySSLCert:         boolPtr(false),
		JWTAlgorithm:          "HS256",
		JWTSecretKey:          "super-duper-secret",
		JWTAccessTokenExpires: 300 * time.Second,
		OpenAPIGenServerURL:   "http://openapi.fake.address",
		APISpecOptions:        publicServerOptions(publicURL),
	}
}

func publicServerOptions(publicURL string) APISpecOptions {
	return APISpecOptions{
		Servers: []ServerSpec{{URL: publicURL, Description: "Public URL"}},
	}
}

func rolesOrDefault(roles []string) []string {
	if len(roles) > 0 {
		return roles
	}

	return splitRoles(strings.Split(localAllowedRoles, ","))
}

func fallback(value, def string) string {
	if value != "" {
		return value
	}

	return def
}
