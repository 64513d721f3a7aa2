// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// environ is the snapshot of process environment variables consumed while
// building [Settings]. Unset variables stay empty; layers decide on fallbacks.
type environ struct {
	ServicePublicURL  string   `env:"SERVICE_PUBLIC_URL"`
	ServicePrivateURL string   `env:"SERVICE_PRIVATE_URL"`
	AllowedRoles      []string `env:"ALLOWED_ROLES" envSeparator:","`

	DatabaseURI string `env:"DATABASE_URI"`

	OIDCIssuerURL     string `env:"OIDC_ISSUER_URL"`
	OIDCRealm         string `env:"OIDC_REALM"`
	JWTDecodeAudience string `env:"JWT_DECODE_AUDIENCE"`

	OpenAPIGenServerURL  string `env:"OPENAPI_GEN_SERVER_URL"`
	OpenAPIVersion       string `env:"OPENAPI_VERSION" envDefault:"3.0.3"`
	OpenAPISwaggerUIPath string `env:"OPENAPI_SWAGGER_UI_PATH" envDefault:"/apidocs"`

	HTTPAddress string `env:"HTTP_ADDRESS" envDefault:":5000"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// JSONFilePath points to an optional JSON file of upper-case overrides.
	JSONFilePath string `env:"LIGAND_CONFIG"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func readEnviron() (environ, error) {
	var e environ
	if err := parseEnv(&e); err != nil {
		return environ{}, err
	}
	e.AllowedRoles = splitRoles(e.AllowedRoles)

	return e, nil
}

// splitRoles trims role names and drops empty entries, so an empty
// ALLOWED_ROLES yields no roles at all.
func splitRoles(roles []string) []string {
	var out []string
	for _, r := range roles {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}

	return out
}
