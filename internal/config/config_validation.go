// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that every required setting is populated once all layers
// are merged. The first missing one is reported.
func (s *Settings) validate() error {
	required := []struct {
		key string
		set bool
	}{
		{"SERVICE_PUBLIC_URL", s.ServicePublicURL != ""},
		{"SERVICE_PRIVATE_URL", s.ServicePrivateURL != ""},
		{"ALLOWED_ROLES", len(s.AllowedRoles) > 0},
		{"OIDC_ISSUER_URL", s.OIDCIssuerURL != ""},
		{"OIDC_REALM", s.OIDCRealm != ""},
		{"DATABASE_URI", s.DatabaseURI != ""},
		{"OPENAPI_GEN_SERVER_URL", s.OpenAPIGenServerURL != ""},
	}

	for _, r := range required {
		if !r.set {
			return fmt.Errorf("%w: '%s'", ErrRequiredSettingNotSet, r.key)
		}
	}

	return nil
}
