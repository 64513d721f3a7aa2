package adapter

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/lestrrat-go/jwx/v2/jwk"

	"github.com/MKhiriev/go-ligand/internal/config"
	"github.com/MKhiriev/go-ligand/internal/logger"
	"github.com/MKhiriev/go-ligand/internal/utils"
)

type openIDConfiguration struct {
	Issuer  string `json:"issuer"`
	JWKSURI string `json:"jwks_uri"`
}

type oidcKeyProvider struct {
	client *utils.HTTPClient

	issuerURL string
	realm     string

	logger *logger.Logger
}

// NewOIDCKeyProvider returns a [KeyProvider] reading the first key of the
// JWKS published by the OIDC_ISSUER_URL issuer for OIDC_REALM.
func NewOIDCKeyProvider(settings *config.Settings, log *logger.Logger) KeyProvider {
	return &oidcKeyProvider{
		client:    newHTTPClient(settings),
		issuerURL: settings.OIDCIssuerURL,
		realm:     settings.OIDCRealm,
		logger:    log,
	}
}

// PublicKey implements [KeyProvider]. It reads jwks_uri from
// <issuer>/realms/<realm>/.well-known/openid-configuration, fetches the key
// set and exports its first key. Every failure is wrapped in
// [ErrPublicKeyRetrieval].
func (p *oidcKeyProvider) PublicKey(ctx context.Context) (*rsa.PublicKey, error) {
	key, err := p.publicKey(ctx)
	if err != nil {
		p.logger.Err(err).Str("issuer", p.issuerURL).Msg("error retrieving OIDC public key")
		return nil, fmt.Errorf("%w from the '%s' OIDC issuer: %w", ErrPublicKeyRetrieval, p.issuerURL, err)
	}

	p.logger.Info().Str("issuer", p.issuerURL).Msg("OIDC public key retrieved")
	return key, nil
}

func (p *oidcKeyProvider) publicKey(ctx context.Context) (*rsa.PublicKey, error) {
	wellKnown, err := url.JoinPath(p.issuerURL, "realms", p.realm, ".well-known", "openid-configuration")
	if err != nil {
		return nil, fmt.Errorf("invalid issuer url: %w", err)
	}

	resp, err := p.client.R().SetContext(ctx).Get(wellKnown)
	if err != nil {
		return nil, fmt.Errorf("openid configuration request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("openid configuration request: %w", err)
	}

	var oidcCfg openIDConfiguration
	if err = json.Unmarshal(resp.Body(), &oidcCfg); err != nil {
		return nil, fmt.Errorf("decoding openid configuration: %w", err)
	}
	if oidcCfg.JWKSURI == "" {
		return nil, errors.New("openid configuration has no jwks_uri")
	}

	resp, err = p.client.R().SetContext(ctx).Get(oidcCfg.JWKSURI)
	if err != nil {
		return nil, fmt.Errorf("jwks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("jwks request: %w", err)
	}

	set, err := jwk.Parse(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("parsing jwks: %w", err)
	}

	key, ok := set.Key(0)
	if !ok {
		return nil, errors.New("jwks is empty")
	}

	var pub rsa.PublicKey
	if err = key.Raw(&pub); err != nil {
		return nil, fmt.Errorf("jwks key is not an RSA public key: %w", err)
	}

	return &pub, nil
}
