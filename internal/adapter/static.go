package adapter

import (
	"context"
	"crypto/rsa"
)

type staticKeyProvider struct {
	key *rsa.PublicKey
}

// NewStaticKeyProvider returns a [KeyProvider] that always yields key. It
// lets an application verify tokens without reaching the OIDC issuer.
func NewStaticKeyProvider(key *rsa.PublicKey) KeyProvider {
	return staticKeyProvider{key: key}
}

// PublicKey implements [KeyProvider].
func (p staticKeyProvider) PublicKey(context.Context) (*rsa.PublicKey, error) {
	if p.key == nil {
		return nil, ErrPublicKeyRetrieval
	}

	return p.key, nil
}
