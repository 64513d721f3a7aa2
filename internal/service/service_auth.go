package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-ligand/internal/adapter"
	"github.com/MKhiriev/go-ligand/internal/config"
	"github.com/MKhiriev/go-ligand/internal/logger"
	"github.com/MKhiriev/go-ligand/internal/utils"
	"github.com/MKhiriev/go-ligand/models"
)

var (
	hmacAlgorithms = []string{"HS256", "HS384", "HS512"}
	rsaAlgorithms  = []string{"RS256", "RS384", "RS512", "PS256", "PS384", "PS512"}
)

// authService is the concrete implementation of AuthService.
//
// It verifies tokens either with an HMAC secret (JWT_SECRET_KEY, used by
// the testing environment) or with the RSA key published by the OIDC
// issuer. All state is read-only after construction.
type authService struct {
	// method is the only signing algorithm accepted while parsing.
	method jwt.SigningMethod

	verifyKey any

	// signKey is nil unless tokens may be issued locally.
	signKey any

	tokenDuration time.Duration
	audience      string

	logger *logger.Logger
}

// NewAuthService constructs the token verifier described by settings.
//
// With JWT_SECRET_KEY set, HS256 (or the HS* JWT_ALGORITHM) tokens are signed
// and verified with the secret and keyProvider is not used. Otherwise the
// RSA key is discovered once through keyProvider and tokens must be signed
// with JWT_ALGORITHM. An empty OIDC_ISSUER_URL returns ErrOIDCIssuerNotSet.
func NewAuthService(ctx context.Context, settings *config.Settings, keyProvider adapter.KeyProvider, logger *logger.Logger) (AuthService, error) {
	s := &authService{
		tokenDuration: settings.JWTAccessTokenExpires,
		audience:      settings.JWTDecodeAudience,
		logger:        logger,
	}

	if settings.JWTSecretKey != "" {
		alg := settings.JWTAlgorithm
		if !slices.Contains(hmacAlgorithms, alg) {
			alg = jwt.SigningMethodHS256.Alg()
		}
		s.method = jwt.GetSigningMethod(alg)
		s.verifyKey = []byte(settings.JWTSecretKey)
		s.signKey = s.verifyKey

		logger.Info().Str("alg", alg).Msg("auth service uses a shared secret")
		return s, nil
	}

	if settings.OIDCIssuerURL == "" {
		return nil, ErrOIDCIssuerNotSet
	}
	if !slices.Contains(rsaAlgorithms, settings.JWTAlgorithm) {
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedAlgorithm, settings.JWTAlgorithm)
	}

	key, err := keyProvider.PublicKey(ctx)
	if err != nil {
		return nil, err
	}

	s.method = jwt.GetSigningMethod(settings.JWTAlgorithm)
	s.verifyKey = key

	logger.Info().Str("alg", settings.JWTAlgorithm).Str("issuer", settings.OIDCIssuerURL).Msg("auth service uses the OIDC public key")
	return s, nil
}

// ParseToken implements [AuthService].
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return models.User{}, ErrTokenMissing
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{a.method.Alg()})}
	if a.audience != "" {
		opts = append(opts, jwt.WithAudience(a.audience))
	}

	claims, err := utils.ValidateAndParseJWTToken(tokenString, a.verifyKey, opts...)
	if errors.Is(err, jwt.ErrTokenExpired) {
		log.Debug().Err(err).Msg("token is expired")
		return models.User{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
	}
	if err != nil {
		log.Debug().Err(err).Msg("token is invalid")
		return models.User{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	return claims.User(), nil
}

// CreateToken implements [AuthService].
func (a *authService) CreateToken(ctx context.Context, user models.User) (string, error) {
	if a.signKey == nil {
		return "", ErrSecretKeyNotSet
	}

	now := time.Now()
	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  user.ID,
			IssuedAt: jwt.NewNumericDate(now),
		},
		RealmAccess: models.RealmAccess{Roles: user.Roles},
	}
	if a.tokenDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(a.tokenDuration))
	}
	if a.audience != "" {
		claims.Audience = jwt.ClaimStrings{a.audience}
	}

	token, err := utils.GenerateJWTToken(claims, a.method, a.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("sub", user.ID).Msg("error creating token")
		return "", fmt.Errorf("error creating token: %w", err)
	}

	return token, nil
}
