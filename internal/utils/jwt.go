package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ligand/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
	// header is not "<scheme> <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrEmptySubject is returned when a verified token carries no "sub".
	ErrEmptySubject = errors.New("empty subject error")
)

// GenerateJWTToken signs claims with the given method and key and returns
// the compact token string.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(claims, jwt.SigningMethodHS256, []byte("secret"))
func GenerateJWTToken(claims *models.Claims, method jwt.SigningMethod, signKey any) (string, error) {
	if claims == nil || claims.Subject == "" {
		return "", ErrEmptySubject
	}

	tokenString, err := jwt.NewWithClaims(method, claims).SignedString(signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes the signature check with verifyKey, the expiration
// claim and any extra parser options such as the allowed algorithms or the
// expected audience. The wrapped jwt errors are kept, so callers can match
// [jwt.ErrTokenExpired].
//
// Example usage:
//
//	claims, err := utils.ValidateAndParseJWTToken(raw, []byte("secret"),
//	    jwt.WithValidMethods([]string{"HS256"}))
func ValidateAndParseJWTToken(tokenString string, verifyKey any, opts ...jwt.ParserOption) (*models.Claims, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return verifyKey, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return nil, ErrEmptySubject
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an authorization header value of
// the form "<scheme> <token>". The scheme is compared case-insensitively.
func ParseBearerToken(authorizationHeader, scheme string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], scheme) {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
