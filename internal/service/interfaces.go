package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-ligand/models"
)

// AuthService verifies and, in testing setups, issues access tokens.
type AuthService interface {
	// ParseToken verifies tokenString and returns the identity it carries.
	// Failures match ErrTokenMissing, ErrTokenInvalid or ErrTokenExpired.
	ParseToken(ctx context.Context, tokenString string) (models.User, error)

	// CreateToken signs a token for user. Only available with a
	// JWT_SECRET_KEY.
	CreateToken(ctx context.Context, user models.User) (string, error)
}

// OpenAPIClientService produces download links of generated client SDKs for
// the running service.
type OpenAPIClientService interface {
	TypescriptAxiosLink(ctx context.Context, usePrivateURL bool) (models.ClientDownload, error)
	PythonLink(ctx context.Context, usePrivateURL bool) (models.ClientDownload, error)
}

// SpecProvider returns the current OpenAPI document of the service.
type SpecProvider interface {
	SpecJSON() ([]byte, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
