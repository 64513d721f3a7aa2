// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ligand bootstraps HTTP services: layered configuration, SQL
// persistence with goose migrations, an OpenAPI document with a Swagger UI,
// JWT role-based authorization backed by an OIDC issuer and a proxy to an
// OpenAPI generator producing client SDKs of the service.
//
// A service is created with [CreateApp] and extended with blueprints:
//
//	app, err := ligand.CreateApp(ctx, ligand.EnvProd, "Pets", "1.0.0", "pets-client", nil)
//	if err != nil {
//		return err
//	}
//	defer app.Close()
//
//	bp := ligand.NewBlueprint("pets", "/pets", "Pet operations")
//	bp.Route(http.MethodGet, "/", listPets, app.RoleRequired("user"))
//	if err = app.RegisterBlueprint(bp); err != nil {
//		return err
//	}
//
//	return app.Run(ctx)
package ligand

import (
	"context"

	"github.com/MKhiriev/go-ligand/internal/adapter"
	"github.com/MKhiriev/go-ligand/internal/api"
	"github.com/MKhiriev/go-ligand/internal/config"
	"github.com/MKhiriev/go-ligand/internal/utils"
	"github.com/MKhiriev/go-ligand/models"
)

// Version is the version of the go-ligand library.
const Version = "0.1.0"

// Environment names accepted by [CreateApp].
const (
	EnvProd    = config.EnvProd
	EnvStage   = config.EnvStage
	EnvLocal   = config.EnvLocal
	EnvTesting = config.EnvTesting
)

type (
	// Settings is the merged configuration of an [App].
	Settings = config.Settings
	// ServerSpec is one entry of the OpenAPI "servers" list.
	ServerSpec = config.ServerSpec

	// Blueprint groups routes mounted under a common prefix and documented
	// under one OpenAPI tag.
	Blueprint = api.Blueprint
	// RouteOption documents or decorates a single route.
	RouteOption = api.RouteOption
	// HTTPError is the JSON body of every error response.
	HTTPError = api.HTTPError

	// KeyProvider supplies the RSA key access tokens are verified with.
	KeyProvider = adapter.KeyProvider
	// ClientGenerator builds client SDKs from the OpenAPI document.
	ClientGenerator = adapter.ClientGenerator

	// User is the identity carried by a verified access token.
	User = models.User
	// PaginationParams are the page and page_size query arguments.
	PaginationParams = models.PaginationParams
	// PaginationMetadata is the content of the X-Pagination header.
	PaginationMetadata = models.PaginationMetadata
)

// Configuration errors, matched with errors.Is.
var (
	ErrInvalidEnvironment    = config.ErrInvalidEnvironment
	ErrProtectedSetting      = config.ErrProtectedSetting
	ErrSettingNotUppercase   = config.ErrSettingNotUppercase
	ErrRequiredSettingNotSet = config.ErrRequiredSettingNotSet
)

// Environments returns the names of the registered environments.
func Environments() []string {
	return config.Environments()
}

// CurrentUser returns the user authenticated by [App.RoleRequired] for the
// request carrying ctx.
func CurrentUser(ctx context.Context) (User, bool) {
	return utils.GetUserFromContext(ctx)
}
