package ligand

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-ligand/internal/adapter"
	"github.com/MKhiriev/go-ligand/internal/api"
	"github.com/MKhiriev/go-ligand/internal/config"
	handlerhttp "github.com/MKhiriev/go-ligand/internal/handler/http"
	"github.com/MKhiriev/go-ligand/internal/logger"
	"github.com/MKhiriev/go-ligand/internal/server"
	"github.com/MKhiriev/go-ligand/internal/service"
	"github.com/MKhiriev/go-ligand/internal/store"
	"github.com/MKhiriev/go-ligand/models"
)

// Client languages accepted by [App.GenerateClient].
const (
	LanguageTypescriptAxios = service.LanguageTypescriptAxios
	LanguagePython          = service.LanguagePython
)

// ErrUnsupportedLanguage is returned by [App.GenerateClient] for a language
// without a generator.
var ErrUnsupportedLanguage = errors.New("unsupported client language")

// App is a configured service. Its fields are read-only handles; routes are
// added through [App.RegisterBlueprint].
type App struct {
	Settings *config.Settings
	Router   chi.Router
	API      *api.API
	DB       *store.DB
	Auth     service.AuthService
	Logger   *logger.Logger

	handler  *handlerhttp.Handler
	services *service.Services
}

// CreateApp builds the application running in env.
//
// It merges the settings of env with overrides, opens DATABASE_URI (running
// the migrations of DB_MIGRATION_DIR when DB_AUTO_UPGRADE is set), discovers
// the token verification key, creates the OpenAPI document and mounts the
// built-in routes: the document, its Swagger UI, /metrics, /version and the
// /openapi client downloads.
func CreateApp(ctx context.Context, env, apiTitle, apiVersion, clientName string, overrides map[string]any, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	settings, err := config.Build(env, apiTitle, apiVersion, clientName, overrides)
	if err != nil {
		return nil, fmt.Errorf("error building settings: %w", err)
	}

	log := o.logger
	if log == nil {
		log = logger.NewLogger(clientName)
	}
	log = log.WithLevel(settings.LogLevel)

	db, err := store.Open(ctx, settings.DatabaseURI, log)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	app, err := newApp(ctx, settings, db, o, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	log.Info().Str("env", env).Str("title", settings.APITitle).Str("version", settings.APIVersion).Msg("app created")
	return app, nil
}

func newApp(ctx context.Context, settings *config.Settings, db *store.DB, o options, log *logger.Logger) (*App, error) {
	if settings.AutoUpgrade() {
		if err := db.Migrate(ctx, settings.DBMigrationDir); err != nil {
			return nil, fmt.Errorf("error upgrading database: %w", err)
		}
	}

	h := handlerhttp.NewHandler(settings, log)
	router := h.NewRouter()
	a := api.NewAPI(router, api.Info{
		Title:          settings.APITitle,
		Version:        settings.APIVersion,
		OpenAPIVersion: settings.OpenAPIVersion,
		Servers:        settings.APISpecOptions.Servers,
	})

	adapters := service.Adapters{
		KeyProvider:     o.keyProvider,
		ClientGenerator: o.clientGenerator,
	}
	if adapters.KeyProvider == nil {
		adapters.KeyProvider = adapter.NewOIDCKeyProvider(settings, log)
	}
	if adapters.ClientGenerator == nil {
		adapters.ClientGenerator = adapter.NewOpenAPIGenerator(settings, log)
	}

	services, err := service.NewServices(ctx, settings, adapters, a, log)
	if err != nil {
		return nil, err
	}

	if err = h.Init(a, services); err != nil {
		return nil, fmt.Errorf("error mounting routes: %w", err)
	}

	return &App{
		Settings: settings,
		Router:   router,
		API:      a,
		DB:       db,
		Auth:     services.AuthService,
		Logger:   log,
		handler:  h,
		services: services,
	}, nil
}

// RegisterBlueprint mounts and documents every route of bp. Blueprint names
// are unique per app.
func (app *App) RegisterBlueprint(bp *Blueprint) error {
	return app.API.RegisterBlueprint(bp)
}

// RoleRequired restricts a route to users holding role and documents the
// route as protected by the bearer token.
func (app *App) RoleRequired(role string) RouteOption {
	return api.Options(
		api.WithMiddleware(app.handler.RoleRequired(role)),
		api.WithSecurity(api.BearerAuth),
		api.WithResponse(http.StatusUnauthorized, HTTPError{}, "Missing, invalid or expired access token"),
		api.WithResponse(http.StatusForbidden, HTTPError{}, fmt.Sprintf("The user lacks the '%s' role", role)),
	)
}

// ServeHTTP implements [http.Handler].
func (app *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	app.Router.ServeHTTP(w, r)
}

// Run serves the app on HTTP_ADDRESS until ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	srv, err := server.NewServer(app, app.Settings.HTTPAddress, app.Logger)
	if err != nil {
		return err
	}

	return srv.Run(ctx)
}

// UpgradeDB applies the pending migrations of DB_MIGRATION_DIR.
func (app *App) UpgradeDB(ctx context.Context) error {
	return app.DB.Migrate(ctx, app.Settings.DBMigrationDir)
}

// GenerateClient asks the OpenAPI generator for a client SDK of the app in
// language, pointing it at the private service URL when usePrivateURL is
// set.
func (app *App) GenerateClient(ctx context.Context, language string, usePrivateURL bool) (models.ClientDownload, error) {
	switch language {
	case LanguageTypescriptAxios:
		return app.services.OpenAPIClientService.TypescriptAxiosLink(ctx, usePrivateURL)
	case LanguagePython:
		return app.services.OpenAPIClientService.PythonLink(ctx, usePrivateURL)
	default:
		return models.ClientDownload{}, fmt.Errorf("%w: '%s'", ErrUnsupportedLanguage, language)
	}
}

// Close releases the database connection.
func (app *App) Close() error {
	return app.DB.Close()
}
