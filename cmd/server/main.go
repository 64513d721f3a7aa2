// Command server is an example widget service built on go-ligand.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-ligand"
	"github.com/MKhiriev/go-ligand/cli"
	"github.com/MKhiriev/go-ligand/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	apiTitle   = "Widgets"
	clientName = "widgets-client"
)

type environment struct {
	Name       string `env:"LIGAND_ENV" envDefault:"local"`
	APIVersion string `env:"API_VERSION" envDefault:"0.1.0"`
}

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	root := cli.NewRootCommand("widgets", "Example widget service built on go-ligand", build, newApp)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(ctx context.Context) (*ligand.App, error) {
	e, err := env.ParseAs[environment]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	app, err := ligand.CreateApp(ctx, e.Name, apiTitle, e.APIVersion, clientName, nil)
	if err != nil {
		return nil, err
	}

	if err = registerWidgets(app); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}
