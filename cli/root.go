package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ligand"
	"github.com/MKhiriev/go-ligand/models"
)

// AppFactory creates the application a command operates on.
type AppFactory func(ctx context.Context) (*ligand.App, error)

// NewRootCommand returns the command tree of the service name.
func NewRootCommand(name, description string, build models.AppBuildInfo, factory AppFactory) *cobra.Command {
	root := &cobra.Command{
		Use:           name,
		Short:         description,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCommand(factory),
		newGenClientCommand(factory),
		newDBCommand(factory),
		newVersionCommand(build),
	)

	return root
}

// withApp creates the app, runs fn and closes the app.
func withApp(ctx context.Context, factory AppFactory, fn func(*ligand.App) error) error {
	if factory == nil {
		return ErrNoAppFactory
	}

	app, err := factory(ctx)
	if err != nil {
		return fmt.Errorf("error creating app: %w", err)
	}
	defer app.Close()

	return fn(app)
}
