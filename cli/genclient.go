package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ligand"
)

func newGenClientCommand(factory AppFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genclient",
		Short: "Generate an OpenAPI client of the service and print its download link",
	}

	cmd.AddCommand(
		newLanguageCommand(factory, "typescript", ligand.LanguageTypescriptAxios),
		newLanguageCommand(factory, "python", ligand.LanguagePython),
	)

	return cmd
}

func newLanguageCommand(factory AppFactory, use, language string) *cobra.Command {
	var private, public bool

	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Generate a %s client", language),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), factory, func(app *ligand.App) error {
				download, err := app.GenerateClient(cmd.Context(), language, private)
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), download.Link)
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&private, "private", false, "point the client at SERVICE_PRIVATE_URL")
	cmd.Flags().BoolVar(&public, "public", false, "point the client at SERVICE_PUBLIC_URL (default)")
	cmd.MarkFlagsMutuallyExclusive("private", "public")

	return cmd
}
