package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ligand"
)

func newDBCommand(factory AppFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database maintenance",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "upgrade",
		Short: "Apply pending migrations of DB_MIGRATION_DIR",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), factory, func(app *ligand.App) error {
				return app.UpgradeDB(cmd.Context())
			})
		},
	})

	return cmd
}
