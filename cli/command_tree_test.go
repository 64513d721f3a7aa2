package cli_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ligand"
	"github.com/MKhiriev/go-ligand/cli"
	"github.com/MKhiriev/go-ligand/models"
)

// The command tree is mounted from outside the module the same way.
func TestNewRootCommand_Tree(t *testing.T) {
	factory := func(ctx context.Context) (*ligand.App, error) {
		return ligand.CreateApp(ctx, ligand.EnvTesting, "Pets", "1.0.0", "pet-store", nil)
	}
	root := cli.NewRootCommand("pets", "Pet service", models.NewAppBuildInfo("v1", "today", "abc"), factory)

	tests := []struct {
		path      []string
		wantFlags []string
	}{
		{path: []string{"serve"}},
		{path: []string{"version"}},
		{path: []string{"db", "upgrade"}},
		{path: []string{"genclient", "typescript"}, wantFlags: []string{"private", "public"}},
		{path: []string{"genclient", "python"}, wantFlags: []string{"private", "public"}},
	}

	for _, tt := range tests {
		t.Run(tt.path[len(tt.path)-1], func(t *testing.T) {
			cmd, rest, err := root.Find(tt.path)
			require.NoError(t, err)
			assert.Empty(t, rest)
			assert.Equal(t, tt.path[len(tt.path)-1], cmd.Name())

			for _, flag := range tt.wantFlags {
				assert.NotNil(t, cmd.Flags().Lookup(flag), "flag --%s", flag)
			}
		})
	}
}
