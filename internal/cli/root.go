package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information reported by --version, the
// version command and the MCP handshake. The main package calls it with
// values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the pixelgrid-mcp CLI. Cancelling ctx stops a running server
// or recipe.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Logs are written to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "pixelgrid-mcp",
		Short:        "Pixel-grid transforms as an MCP server and a recipe runner",
		Long:         `pixelgrid-mcp mirrors, copies, composes and edge-detects images treated as grids of RGB pixels. It serves the transforms as MCP tools over stdio, or runs them from TOML recipes.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := withLogger(cmd.Context(), newLogger(logOut, logLevel(verbose)))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(versionString())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newServeCmd())
	root.AddCommand(newApplyCmd())
	root.AddCommand(newOpsCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func versionString() string {
	return fmt.Sprintf("pixelgrid-mcp %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), versionString())
		},
	}
}
