package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/pixelgrid-mcp/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin and stdout",
		Long:  `Serve reads JSON-RPC 2.0 requests from stdin, one per line, and writes responses to stdout until stdin is closed.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			srv := server.New(server.WithLogger(logger), server.WithVersion(version))
			logger.Info("MCP server ready", "version", version)

			errc := make(chan error, 1)
			go func() { errc <- srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout()) }()

			select {
			case err := <-errc:
				if err != nil {
					return err
				}
				logger.Debug("stdin closed, exiting")
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	}
}
