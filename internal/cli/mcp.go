package cli

import (
	"github.com/spf13/cobra"

	"github.com/machakos/malaria/pkg/mcp"
	"github.com/machakos/malaria/pkg/tracing"
)

type MCPArgs struct {
	*RootArgs

	Address string
}

func NewMCPCmd(rootArgs *RootArgs) *cobra.Command {
	ma := &MCPArgs{RootArgs: rootArgs}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the MCP tools over stdio or HTTP",
		Long: `Serve the MCP tools list_symptoms, extract_symptoms and diagnose.

Without an address the server speaks over stdio, so it can be launched
directly by an MCP client.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := ma.newApp()
			if err != nil {
				return err
			}

			addr := ma.Address
			if addr == "" {
				addr = a.cfg.MCP.Address
			}

			srv := mcp.NewServer(addr, a.engine, a.extractor,
				mcp.WithTracer(tracing.Tracer("mcp")),
			)

			return srv.Serve(cmd.Context()) //nolint:wrapcheck // Already descriptive.
		},
	}

	cmd.Flags().StringVar(&ma.Address, "addr", "", "Serve streamable HTTP on this address instead of stdio")

	bindEnvVars(cmd)

	return cmd
}
