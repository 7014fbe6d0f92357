package cli

import (
	"github.com/spf13/cobra"

	"github.com/machakos/malaria/pkg/server"
	"github.com/machakos/malaria/pkg/tracing"
)

type ServeArgs struct {
	*RootArgs

	Address string
}

func NewServeCmd(rootArgs *RootArgs) *cobra.Command {
	sa := &ServeArgs{RootArgs: rootArgs}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := sa.newApp()
			if err != nil {
				return err
			}

			addr := sa.Address
			if addr == "" {
				addr = a.cfg.Server.Address
			}

			srv := server.New(a.engine, a.extractor,
				server.WithTracer(tracing.Tracer("server")),
			)

			return srv.Listen(cmd.Context(), addr) //nolint:wrapcheck // Already descriptive.
		},
	}

	cmd.Flags().StringVar(&sa.Address, "addr", "", "Address to listen on (default from config, \":8080\")")

	bindEnvVars(cmd)

	return cmd
}
