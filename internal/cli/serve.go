package cli

import (
	"github.com/spf13/cobra"

	"github.com/drawkit/drawkit/internal/api"
)

// newServeCmd creates the serve command. It runs the HTTP API until the
// command context is cancelled (Ctrl-C or SIGTERM), then shuts down
// gracefully.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the drawkit HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			srv := api.NewServer(logger)
			printInfo("Listening on %s", StyleLink.Render(addr))
			printNextStep("Try", "curl -X POST --data-binary @doc.drw localhost"+addr+"/v1/validate")
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8133", "listen address")

	return cmd
}
