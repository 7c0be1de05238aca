package serve

import (
	"fmt"
	"os"

	"github.com/BerryBytes/ccactl/internal/server"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func NewServeCmd() *cobra.Command {
	var addr string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the registration-approval HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := server.LoadConfigFromEnv()
			if err != nil {
				return fmt.Errorf("invalid service configuration: %w", err)
			}
			if addr != "" {
				cfg.ListenAddr = addr
			}

			logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", "approval").Logger()

			srv, err := server.NewFromConfig(cmd.Context(), cfg, logger)
			if err != nil {
				return fmt.Errorf("failed to build approval service: %w", err)
			}

			return srv.ListenAndServe(cmd.Context(), cfg.ListenAddr)
		},
	}

	serveCmd.Flags().StringVar(&addr, "listen", "", "Listen address (overrides LISTEN_ADDR)")

	return serveCmd
}
