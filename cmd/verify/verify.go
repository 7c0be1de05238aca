package verify

import (
	"errors"
	"fmt"

	authclient "github.com/BerryBytes/ccactl/internal/auth"
	"github.com/BerryBytes/ccactl/internal/cache"
	verifyclient "github.com/BerryBytes/ccactl/internal/verify"

	"github.com/spf13/cobra"
)

func NewVerifyCmd(service authclient.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Test cached AWS credentials against live AWS APIs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			record, err := service.CurrentCredentials()
			if errors.Is(err, cache.ErrNotAuthenticated) {
				cmd.Println("Not logged in or credentials expired")
				cmd.Println("Run 'ccactl login' first")
				return err
			} else if err != nil {
				return fmt.Errorf("failed to read credential cache: %w", err)
			}

			cmd.Println("Testing Cloud CLI Access credentials...")
			cmd.Println("")

			verifier := verifyclient.NewVerifier(cmd.OutOrStdout())
			return verifier.Run(cmd.Context(), record)
		},
	}
}
