package auth

import (
	"fmt"

	authclient "github.com/BerryBytes/ccactl/internal/auth"

	"github.com/spf13/cobra"
)

func NewLoginCmd(service authclient.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authenticate and obtain AWS credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if _, err := service.Login(cmd.Context()); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			cmd.Println("Login successful!")
			cmd.Println("\nYou can now use commands that require AWS access")
			return nil
		},
	}
}
