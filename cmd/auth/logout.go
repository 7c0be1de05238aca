package auth

import (
	"fmt"

	authclient "github.com/BerryBytes/ccactl/internal/auth"

	"github.com/spf13/cobra"
)

func NewLogoutCmd(service authclient.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear cached credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if err := service.Logout(); err != nil {
				return fmt.Errorf("logout failed: %w", err)
			}
			cmd.Println("Logged out successfully")
			return nil
		},
	}
}
