package auth

import (
	"fmt"
	"io"
	"time"

	authclient "github.com/BerryBytes/ccactl/internal/auth"

	"github.com/spf13/cobra"
)

func NewStatusCmd(service authclient.Service, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication status and credential expiration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cmd.SetOut(out)

			status, err := service.Status()
			if err != nil {
				return fmt.Errorf("failed to read credential cache: %w", err)
			}

			if status.Record == nil {
				cmd.Println("Not logged in")
				cmd.Println("Run 'ccactl login' to authenticate")
				return nil
			}

			record := status.Record
			expiration := record.Credentials.ExpiresAt()

			cmd.Println("\nAuthentication Status:")
			if status.Valid {
				cmd.Println("  Status: Authenticated")
			} else {
				cmd.Println("  Status: Expired")
			}
			cmd.Printf("  SSO Start URL: %s\n", record.SSOStartURL)
			cmd.Printf("  Account ID: %s\n", record.AccountID)
			cmd.Printf("  Role Name: %s\n", record.RoleName)
			cmd.Printf("  Cached: %s\n", record.CachedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
			cmd.Printf("  Expires: %s\n", expiration.Format("2006-01-02 15:04:05 UTC"))

			if status.Valid {
				remaining := time.Until(expiration).Round(time.Minute)
				hours := int(remaining.Hours())
				minutes := int(remaining.Minutes()) % 60
				cmd.Printf("  Time Remaining: %dh %dm\n", hours, minutes)
			}
			return nil
		},
	}
}
