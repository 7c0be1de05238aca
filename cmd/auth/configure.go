package auth

import (
	"errors"
	"fmt"

	authclient "github.com/BerryBytes/ccactl/internal/auth"
	promptutils "github.com/BerryBytes/ccactl/utils/prompt"

	"github.com/spf13/cobra"
)

func NewConfigureCmd(service authclient.Service) *cobra.Command {
	var opts authclient.ConfigureOptions

	configureCmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure ccactl with your AWS SSO details",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := service.Configure(opts)
			if errors.Is(err, promptutils.ErrInterrupted) {
				return nil
			} else if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Println("\nConfiguration saved")
			cmd.Println("\nConfiguration:")
			cmd.Printf("  SSO Start URL: %s\n", cfg.SSOStartURL)
			cmd.Printf("  SSO Region: %s\n", cfg.SSORegion)
			cmd.Printf("  Account ID: %s\n", cfg.AccountID)
			cmd.Printf("  Role Name: %s\n", cfg.RoleName)
			cmd.Println("\nNext step: Run 'ccactl login' to authenticate")
			return nil
		},
	}

	configureCmd.Flags().StringVar(&opts.SSOStartURL, "sso-start-url", "", "SSO start URL")
	configureCmd.Flags().StringVar(&opts.SSORegion, "sso-region", "", "SSO region (default: us-east-1)")
	configureCmd.Flags().StringVar(&opts.AccountID, "account-id", "", "AWS account ID")
	configureCmd.Flags().StringVar(&opts.RoleName, "role-name", "", "IAM role name (default: CCA-CLI-Access)")

	return configureCmd
}
