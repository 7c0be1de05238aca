package root

import (
	"fmt"
	"os"

	cmdAuth "github.com/BerryBytes/ccactl/cmd/auth"
	cmdServe "github.com/BerryBytes/ccactl/cmd/serve"
	cmdVerify "github.com/BerryBytes/ccactl/cmd/verify"
	authclient "github.com/BerryBytes/ccactl/internal/auth"

	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "ccactl",
	Short: "Cloud CLI Access",
	Long:  `Authenticate with AWS IAM Identity Center to obtain temporary credentials, and run the registration-approval service.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("No subcommand provided. Showing help...")
		return cmd.Help()
	},
}

func init() {
	service, err := authclient.DefaultService()
	if err != nil {
		fmt.Printf("Error initializing ccactl: %v\n", err)
		return
	}

	RootCmd.AddCommand(cmdAuth.NewConfigureCmd(service))
	RootCmd.AddCommand(cmdAuth.NewLoginCmd(service))
	RootCmd.AddCommand(cmdAuth.NewLogoutCmd(service))
	RootCmd.AddCommand(cmdAuth.NewStatusCmd(service, os.Stdout))
	RootCmd.AddCommand(cmdVerify.NewVerifyCmd(service))
	RootCmd.AddCommand(cmdServe.NewServeCmd())
}
