package auth

import (
	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage registrar credentials",
		Long: `Manage registrar credentials.

Credentials are stored in the local keychain. REGISTRAR_<KEY> environment
variables (for example REGISTRAR_PORKBUN_APIKEY) take precedence over
stored values.`,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(LogoutCommand())
	cmd.AddCommand(StatusCommand())
	cmd.AddCommand(VerifyCommand())
	cmd.AddCommand(ImportCommand())

	return cmd
}

