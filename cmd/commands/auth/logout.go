package auth

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/registrar/internal/platform/providers"
	"nathanbeddoewebdev/registrar/internal/services/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout <provider>",
		Short: "Remove stored credentials for a registrar",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			spec := providers.Lookup(args[0])
			if spec == nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: unknown provider %q\n", args[0])
				return
			}

			store := auth.DefaultStore()
			for _, k := range spec.Keys {
				err := store.DeleteToken(spec.KeychainKey(k))
				if err != nil && !errors.Is(err, auth.ErrTokenNotFound) {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
					return
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed credentials for %s\n", spec.DisplayName)
		},
	}
}
