package auth

import (
	"context"
	"fmt"
	"os"

	"nathanbeddoewebdev/registrar/internal/registrar/providers"
	"nathanbeddoewebdev/registrar/internal/registrar/services"
	"nathanbeddoewebdev/registrar/internal/services/auth"
	"nathanbeddoewebdev/registrar/internal/tui"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func VerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <provider>",
		Short: "Check stored credentials against the registrar API",
		Long: `Make a lightweight authenticated call to confirm the stored credentials work.

Example:
  registrar auth verify porkbun`,
		Args: cobra.ExactArgs(1),
		Run:  runVerify,
	}
}

func runVerify(cmd *cobra.Command, args []string) {
	provider, err := providers.Get(args[0], auth.DefaultStore())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}
	svc := services.New(provider)

	var detail string
	verify := func(ctx context.Context) error {
		var err error
		detail, err = svc.Verify(ctx)
		return err
	}

	if term.IsTerminal(int(os.Stderr.Fd())) {
		err = tui.Spin(cmd.ErrOrStderr(), "Verifying credentials...", verify)
	} else {
		err = verify(cmd.Context())
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error verifying %s: %v\n", provider.GetDisplayName(), err)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s credentials OK: %s\n", provider.GetDisplayName(), detail)
}
