package domain

import (
	"fmt"

	"nathanbeddoewebdev/registrar/cmd/commands/providerflag"

	"github.com/spf13/cobra"
)

// CheckCommand returns the "domain check" subcommand.
func CheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <domain>",
		Short: "Check whether a domain is available to register",
		Long: `Check whether a domain is available to register.

Example:
  registrar domain check example.dev --provider porkbun`,
		Args: cobra.ExactArgs(1),
		Run:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) {
	svc, err := providerflag.Service(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	a, err := svc.CheckAvailability(cmd.Context(), args[0])
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error checking availability: %v\n", err)
		return
	}

	if !a.Available {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is not available\n", a.Domain)
		return
	}

	line := fmt.Sprintf("%s is available", a.Domain)
	if a.Premium {
		line += " (premium)"
	}
	if a.Price != "" {
		line += " for " + a.Price
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}
