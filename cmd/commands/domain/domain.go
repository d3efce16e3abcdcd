package domain

import (
	"nathanbeddoewebdev/registrar/cmd/commands/providerflag"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "domain" command: availability checks,
// nameservers and URL forwarding.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domain",
		Short: "Manage registrar-level domain settings",
		Long: `Check availability, manage nameservers, and manage URL forwards.

Not every registrar supports every operation; unsupported ones fail with
an "operation not supported" error.`,
		PersistentPreRunE: providerflag.Resolve,
	}

	cmd.AddCommand(CheckCommand())
	cmd.AddCommand(NameserversCommand())
	cmd.AddCommand(ForwardsCommand())

	providerflag.Add(cmd)

	return cmd
}
