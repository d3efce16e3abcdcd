package dns

import (
	"nathanbeddoewebdev/registrar/cmd/commands/providerflag"
	"nathanbeddoewebdev/registrar/internal/registrar/services"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "dns" Cobra command with all subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "dns",
		Short:             "Manage DNS records at your registrar",
		Long:              `Create, list, update, and delete DNS records. List domains in your account.`,
		PersistentPreRunE: providerflag.Resolve,
	}

	cmd.AddCommand(DomainsCommand())
	cmd.AddCommand(ListCommand())
	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(UpdateCommand())
	cmd.AddCommand(DeleteCommand())

	providerflag.Add(cmd)

	return cmd
}

func newDNSService(cmd *cobra.Command) (*services.Service, error) {
	return providerflag.Service(cmd)
}
