package domain

import (
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/registrar/cmd/commands/providerflag"
	registrar "nathanbeddoewebdev/registrar/internal/registrar/domain"

	"github.com/spf13/cobra"
)

// ForwardsCommand returns the "domain forwards" subcommand group.
func ForwardsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forwards",
		Short: "Manage URL forwards of a domain",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list <domain>",
		Short: "List URL forwards",
		Args:  cobra.ExactArgs(1),
		Run:   runForwardsList,
	})

	add := &cobra.Command{
		Use:   "add <domain> <target>",
		Short: "Forward a host to a URL",
		Long: `Forward the domain, or one of its subdomains, to a URL.

Examples:
  registrar domain forwards add example.com https://example.net
  registrar domain forwards add example.com https://blog.example.net --host blog --temporary`,
		Args: cobra.ExactArgs(2),
		Run:  runForwardsAdd,
	}
	add.Flags().String("host", "", "Subdomain to forward (empty for the root domain)")
	add.Flags().Bool("temporary", false, "Use a temporary (302) redirect instead of a permanent one")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <domain> <id>",
		Short: "Delete a URL forward",
		Args:  cobra.ExactArgs(2),
		Run:   runForwardsDelete,
	})

	return cmd
}

func runForwardsList(cmd *cobra.Command, args []string) {
	svc, err := providerflag.Service(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	forwards, err := svc.ListURLForwards(cmd.Context(), args[0])
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error listing forwards: %v\n", err)
		return
	}
	if len(forwards) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No URL forwards found.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tHOST\tTARGET\tTYPE")
	fmt.Fprintln(w, "--\t----\t------\t----")
	for _, f := range forwards {
		host := f.Host
		if host == "" {
			host = "@"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.ID, host, f.Target, redirectType(f))
	}
	w.Flush()
}

func runForwardsAdd(cmd *cobra.Command, args []string) {
	host, _ := cmd.Flags().GetString("host")
	temporary, _ := cmd.Flags().GetBool("temporary")

	svc, err := providerflag.Service(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	err = svc.AddURLForward(cmd.Context(), args[0], registrar.URLForwardOpts{
		Host:      host,
		Target:    args[1],
		Permanent: !temporary,
	})
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error adding forward: %v\n", err)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added forward to %s\n", args[1])
}

func runForwardsDelete(cmd *cobra.Command, args []string) {
	svc, err := providerflag.Service(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	if err := svc.DeleteURLForward(cmd.Context(), args[0], args[1]); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error deleting forward: %v\n", err)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted forward %s\n", args[1])
}

func redirectType(f registrar.URLForward) string {
	if f.Permanent {
		return "permanent"
	}
	return "temporary"
}
