package domain

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"nathanbeddoewebdev/registrar/cmd/commands/providerflag"
	"nathanbeddoewebdev/registrar/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NameserversCommand returns the "domain ns" subcommand group.
func NameserversCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ns",
		Aliases: []string{"nameservers"},
		Short:   "Show or replace the nameservers of a domain",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <domain>",
		Short: "Print the authoritative nameservers",
		Args:  cobra.ExactArgs(1),
		Run:   runNameserversGet,
	})
	set := &cobra.Command{
		Use:   "set <domain> <nameserver>...",
		Short: "Replace the nameservers",
		Long: `Replace the nameservers of a domain with the given list.

Interactive terminals ask for confirmation unless --yes is given.

Example:
  registrar domain ns set example.com ns1.example.net ns2.example.net --yes`,
		Args: cobra.MinimumNArgs(2),
		Run:  runNameserversSet,
	}
	set.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	cmd.AddCommand(set)

	return cmd
}

func runNameserversGet(cmd *cobra.Command, args []string) {
	svc, err := providerflag.Service(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	ns, err := svc.GetNameservers(cmd.Context(), args[0])
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error getting nameservers: %v\n", err)
		return
	}
	if len(ns) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No nameservers set.")
		return
	}
	for _, n := range ns {
		fmt.Fprintln(cmd.OutOrStdout(), n)
	}
}

func runNameserversSet(cmd *cobra.Command, args []string) {
	svc, err := providerflag.Service(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes && term.IsTerminal(int(os.Stdin.Fd())) {
		ok, err := tui.Confirm(
			fmt.Sprintf("Point %s at %s?", args[0], strings.Join(args[1:], ", ")),
			"Yes, update",
		)
		if err != nil && !errors.Is(err, tui.ErrAborted) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return
		}
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), "Nameserver update cancelled.")
			return
		}
	}

	if err := svc.SetNameservers(cmd.Context(), args[0], args[1:]); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error setting nameservers: %v\n", err)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated nameservers for %s\n", args[0])
}
