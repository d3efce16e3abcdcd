package dns

import (
	"errors"
	"fmt"
	"os"

	"nathanbeddoewebdev/registrar/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// DeleteCommand returns the "dns delete" subcommand.
func DeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <domain> [id]",
		Short: "Delete a DNS record",
		Long: `Delete a DNS record by its ID.

When the ID is omitted in an interactive terminal, the records of the
domain are listed for selection and the deletion must be confirmed.

Examples:
  registrar dns delete example.com 106926659
  registrar dns delete example.com`,
		Args: cobra.RangeArgs(1, 2),
		Run:  runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) {
	domainName := args[0]

	svc, err := newDNSService(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	var recordID string
	if len(args) == 2 {
		recordID = args[1]
	} else {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error: record ID is required when not running interactively")
			return
		}
		rec, err := tui.DeleteRecordForm(cmd.Context(), svc, domainName)
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Deletion cancelled.")
			return
		}
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return
		}
		recordID = rec.ID
	}

	if err := svc.DeleteRecord(cmd.Context(), domainName, recordID); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error deleting record: %v\n", err)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted record %s\n", recordID)
}
