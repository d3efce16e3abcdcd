package dns

import (
	"context"
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/registrar/internal/registrar/domain"
	"nathanbeddoewebdev/registrar/internal/registrar/providers"
	"nathanbeddoewebdev/registrar/internal/registrar/services"
	"nathanbeddoewebdev/registrar/internal/services/auth"

	"github.com/spf13/cobra"
)

// DomainsCommand returns the "dns domains" subcommand.
func DomainsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domains",
		Short: "List domains in the registrar account",
		Long: `List all domains registered in the registrar account.

With --all, every registrar that has credentials stored is queried
concurrently and the results are merged.

Examples:
  registrar dns domains --provider porkbun
  registrar dns domains --all`,
		Args: cobra.NoArgs,
		Run:  runDomains,
	}

	cmd.Flags().Bool("all", false, "List domains across all registrars")

	return cmd
}

func runDomains(cmd *cobra.Command, args []string) {
	all, _ := cmd.Flags().GetBool("all")

	var (
		domains []domain.Domain
		err     error
	)
	if all {
		domains, err = listAllDomains(cmd.Context())
	} else {
		svc, svcErr := newDNSService(cmd)
		if svcErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", svcErr)
			return
		}
		domains, err = svc.ListDomains(cmd.Context())
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error listing domains: %v\n", err)
		return
	}

	if len(domains) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No domains found.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "DOMAIN\tPROVIDER\tSTATUS\tTLD\tEXPIRES\tAUTO-RENEW")
	fmt.Fprintln(w, "------\t--------\t------\t---\t-------\t----------")

	for _, d := range domains {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			d.Name,
			d.Provider,
			d.Status,
			d.TLD,
			d.ExpireDate,
			yesNo(d.AutoRenew),
		)
	}

	w.Flush()
}

// listAllDomains builds every registered provider whose credentials are
// available and merges their domain lists. Providers without stored
// credentials are skipped.
func listAllDomains(ctx context.Context) ([]domain.Domain, error) {
	store := auth.DefaultStore()
	var ps []domain.Provider
	for _, name := range providers.List() {
		p, err := providers.Get(name, store)
		if err != nil {
			continue
		}
		ps = append(ps, p)
	}
	if len(ps) == 0 {
		return nil, fmt.Errorf("no registrar credentials found (run 'registrar auth login <provider>')")
	}
	return services.ListAllDomains(ctx, ps...)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
