package auth

import (
	"fmt"

	"nathanbeddoewebdev/registrar/internal/config"
	"nathanbeddoewebdev/registrar/internal/platform/providers"
	"nathanbeddoewebdev/registrar/internal/services/auth"

	"github.com/spf13/cobra"
)

func ImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <accounts.yaml>...",
		Short: "Store credentials from a YAML accounts file",
		Long: `Store the credentials found in one or more YAML accounts files.

Later files override earlier ones. Registrars whose credentials are
incomplete are skipped.

Example:
  registrar auth import testdata/accounts.default.yaml testdata/accounts.local.yaml`,
		Args: cobra.MinimumNArgs(1),
		Run:  runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) {
	acc, err := config.LoadAccounts(args...)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	n, err := importAccounts(auth.DefaultStore(), acc)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}
	if n == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No complete credentials found.")
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported credentials for %d registrar(s)\n", n)
}

// importAccounts stores every complete credential set in acc and returns
// how many registrars were imported.
func importAccounts(store auth.Store, acc *config.Accounts) (int, error) {
	sets := []struct {
		provider string
		values   map[string]string
		complete bool
	}{
		{
			provider: "porkbun",
			values: map[string]string{
				"porkbun-apikey":       acc.Porkbun.Credentials.APIKey,
				"porkbun-secretapikey": acc.Porkbun.Credentials.SecretAPIKey,
			},
			complete: acc.Porkbun.Credentials.Complete(),
		},
		{
			provider: "namecom",
			values: map[string]string{
				"namecom-username": acc.NameCom.Credentials.Username,
				"namecom-token":    acc.NameCom.Credentials.Token,
			},
			complete: acc.NameCom.Credentials.Complete(),
		},
	}

	n := 0
	for _, s := range sets {
		if !s.complete {
			continue
		}
		spec := providers.Lookup(s.provider)
		if err := saveCredentials(store, *spec, s.values); err != nil {
			return n, fmt.Errorf("%s: %w", spec.DisplayName, err)
		}
		n++
	}
	return n, nil
}
