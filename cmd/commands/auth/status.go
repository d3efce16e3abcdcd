package auth

import (
	"errors"
	"fmt"
	"os"

	"nathanbeddoewebdev/registrar/internal/platform/providers"
	providernames "nathanbeddoewebdev/registrar/internal/platform/providers/names"
	"nathanbeddoewebdev/registrar/internal/services/auth"
	"nathanbeddoewebdev/registrar/internal/tui"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show authentication status for registrars",
		Long: `Show which registrars have stored credentials.

Example:
  registrar auth status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses := collectStatuses(auth.DefaultStore(), providernames.List())

			if term.IsTerminal(int(os.Stdout.Fd())) {
				fmt.Fprintln(cmd.OutOrStdout(), tui.RenderAuthStatus(statuses))
				return nil
			}

			if len(statuses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No providers registered.")
				return nil
			}
			for _, s := range statuses {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", s.Name, s.Status)
			}
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}

// collectStatuses reports, for each provider, whether every credential key
// in its spec is present in store.
func collectStatuses(store auth.Store, names []string) []tui.ProviderStatus {
	out := make([]tui.ProviderStatus, 0, len(names))
	for _, name := range names {
		out = append(out, tui.ProviderStatus{Name: name, Status: keyStatus(store, name)})
	}
	return out
}

func keyStatus(store auth.Store, name string) string {
	keys := []string{name}
	if spec := providers.Lookup(name); spec != nil {
		keys = keys[:0]
		for _, k := range spec.Keys {
			keys = append(keys, spec.KeychainKey(k))
		}
	}

	for _, key := range keys {
		_, err := store.GetToken(key)
		switch {
		case err == nil:
		case errors.Is(err, auth.ErrTokenNotFound):
			return "not authenticated"
		default:
			return fmt.Sprintf("error (%v)", err)
		}
	}
	return "authenticated"
}
