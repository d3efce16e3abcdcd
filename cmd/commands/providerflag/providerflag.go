// Package providerflag wires the shared --provider flag used by the dns and
// domain command groups.
package providerflag

import (
	"fmt"

	"nathanbeddoewebdev/registrar/internal/config"
	"nathanbeddoewebdev/registrar/internal/registrar/providers"
	"nathanbeddoewebdev/registrar/internal/registrar/services"
	"nathanbeddoewebdev/registrar/internal/services/auth"

	"github.com/spf13/cobra"
)

const Name = "provider"

// Add registers the persistent --provider flag on cmd.
func Add(cmd *cobra.Command) {
	cmd.PersistentFlags().String(Name, "", "Registrar to use (porkbun, namecom; overrides default-provider)")
}

// Resolve ensures the --provider flag has a value, falling back to the
// default-provider config key when the flag was not explicitly set.
// Commands run with --all query every registrar and skip resolution.
func Resolve(cmd *cobra.Command, _ []string) error {
	if cmd.Flag(Name).Changed {
		return nil
	}
	if all, err := cmd.Flags().GetBool("all"); err == nil && all {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.DefaultProvider != "" {
		if err := cmd.Flag(Name).Value.Set(cfg.DefaultProvider); err != nil {
			return fmt.Errorf("failed to set provider flag: %w", err)
		}
		return nil
	}

	return fmt.Errorf("no provider specified: use --provider or set a default with 'registrar config set default-provider <name>'")
}

// Service builds the registrar service for the resolved provider.
func Service(cmd *cobra.Command) (*services.Service, error) {
	provider, err := providers.Get(cmd.Flag(Name).Value.String(), auth.DefaultStore())
	if err != nil {
		return nil, err
	}
	return services.New(provider), nil
}
