package config

import (
	"nathanbeddoewebdev/registrar/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage registrar CLI configuration",
		Long: "View and modify persistent registrar CLI settings.\n\n" +
			"Configuration is stored at ~/.config/registrar/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
