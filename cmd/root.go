package cmd

import (
	"log/slog"
	"os"

	"nathanbeddoewebdev/registrar/cmd/commands/auth"
	cfgcmd "nathanbeddoewebdev/registrar/cmd/commands/config"
	"nathanbeddoewebdev/registrar/cmd/commands/dns"
	domaincmd "nathanbeddoewebdev/registrar/cmd/commands/domain"
	"nathanbeddoewebdev/registrar/internal/config"
	"nathanbeddoewebdev/registrar/internal/registrar/providers"
	"nathanbeddoewebdev/registrar/internal/transport"

	"github.com/spf13/cobra"
)

// logLevel gates the shared logger. --verbose lowers it to debug, which
// makes the transport log every request line and its outcome.
var logLevel = new(slog.LevelVar)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	// The dns and domain groups have their own persistent hooks; run the
	// root's as well so --verbose applies everywhere.
	cobra.EnableTraverseRunHooks = true

	var cmd = &cobra.Command{
		Use:   "registrar",
		Short: "Manage domains and DNS at Porkbun and Name.com",
		Long: `registrar is a command-line tool for managing domains and DNS records
across registrars through one set of commands.

Supported registrars: Porkbun, Name.com.

Quick start:
  registrar auth login porkbun                  # Store your API keys
  registrar config set default-provider porkbun
  registrar dns domains                         # List domains
  registrar dns list example.com                # List records
  registrar dns create example.com --type A --name www --content 1.2.3.4`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				logLevel.Set(slog.LevelDebug)
			}
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log API requests to stderr")

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(dns.NewCommand())
	cmd.AddCommand(domaincmd.NewCommand())

	return cmd
}

// registerProviders registers every registrar with the provider registry.
// The Name.com host comes from the namecom-environment config key.
func registerProviders(logger *slog.Logger) {
	host := ""
	if cfg, err := config.Load(); err == nil {
		host = cfg.NameComHost()
	} else {
		logger.Warn("failed to load config, using Name.com production", "error", err)
	}

	providers.RegisterPorkbun(transport.WithLogger(logger))
	providers.RegisterNameCom(host, transport.WithLogger(logger))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	logLevel.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	registerProviders(logger)

	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
