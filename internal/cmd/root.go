// Package cmd implements the CLI commands for vaultgate.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vaultgate/vaultgate/internal/clog"
	"github.com/vaultgate/vaultgate/internal/config"
	"github.com/vaultgate/vaultgate/internal/version"
)

var (
	flagDebug      bool
	flagConfigPath string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "vaultgate",
	Short: "Secure gateway for Azure CLI commands",
	Long: `Vaultgate mediates execution of Azure CLI (az) commands for Key Vault
workflows. Every command is validated, checked against a configurable
allow-list, and executed under timeout and concurrency limits. Sensitive
values in command output are redacted before display, and every rejection
and execution outcome is written to an audit log.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logPath := cfg.Log.File
		if logPath == "" {
			logPath = clog.DefaultLogPath()
		}
		if err := clog.Configure(logPath, flagDebug); err != nil {
			return err
		}
		// --debug wins; otherwise the configured level applies.
		if !flagDebug {
			clog.SetLevel(clog.ParseLevel(cfg.Log.Level))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to config file (default "+config.Path()+")")
}

// loadConfig loads the effective configuration, honoring the --config flag.
func loadConfig() (*config.Config, error) {
	if flagConfigPath != "" {
		return config.LoadFile(flagConfigPath)
	}
	return config.Load()
}

// Execute runs the root command and returns any error.
func Execute() error {
	defer clog.Close()
	return rootCmd.Execute()
}
