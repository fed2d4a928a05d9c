package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultgate/vaultgate/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage vaultgate configuration",
	Long: `Manage vaultgate's configuration.

The configuration file is stored at ~/.config/vaultgate/config.yaml
(or $XDG_CONFIG_HOME/vaultgate/config.yaml if XDG_CONFIG_HOME is set).

Use the subcommands to view or initialize the configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	Long: `Print the effective configuration as YAML.

If no config file exists, shows the default configuration.`,
	RunE: runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print config file path",
	Long:  `Print the path to the configuration file.`,
	Run:   runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default config file",
	Long: `Create the default configuration file if it doesn't exist.

The default file carries the standard allow-list and limits. If the file
already exists, this command fails rather than overwrite it.`,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) {
	fmt.Fprintln(cmd.OutOrStdout(), config.Path())
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := config.WriteDefault(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created default config at: %s\n", config.Path())
	return nil
}
