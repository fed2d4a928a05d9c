package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var allowlistCmd = &cobra.Command{
	Use:   "allowlist",
	Short: "Print the effective command allow-list",
	Long: `Print the command prefixes the gateway will accept, one per line.

Prefixes are matched case-insensitively against the start of each command
after whitespace normalization. Commands that match no prefix are rejected
before any process is spawned.`,
	RunE: runAllowlist,
}

func init() {
	rootCmd.AddCommand(allowlistCmd)
}

func runAllowlist(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	for _, prefix := range cfg.Gateway.AllowPrefixes() {
		fmt.Fprintln(cmd.OutOrStdout(), prefix)
	}
	return nil
}
