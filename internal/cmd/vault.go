package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vaultgate/vaultgate/internal/azcmd"
)

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Manage Key Vaults",
	Long: `Manage Key Vaults through the gateway.

Names, resource groups, and locations are validated before any command
string is built.`,
}

var vaultListCmd = &cobra.Command{
	Use:   "list [resource-group]",
	Short: "List vaults, optionally within one resource group",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return executeText(cmd, azcmd.VaultList())
		}
		text, err := azcmd.VaultListIn(args[0])
		if err != nil {
			return err
		}
		return executeText(cmd, text)
	},
}

var vaultShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a vault",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := azcmd.VaultShow(args[0])
		if err != nil {
			return err
		}
		return executeText(cmd, text)
	},
}

var vaultCreateCmd = &cobra.Command{
	Use:   "create <name> <resource-group> <location>",
	Short: "Create a vault",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := azcmd.VaultCreate(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		return executeText(cmd, text)
	},
}

var vaultDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a vault",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := azcmd.VaultDelete(args[0])
		if err != nil {
			return err
		}
		return executeText(cmd, text)
	},
}

func init() {
	vaultCmd.AddCommand(vaultListCmd)
	vaultCmd.AddCommand(vaultShowCmd)
	vaultCmd.AddCommand(vaultCreateCmd)
	vaultCmd.AddCommand(vaultDeleteCmd)
	rootCmd.AddCommand(vaultCmd)
}
