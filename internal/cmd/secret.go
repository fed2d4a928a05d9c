package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vaultgate/vaultgate/internal/azcmd"
)

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Manage Key Vault secrets",
	Long: `Manage Key Vault secrets through the gateway.

Vault and secret names are validated before any command string is built, so
malformed input fails fast without reaching the Azure CLI. Secret values are
escaped and reach the tool as single arguments regardless of their content.`,
}

var secretListCmd = &cobra.Command{
	Use:   "list <vault>",
	Short: "List a vault's secrets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := azcmd.SecretList(args[0])
		if err != nil {
			return err
		}
		return executeText(cmd, text)
	},
}

var secretShowCmd = &cobra.Command{
	Use:   "show <vault> <name>",
	Short: "Show a secret",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := azcmd.SecretShow(args[0], args[1])
		if err != nil {
			return err
		}
		return executeText(cmd, text)
	},
}

var secretSetCmd = &cobra.Command{
	Use:   "set <vault> <name> <value>",
	Short: "Store a secret value",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := azcmd.SecretSet(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		return executeText(cmd, text)
	},
}

var secretDeleteCmd = &cobra.Command{
	Use:   "delete <vault> <name>",
	Short: "Delete a secret",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := azcmd.SecretDelete(args[0], args[1])
		if err != nil {
			return err
		}
		return executeText(cmd, text)
	},
}

var secretRecoverCmd = &cobra.Command{
	Use:   "recover <vault> <name>",
	Short: "Recover a soft-deleted secret",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := azcmd.SecretRecover(args[0], args[1])
		if err != nil {
			return err
		}
		return executeText(cmd, text)
	},
}

func init() {
	secretCmd.AddCommand(secretListCmd)
	secretCmd.AddCommand(secretShowCmd)
	secretCmd.AddCommand(secretSetCmd)
	secretCmd.AddCommand(secretDeleteCmd)
	secretCmd.AddCommand(secretRecoverCmd)
	rootCmd.AddCommand(secretCmd)
}
