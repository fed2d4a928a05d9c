package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check Azure CLI availability and login status",
	Long: `Check whether the Azure CLI can be located on this machine, report its
version, and report whether an Azure session is active.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	gw, cleanup, err := newGateway(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize gateway: %w", err)
	}
	defer cleanup()

	ctx := cmd.Context()

	if !gw.CheckAvailability(ctx) {
		return toolNotAvailableError()
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Azure CLI: found")

	ver, err := gw.Version(ctx)
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Version: unavailable (%v)\n", err)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Version:\n%s\n", strings.TrimRight(ver, "\n"))
	}

	if gw.IsAuthenticated(ctx) {
		fmt.Fprintln(cmd.OutOrStdout(), "Session: active")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Session: not logged in (run 'vaultgate run \"az login\"')")
	}

	return nil
}
