package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vaultgate/vaultgate/internal/gateway"
)

var (
	flagTimeout int
	flagWorkdir string
)

var runCmd = &cobra.Command{
	Use:   "run <command>...",
	Short: "Run an Azure CLI command through the gateway",
	Long: `Run an Azure CLI command through the gateway.

The command is validated, checked against the allow-list, and executed with
the configured timeout. Sanitized output is written to stdout; error output
is written to stderr unmodified. The command's exit code is propagated.

Quote the command to keep the shell from splitting it:

  vaultgate run "az keyvault list"
  vaultgate run "az keyvault secret show --vault-name my-vault --name db-password"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagTimeout, "timeout", 0, "per-command timeout in seconds (0 uses the configured default)")
	runCmd.Flags().StringVar(&flagWorkdir, "workdir", "", "working directory for the command")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	return executeText(cmd, strings.Join(args, " "))
}

// executeText runs one command string through the gateway, prints its
// output, and maps the outcome to an ExitCodeError. It is shared by the
// free-form run command and the builder-backed subcommands.
func executeText(cmd *cobra.Command, text string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	gw, cleanup, err := newGateway(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize gateway: %w", err)
	}
	defer cleanup()

	// Interrupt cancels the in-flight command rather than killing the
	// process abruptly, so the cancellation is still audited.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res := gw.Execute(ctx, gateway.Command{
		Text:    text,
		Workdir: flagWorkdir,
		Timeout: time.Duration(flagTimeout) * time.Second,
	})

	if res.Output != "" {
		fmt.Fprint(cmd.OutOrStdout(), res.Output)
		if !strings.HasSuffix(res.Output, "\n") {
			fmt.Fprintln(cmd.OutOrStdout())
		}
	}

	if res.Succeeded {
		return nil
	}

	if res.ErrorText != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), strings.TrimRight(res.ErrorText, "\n"))
	}
	if res.ExitCode == gateway.SentinelExitCode {
		return NewExitCodeError(1)
	}
	return NewExitCodeError(res.ExitCode)
}
