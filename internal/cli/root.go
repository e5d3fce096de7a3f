package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/sysgraph/internal/errors"
)

// rootCmd runs the dashboard. Flag parsing is left to ParseArgs because the
// grammar (ordered positionals, duplicate detection, --samples=N conflicts)
// is stricter than pflag.
var rootCmd = &cobra.Command{
	Use:   "sysgraph [samples [tdelay]] [--memory] [--cpu] [--cores] [--samples=N] [--tdelay=N]",
	Short: "Live CPU and memory graphs in the terminal",
	Long: `sysgraph samples CPU and memory utilization at a fixed interval and plots
them as ASCII graphs, followed by a diagram of the CPU cores.

Positional arguments come first: the number of samples, then the delay
between samples in microseconds. Flags may follow in any order.

  --memory       show the memory graph
  --cpu          show the CPU graph
  --cores        show the core diagram
  --samples=N    number of samples (default 20)
  --tdelay=N     delay between samples in microseconds (default 500000)

With none of --memory, --cpu or --cores all three are shown.

Examples:
  sysgraph
  sysgraph 10 --cpu
  sysgraph --samples=40 --tdelay=250000 --memory`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd.Context(), cmd, args)
	},
}

// Execute runs the root command. SIGINT and SIGTERM stop sampling at the next
// iteration boundary. Any error is printed to stderr and exits 1.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := execute(ctx, os.Args[1:])
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(errors.ExitCode(err))
	}
}

// execute dispatches args to a subcommand only when its name comes first.
// Cobra skips flag-like tokens while looking for subcommands, which would
// send "--cpu config" to config; those go to the dashboard grammar instead.
func execute(ctx context.Context, args []string) error {
	if flagBeforeSubcommand(args) {
		return runDashboard(ctx, rootCmd, args)
	}
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func flagBeforeSubcommand(args []string) bool {
	if len(args) == 0 || !strings.HasPrefix(args[0], "-") {
		return false
	}
	cmd, _, err := rootCmd.Find(args)
	return err == nil && cmd != rootCmd
}
