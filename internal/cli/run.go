package cli

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rileyhilliard/sysgraph/internal/config"
	"github.com/rileyhilliard/sysgraph/internal/counters"
	"github.com/rileyhilliard/sysgraph/internal/logger"
	"github.com/rileyhilliard/sysgraph/internal/monitor"
)

// runDashboard loads config defaults, parses the command line and runs the
// dashboard on the command's output.
func runDashboard(ctx context.Context, cmd *cobra.Command, args []string) error {
	defaults, err := config.LoadOrDefault()
	if err != nil {
		return err
	}

	run, err := ParseArgs(args, defaults)
	if stderrors.Is(err, ErrHelp) {
		return cmd.Help()
	}
	if err != nil {
		return err
	}

	return startDashboard(ctx, run, cmd.OutOrStdout(), logger.Default())
}

// startDashboard wires the proc counters, terminal surface and styles for w.
func startDashboard(ctx context.Context, run config.RunConfig, w io.Writer, log logger.Logger) error {
	fd, tty := terminalFd(w)

	profile := resolveProfile(run.Color, tty, func() termenv.Profile {
		return termenv.NewOutput(w, termenv.WithTTY(true)).EnvColorProfile()
	})

	layout := monitor.NewLayout(run.Samples, run.ShowMemory, run.ShowCPU)
	if tty {
		checkTerminalSize(fd, layout, log)
	}
	log.Debug("color profile %d, tty %t", profile, tty)

	surface := monitor.NewANSISurface(w, termenv.WithProfile(profile))
	styles := monitor.NewStyles(monitor.NewRenderer(w, profile))

	d := monitor.NewDashboard(run, counters.NewProcSource(run.ProcRoot), surface,
		monitor.WithStyles(styles),
		monitor.WithLogger(log),
	)
	return d.Run(ctx)
}

// resolveProfile maps the color setting to a termenv profile. detect is only
// called when the terminal decides.
func resolveProfile(mode string, tty bool, detect func() termenv.Profile) termenv.Profile {
	switch mode {
	case config.ColorNever:
		return termenv.Ascii
	case config.ColorAlways:
		if p := detect(); p != termenv.Ascii {
			return p
		}
		return termenv.ANSI256
	default:
		if !tty {
			return termenv.Ascii
		}
		return detect()
	}
}

// terminalFd returns w's file descriptor and whether it is a terminal.
func terminalFd(w io.Writer) (int, bool) {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return -1, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// checkTerminalSize logs when the graphs will not fit. The layout is fixed
// for the whole run, so nothing is resized.
func checkTerminalSize(fd int, layout monitor.Layout, log logger.Logger) {
	width, height, err := term.GetSize(fd)
	if err != nil {
		log.Debug("can't read terminal size: %v", err)
		return
	}
	if width < layout.Width() || height < layout.BottomRow {
		log.Debug("terminal is %dx%d but the graphs need %dx%d; output may wrap",
			width, height, layout.Width(), layout.BottomRow)
	}
}
