// Package cli implements the sysgraph command-line interface.
//
// The root command runs the dashboard. Its arguments are parsed by
// ParseArgs rather than cobra's flag set, since the grammar needs ordered
// positionals, rejects duplicate switches and treats --samples=N after a
// positional sample count as an error:
//
//	sysgraph [samples [tdelay]] [--memory] [--cpu] [--cores] [--samples=N] [--tdelay=N]
//
// Subcommands:
//
//	sysgraph version            - Build information
//	sysgraph config             - Effective config as YAML
//	sysgraph completion <shell> - Shell completion script
//
// # Configuration
//
// Defaults for samples, tdelay, the /proc and /sys roots, color mode and the
// closing summary come from internal/config (config file plus SYSGRAPH_*
// environment). Command-line values override them.
//
// # Terminal
//
// Output goes through monitor.ANSISurface. Color is chosen once per run from
// the color setting and whether stdout is a terminal (golang.org/x/term).
package cli
