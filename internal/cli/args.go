package cli

import (
	stderrors "errors"
	"strconv"
	"strings"
	"time"

	"github.com/rileyhilliard/sysgraph/internal/config"
	"github.com/rileyhilliard/sysgraph/internal/errors"
)

// ErrHelp is returned by ParseArgs when -h or --help appears anywhere.
var ErrHelp = stderrors.New("help requested")

const (
	samplesFlag = "--samples="
	tdelayFlag  = "--tdelay="
)

// ParseArgs resolves the dashboard command line:
//
//	sysgraph [samples [tdelay]] [--memory] [--cpu] [--cores] [--samples=N] [--tdelay=N]
//
// Positionals must come first. A token starting with "-" ends them, so a
// number after any flag is an unknown argument. Values in defaults apply
// when the command line leaves samples or tdelay unset.
func ParseArgs(args []string, defaults *config.Config) (config.RunConfig, error) {
	if defaults == nil {
		defaults = config.DefaultConfig()
	}

	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return config.RunConfig{}, ErrHelp
		}
	}

	var (
		samples, tdelay       int
		samplesSet, tdelaySet bool
		memory, cpu, cores    bool
	)

	i := 0
	if i < len(args) && !strings.HasPrefix(args[i], "-") {
		n, ok := parsePositive(args[i])
		if !ok {
			return config.RunConfig{}, errors.NewArgument("Invalid positional argument '%s'", args[i])
		}
		samples, samplesSet = n, true
		i++

		if i < len(args) && !strings.HasPrefix(args[i], "-") {
			n, ok := parsePositive(args[i])
			if !ok {
				return config.RunConfig{}, errors.NewArgument("Invalid positional argument '%s'", args[i])
			}
			tdelay, tdelaySet = n, true
			i++
		}
	}

	for ; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--memory":
			if memory {
				return config.RunConfig{}, errors.NewArgument("Duplicate flag --memory")
			}
			memory = true

		case arg == "--cpu":
			if cpu {
				return config.RunConfig{}, errors.NewArgument("Duplicate flag --cpu")
			}
			cpu = true

		case arg == "--cores":
			if cores {
				return config.RunConfig{}, errors.NewArgument("Duplicate flag --cores")
			}
			cores = true

		case strings.HasPrefix(arg, samplesFlag):
			if samplesSet {
				return config.RunConfig{}, errors.NewArgument("Cannot use --samples when it's already provided")
			}
			n, ok := parsePositive(strings.TrimPrefix(arg, samplesFlag))
			if !ok {
				return config.RunConfig{}, errors.NewArgument("Invalid value for --samples: '%s'", strings.TrimPrefix(arg, samplesFlag))
			}
			samples, samplesSet = n, true

		case strings.HasPrefix(arg, tdelayFlag):
			if tdelaySet {
				return config.RunConfig{}, errors.NewArgument("Cannot use --tdelay when it's already provided")
			}
			n, ok := parsePositive(strings.TrimPrefix(arg, tdelayFlag))
			if !ok {
				return config.RunConfig{}, errors.NewArgument("Invalid value for --tdelay: '%s'", strings.TrimPrefix(arg, tdelayFlag))
			}
			tdelay, tdelaySet = n, true

		default:
			return config.RunConfig{}, errors.NewArgument("Unknown argument '%s'", arg)
		}
	}

	if !samplesSet {
		samples = defaults.Samples
	}
	if !tdelaySet {
		tdelay = defaults.TDelay
	}
	if !memory && !cpu && !cores {
		memory, cpu, cores = true, true, true
	}

	return config.RunConfig{
		Samples:    samples,
		Delay:      time.Duration(tdelay) * time.Microsecond,
		ShowMemory: memory,
		ShowCPU:    cpu,
		ShowCores:  cores,
		ProcRoot:   defaults.ProcRoot,
		SysRoot:    defaults.SysRoot,
		Color:      defaults.Color,
		Summary:    defaults.Summary,
	}, nil
}

// parsePositive accepts a non-empty run of decimal digits with a value in
// [1, MaxInt32]. Signs, spaces and zero are rejected.
func parsePositive(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return int(n), true
}
