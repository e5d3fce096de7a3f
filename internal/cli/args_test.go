package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/sysgraph/internal/config"
	"github.com/rileyhilliard/sysgraph/internal/errors"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantSample int
		wantDelay  time.Duration
		wantMemory bool
		wantCPU    bool
		wantCores  bool
	}{
		{
			name:       "no arguments enables everything",
			args:       nil,
			wantSample: 20,
			wantDelay:  500 * time.Millisecond,
			wantMemory: true,
			wantCPU:    true,
			wantCores:  true,
		},
		{
			name:       "positional samples with cpu switch",
			args:       []string{"10", "--cpu"},
			wantSample: 10,
			wantDelay:  500 * time.Millisecond,
			wantCPU:    true,
		},
		{
			name:       "both positionals",
			args:       []string{"5", "100000"},
			wantSample: 5,
			wantDelay:  100 * time.Millisecond,
			wantMemory: true,
			wantCPU:    true,
			wantCores:  true,
		},
		{
			name:       "flag forms",
			args:       []string{"--memory", "--samples=40", "--tdelay=250000"},
			wantSample: 40,
			wantDelay:  250 * time.Millisecond,
			wantMemory: true,
		},
		{
			name:       "positional samples with flag tdelay",
			args:       []string{"7", "--tdelay=1000", "--cores"},
			wantSample: 7,
			wantDelay:  time.Millisecond,
			wantCores:  true,
		},
		{
			name:       "switches in any order",
			args:       []string{"--cores", "--memory"},
			wantSample: 20,
			wantDelay:  500 * time.Millisecond,
			wantMemory: true,
			wantCores:  true,
		},
		{
			name:       "leading zeros",
			args:       []string{"007"},
			wantSample: 7,
			wantDelay:  500 * time.Millisecond,
			wantMemory: true,
			wantCPU:    true,
			wantCores:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run, err := ParseArgs(tt.args, config.DefaultConfig())
			require.NoError(t, err)

			assert.Equal(t, tt.wantSample, run.Samples)
			assert.Equal(t, tt.wantDelay, run.Delay)
			assert.Equal(t, tt.wantMemory, run.ShowMemory)
			assert.Equal(t, tt.wantCPU, run.ShowCPU)
			assert.Equal(t, tt.wantCores, run.ShowCores)
		})
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errContains string
	}{
		{"negative positional", []string{"-5"}, "Unknown argument '-5'"},
		{"zero samples", []string{"0"}, "Invalid positional argument '0'"},
		{"zero tdelay", []string{"10", "0"}, "Invalid positional argument '0'"},
		{"non-digit samples", []string{"10abc"}, "Invalid positional argument '10abc'"},
		{"signed samples", []string{"+5"}, "Invalid positional argument '+5'"},
		{"overflow", []string{"99999999999"}, "Invalid positional argument"},
		{"third positional", []string{"10", "20", "30"}, "Unknown argument '30'"},
		{"duplicate cpu", []string{"--cpu", "--cpu"}, "Duplicate flag --cpu"},
		{"duplicate memory", []string{"--memory", "--cpu", "--memory"}, "Duplicate flag --memory"},
		{"duplicate cores", []string{"--cores", "--cores"}, "Duplicate flag --cores"},
		{"samples flag after positional", []string{"10", "--samples=5"}, "Cannot use --samples when it's already provided"},
		{"samples flag twice", []string{"--samples=5", "--samples=6"}, "Cannot use --samples when it's already provided"},
		{"tdelay flag after positional", []string{"10", "500", "--tdelay=5"}, "Cannot use --tdelay when it's already provided"},
		{"positional after samples flag", []string{"--samples=5", "10"}, "Unknown argument '10'"},
		{"empty samples value", []string{"--samples="}, "Invalid value for --samples"},
		{"zero samples value", []string{"--samples=0"}, "Invalid value for --samples: '0'"},
		{"bad tdelay value", []string{"--tdelay=1s"}, "Invalid value for --tdelay: '1s'"},
		{"unknown flag", []string{"--disk"}, "Unknown argument '--disk'"},
		{"single dash flag", []string{"-c"}, "Unknown argument '-c'"},
		{"flag without value", []string{"--samples"}, "Unknown argument '--samples'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs(tt.args, config.DefaultConfig())
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrArgs), "expected ARGS error, got %v", err)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.Equal(t, 1, errors.ExitCode(err))
		})
	}
}

func TestParseArgsHelp(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"--help"}, {"10", "--cpu", "--help"}, {"--bogus", "-h"}} {
		_, err := ParseArgs(args, nil)
		assert.ErrorIs(t, err, ErrHelp, "args %v", args)
	}
}

func TestParseArgsUsesConfigDefaults(t *testing.T) {
	defaults := config.DefaultConfig()
	defaults.Samples = 60
	defaults.TDelay = 1000000
	defaults.ProcRoot = "/host/proc"
	defaults.SysRoot = "/host/sys"
	defaults.Color = config.ColorNever
	defaults.Summary = true

	run, err := ParseArgs([]string{"--cpu"}, defaults)
	require.NoError(t, err)

	assert.Equal(t, 60, run.Samples)
	assert.Equal(t, time.Second, run.Delay)
	assert.Equal(t, "/host/proc", run.ProcRoot)
	assert.Equal(t, "/host/sys", run.SysRoot)
	assert.Equal(t, config.ColorNever, run.Color)
	assert.True(t, run.Summary)

	// Command line beats config
	run, err = ParseArgs([]string{"3", "10"}, defaults)
	require.NoError(t, err)
	assert.Equal(t, 3, run.Samples)
	assert.Equal(t, 10*time.Microsecond, run.Delay)
	assert.Equal(t, int64(10), run.DelayMicros())
}

func TestParseArgsNilDefaults(t *testing.T) {
	run, err := ParseArgs(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSamples, run.Samples)
	assert.Equal(t, int64(config.DefaultTDelay), run.DelayMicros())
	assert.Equal(t, config.DefaultProcRoot, run.ProcRoot)
}

func TestParsePositive(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"1", 1, true},
		{"20", 20, true},
		{"2147483647", 2147483647, true},
		{"2147483648", 0, false},
		{"0", 0, false},
		{"000", 0, false},
		{"", 0, false},
		{"-1", 0, false},
		{" 5", 0, false},
		{"5.0", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parsePositive(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
