package config

import "time"

// Defaults used when neither a config file nor the environment overrides them.
const (
	DefaultSamples  = 20
	DefaultTDelay   = 500000 // microseconds
	DefaultProcRoot = "/proc"
	DefaultSysRoot  = "/sys"
	DefaultColor    = ColorAuto
)

// Color modes for the readout and label styles.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds user-level defaults loaded from config.yaml and SYSGRAPH_*
// environment variables. Command-line arguments take precedence over it.
type Config struct {
	// Samples is the default number of samples when none is given on the command line.
	Samples int `yaml:"samples" mapstructure:"samples"`

	// TDelay is the default delay between samples, in microseconds.
	TDelay int `yaml:"tdelay" mapstructure:"tdelay"`

	// ProcRoot is the procfs mount that holds stat and meminfo.
	ProcRoot string `yaml:"proc_root" mapstructure:"proc_root"`

	// SysRoot is the sysfs mount used for the max CPU frequency.
	SysRoot string `yaml:"sys_root" mapstructure:"sys_root"`

	// Color is "auto", "always", or "never".
	Color string `yaml:"color" mapstructure:"color"`

	// Summary prints min/avg/max lines under the graphs when the run ends.
	Summary bool `yaml:"summary" mapstructure:"summary"`
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Samples:  DefaultSamples,
		TDelay:   DefaultTDelay,
		ProcRoot: DefaultProcRoot,
		SysRoot:  DefaultSysRoot,
		Color:    DefaultColor,
		Summary:  false,
	}
}

// RunConfig is the fully resolved configuration for one dashboard run.
// It is built once from the command line and never changes afterwards.
type RunConfig struct {
	Samples    int
	Delay      time.Duration
	ShowMemory bool
	ShowCPU    bool
	ShowCores  bool

	ProcRoot string
	SysRoot  string
	Color    string
	Summary  bool
}

// DelayMicros returns Delay in microseconds, the unit shown in the header.
func (r RunConfig) DelayMicros() int64 {
	return r.Delay.Microseconds()
}

// ShowGraphs reports whether any sampled graph is enabled.
func (r RunConfig) ShowGraphs() bool {
	return r.ShowMemory || r.ShowCPU
}
