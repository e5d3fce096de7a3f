package config

import (
	"fmt"

	"github.com/rileyhilliard/sysgraph/internal/errors"
)

// Validate checks loaded defaults and returns a structured CONFIG error.
func Validate(cfg *Config) error {
	if cfg.Samples <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("samples must be a positive integer, got %d", cfg.Samples),
			"Fix 'samples' in config.yaml or SYSGRAPH_SAMPLES.")
	}

	if cfg.TDelay <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("tdelay must be a positive number of microseconds, got %d", cfg.TDelay),
			"Fix 'tdelay' in config.yaml or SYSGRAPH_TDELAY.")
	}

	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("color must be auto, always, or never, got %q", cfg.Color),
			"Fix 'color' in config.yaml or SYSGRAPH_COLOR.")
	}

	if cfg.ProcRoot == "" {
		return errors.New(errors.ErrConfig,
			"proc_root can't be empty",
			"Remove 'proc_root' to use /proc.")
	}

	if cfg.SysRoot == "" {
		return errors.New(errors.ErrConfig,
			"sys_root can't be empty",
			"Remove 'sys_root' to use /sys.")
	}

	return nil
}
