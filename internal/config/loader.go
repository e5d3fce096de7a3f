package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/rileyhilliard/sysgraph/internal/errors"
)

const (
	// EnvPrefix is prepended to every environment override (SYSGRAPH_SAMPLES, ...).
	EnvPrefix = "SYSGRAPH"
	// ConfigEnv names an explicit config file path.
	ConfigEnv = "SYSGRAPH_CONFIG"
	// ConfigDirName is the directory under the user config dir.
	ConfigDirName = "sysgraph"
	// ConfigFileName is the config file name.
	ConfigFileName = "config.yaml"
)

// Load reads defaults from the config file at path (optional; empty means
// none) and applies SYSGRAPH_* environment overrides on top.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Config file not found: "+path,
					"Check the path in "+ConfigEnv+" or remove it")
			}
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax and SYSGRAPH_* environment variables")
	}

	expandRoots(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Find locates the config file using the search order:
// 1. $SYSGRAPH_CONFIG (must exist)
// 2. $XDG_CONFIG_HOME/sysgraph/config.yaml
// 3. ~/.config/sysgraph/config.yaml
//
// Returns an empty path when no config file exists.
func Find() (string, error) {
	if explicit := os.Getenv(ConfigEnv); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Specified config file not found: "+explicit,
				"Check the path in "+ConfigEnv)
		}
		return explicit, nil
	}

	var candidates []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		candidates = append(candidates, filepath.Join(xdg, ConfigDirName, ConfigFileName))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		candidates = append(candidates, filepath.Join(home, ".config", ConfigDirName, ConfigFileName))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", nil
}

// LoadOrDefault finds and loads the config file, or just applies environment
// overrides to the built-in defaults when there is none.
func LoadOrDefault() (*Config, error) {
	path, err := Find()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("samples", DefaultSamples)
	v.SetDefault("tdelay", DefaultTDelay)
	v.SetDefault("proc_root", DefaultProcRoot)
	v.SetDefault("sys_root", DefaultSysRoot)
	v.SetDefault("color", DefaultColor)
	v.SetDefault("summary", false)
}
