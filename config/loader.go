package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const fileName = "wlanctl.yaml"

// Load discovers a config file relative to the working directory, or reads
// path when it is non-empty, then applies environment overrides and validates.
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom loads config using dir as the first place to look for wlanctl.yaml.
func LoadFrom(dir string) (*Config, error) {
	return load(discoverConfigPath(dir))
}

// LoadFile loads config from an explicit path. The file must exist.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	return load(path)
}

func load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
	}

	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigPath returns ./wlanctl.yaml, then ~/.config/wlanctl/config.yaml,
// or "" when neither exists.
func discoverConfigPath(dir string) string {
	local := filepath.Join(dir, fileName)
	if _, err := os.Stat(local); err == nil {
		return local
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	user := filepath.Join(home, ".config", "wlanctl", "config.yaml")
	if _, err := os.Stat(user); err == nil {
		return user
	}

	return ""
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	return &cfg, nil
}

// merge overlays override onto base. Scalars override when non-zero, slices
// replace when non-nil, *bool overrides when non-nil.
func merge(base *Config, override *Config) {
	if override.Tool != "" {
		base.Tool = override.Tool
	}
	if override.Timeout != 0 {
		base.Timeout = override.Timeout
	}
	if override.Marker != "" {
		base.Marker = override.Marker
	}

	if override.Commands.Scan != nil {
		base.Commands.Scan = override.Commands.Scan
	}
	if override.Commands.Connect != nil {
		base.Commands.Connect = override.Commands.Connect
	}
	if override.Commands.Disconnect != nil {
		base.Commands.Disconnect = override.Commands.Disconnect
	}
	if override.Commands.Interfaces != nil {
		base.Commands.Interfaces = override.Commands.Interfaces
	}

	if override.UI.LogFile != "" {
		base.UI.LogFile = override.UI.LogFile
	}
	if override.UI.RefreshOnStart != nil {
		base.UI.RefreshOnStart = override.UI.RefreshOnStart
	}
	if override.UI.LogHeight != 0 {
		base.UI.LogHeight = override.UI.LogHeight
	}
}

// applyEnvOverrides applies WLANCTL_* environment variables on top of the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WLANCTL_TOOL"); v != "" {
		cfg.Tool = v
	}
	if v := os.Getenv("WLANCTL_LOG_FILE"); v != "" {
		cfg.UI.LogFile = v
	}
	if v := os.Getenv("WLANCTL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		} else {
			fmt.Fprintf(os.Stderr, "warning: WLANCTL_TIMEOUT=%q is not a valid duration, ignoring\n", v)
		}
	}
}
