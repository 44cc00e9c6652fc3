package config

import (
	"fmt"
	"strings"

	"wlanctl/netsh"
)

// ValidationError collects multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// validate runs every check and reports all failures together.
func validate(cfg *Config) error {
	var errs []string

	if strings.TrimSpace(cfg.Tool) == "" {
		errs = append(errs, "tool must not be empty")
	}
	if cfg.Marker == "" {
		errs = append(errs, "marker must not be empty")
	}
	if cfg.Timeout < 0 {
		errs = append(errs, "timeout must not be negative")
	}

	if len(cfg.Commands.Scan) == 0 {
		errs = append(errs, "commands.scan must not be empty")
	}
	if len(cfg.Commands.Disconnect) == 0 {
		errs = append(errs, "commands.disconnect must not be empty")
	}
	if len(cfg.Commands.Interfaces) == 0 {
		errs = append(errs, "commands.interfaces must not be empty")
	}
	if !containsPlaceholder(cfg.Commands.Connect) {
		errs = append(errs, fmt.Sprintf("commands.connect must contain %q", netsh.SSIDPlaceholder))
	}

	if cfg.UI.LogHeight <= 0 {
		errs = append(errs, "ui.log_height must be positive")
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func containsPlaceholder(args []string) bool {
	for _, a := range args {
		if strings.Contains(a, netsh.SSIDPlaceholder) {
			return true
		}
	}
	return false
}
