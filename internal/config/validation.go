package config

import (
	"fmt"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	if c.Editor == "" {
		errs = append(errs, "editor must not be empty")
	}

	switch c.AfterSentinel {
	case AfterSentinelPassthrough, AfterSentinelResolve:
	default:
		errs = append(errs, fmt.Sprintf("after_sentinel must be %q or %q", AfterSentinelPassthrough, AfterSentinelResolve))
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, "log.level must be one of debug, info, warn, error")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, "log.format must be text or json")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
