package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"bisub/internal/services"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return services.Wrap(services.ErrConfiguration, "config", "validate", "", err)
	}
	if err := c.validateLogging(); err != nil {
		return services.Wrap(services.ErrConfiguration, "config", "validate", "", err)
	}
	if err := c.validateMerge(); err != nil {
		return services.Wrap(services.ErrConfiguration, "config", "validate", "", err)
	}
	return nil
}

func (c *Config) validateServer() error {
	if _, _, err := net.SplitHostPort(c.Server.Bind); err != nil {
		return fmt.Errorf("server.bind %q must be host:port: %w", c.Server.Bind, err)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errors.New("server.max_body_bytes must be positive")
	}
	if c.Server.MaxBodyBytes > maxAllowedBodyBytes {
		return fmt.Errorf("server.max_body_bytes must be <= %d", maxAllowedBodyBytes)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
}

func (c *Config) validateMerge() error {
	if strings.ContainsAny(c.Merge.OutputSuffix, `/\`) {
		return errors.New("merge.output_suffix must not contain path separators")
	}
	return nil
}
