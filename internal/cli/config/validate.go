package config

import (
	"fmt"
	"slices"
)

// OutputFormats lists the accepted values of the output key.
var OutputFormats = []string{"auto", "text", "json", "yaml"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	if c.OutputFormat != "" && !slices.Contains(OutputFormats, c.OutputFormat) {
		return fmt.Errorf("output must be one of %v, got %q", OutputFormats, c.OutputFormat)
	}
	if c.LogLevel != "" {
		if _, err := ParseLogLevel(c.LogLevel); err != nil {
			return err
		}
	}
	if c.Server != nil && c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}
