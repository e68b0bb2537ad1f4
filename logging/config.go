// Package logging provides a structured JSON logger backed by zap.
package logging

import (
	"io"
	"os"
)

// Config configures a Logger.
type Config struct {
	// ServiceName identifies the process in every entry.
	ServiceName string

	// MinLevel is the lowest level written.
	MinLevel Level

	// Output receives JSON lines. Defaults to stderr.
	Output io.Writer
}

func (c *Config) normalize() {
	if c.ServiceName == "" {
		c.ServiceName = "unknown"
	}
	if c.Output == nil {
		c.Output = os.Stderr
	}
}
