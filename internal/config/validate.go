package config

import (
	"fmt"
	"net"
	"slices"
	"strconv"
	"strings"
	"time"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if len(c.CORS.Origins()) == 0 {
		return fmt.Errorf("cors: allowed_origins must not be empty")
	}

	return nil
}

func (s *ServerConfig) validate() error {
	_, port, err := net.SplitHostPort(s.Addr)
	if err != nil {
		return fmt.Errorf("addr %q: %w", s.Addr, err)
	}
	if n, err := strconv.Atoi(port); err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("addr %q: invalid port", s.Addr)
	}

	for name, d := range map[string]time.Duration{
		"read_timeout":     s.ReadTimeout,
		"write_timeout":    s.WriteTimeout,
		"idle_timeout":     s.IdleTimeout,
		"shutdown_timeout": s.ShutdownTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be > 0", name)
		}
	}

	return nil
}

func (l *LogConfig) validate() error {
	if !slices.Contains(logLevels, strings.ToLower(l.Level)) {
		return fmt.Errorf("level %q must be one of %s", l.Level, strings.Join(logLevels, ", "))
	}
	if !slices.Contains(logFormats, strings.ToLower(l.Format)) {
		return fmt.Errorf("format %q must be one of %s", l.Format, strings.Join(logFormats, ", "))
	}
	return nil
}
