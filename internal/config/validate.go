package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	if err := c.API.validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	return nil
}

func (s *ServerConfig) validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535 (got %d)", s.Port)
	}
	if s.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be > 0 (got %s)", s.ShutdownTimeout)
	}
	return nil
}

func (a *APIConfig) validate() error {
	if a.PathPrefix != "" && !strings.HasPrefix(a.PathPrefix, "/") {
		return fmt.Errorf("path_prefix must start with '/' (got %q)", a.PathPrefix)
	}
	a.PathPrefix = strings.TrimSuffix(a.PathPrefix, "/")
	if a.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be > 0 (got %d)", a.MaxBodyBytes)
	}
	return nil
}
