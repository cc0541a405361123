package config

import "fmt"

// Validate checks configuration values for obvious misconfiguration before
// the server starts, so failures happen at boot rather than mid-request.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}

	if c.DBMaxConns <= 0 {
		return fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns)
	}

	if c.DBName == "" {
		return fmt.Errorf("DB_NAME must not be empty")
	}

	if c.CatalogConfig == "" {
		return fmt.Errorf("CATALOG_CONFIG must not be empty")
	}

	return nil
}
