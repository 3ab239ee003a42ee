// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"

	"github.com/tablecraft/tablecraft/internal/config"
)

// Create builds the PostgreSQL Data Source Name from the configuration.
// A full connection URI in DB.URI wins over the individual fields.
func Create(cfg *config.Config) string {
	if cfg.DB.URI != "" {
		return cfg.DB.URI
	}

	sslMode := cfg.DB.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		sslMode,
	)

	if cfg.DB.Extras != "" {
		out = out + " " + cfg.DB.Extras
	}

	return out
}
