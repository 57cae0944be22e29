package config

import (
	"fmt"
	"strings"

	"github.com/TropoEU/concierge/pkg/middleware"
	"github.com/TropoEU/concierge/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "CONCIERGE_API_CORS_ENABLED",
	Origins:          "CONCIERGE_API_CORS_ORIGINS",
	AllowedMethods:   "CONCIERGE_API_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "CONCIERGE_API_CORS_ALLOWED_HEADERS",
	AllowCredentials: "CONCIERGE_API_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "CONCIERGE_API_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "CONCIERGE_API_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "CONCIERGE_API_MAX_PAGE_SIZE",
}

// APIConfig holds API module parameters.
type APIConfig struct {
	BasePath   string                `toml:"base_path"`
	CORS       middleware.CORSConfig `toml:"cors"`
	Pagination pagination.Config     `toml:"pagination"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
}

func (c *APIConfig) validate() error {
	if !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("base_path must start with /: %s", c.BasePath)
	}
	return nil
}
