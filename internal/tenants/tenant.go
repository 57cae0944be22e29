// Package tenants implements the tenant domain for Concierge.
// It provides types, data access, and HTTP handlers for the customer
// businesses whose support assistants this service configures.
package tenants

import (
	"time"

	"github.com/google/uuid"
)

// Tenant represents a customer business using the platform.
// Language is the BCP 47 primary-subtag code the tenant's assistant
// responds in; DisplayName is substituted into prompt intro templates.
type Tenant struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Language    string    `json:"language"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to register a new tenant.
type CreateCommand struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Language    string `json:"language"`
}

// UpdateCommand carries the data needed to update an existing tenant.
type UpdateCommand struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Language    string `json:"language"`
	Active      bool   `json:"active"`
}

// Normalize applies defaults to optional command fields.
func (c *CreateCommand) Normalize() {
	if c.DisplayName == "" {
		c.DisplayName = c.Name
	}
	if c.Language == "" {
		c.Language = "en"
	}
}
