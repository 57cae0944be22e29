package api

import (
	"github.com/TropoEU/concierge/internal/assembly"
	"github.com/TropoEU/concierge/internal/behavior"
	"github.com/TropoEU/concierge/internal/tenants"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Tenants  tenants.System
	Behavior behavior.System
	Prompt   *assembly.Handler
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	tenantsSystem := tenants.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	behaviorSystem := behavior.New(
		runtime.Database.Connection(),
		runtime.Logger,
		tenantsSystem,
	)

	return &Domain{
		Tenants:  tenantsSystem,
		Behavior: behaviorSystem,
		Prompt:   assembly.NewHandler(behaviorSystem, tenantsSystem, runtime.Logger),
	}
}
