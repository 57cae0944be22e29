package behavior

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for behavior configuration operations.
//
// The read operations never return errors: on any storage failure they
// degrade to the built-in defaults (or an empty override) so prompt
// assembly stays available on every conversation turn.
type System interface {
	Handler() *Handler

	Default(ctx context.Context) Config
	Override(ctx context.Context, tenantID uuid.UUID) Config
	Effective(ctx context.Context, tenantID uuid.UUID) Config

	SetDefault(ctx context.Context, cfg Config) (Config, error)
	SetOverride(ctx context.Context, tenantID uuid.UUID, cfg Config) (Config, error)
	ResetOverride(ctx context.Context, tenantID uuid.UUID) error

	// Refresh invalidates the cached platform default. Callers must invoke
	// it after administrator writes that bypass SetDefault.
	Refresh()
}
