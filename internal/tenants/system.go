package tenants

import (
	"context"

	"github.com/google/uuid"

	"github.com/TropoEU/concierge/pkg/pagination"
)

// System defines the public contract for tenant domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Tenant], error)

	Find(ctx context.Context, id uuid.UUID) (*Tenant, error)
	Create(ctx context.Context, cmd CreateCommand) (*Tenant, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Tenant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
