package tenants

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/TropoEU/concierge/pkg/pagination"
	"github.com/TropoEU/concierge/pkg/query"
	"github.com/TropoEU/concierge/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a tenant repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "tenants"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Tenant], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "DisplayName")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count tenants: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	tenants, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanTenant)
	if err != nil {
		return nil, fmt.Errorf("query tenants: %w", err)
	}

	result := pagination.NewPageResult(tenants, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Tenant, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	t, err := repository.QueryOne(ctx, r.db, q, args, scanTenant)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &t, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Tenant, error) {
	if cmd.Name == "" {
		return nil, ErrNameMissing
	}
	cmd.Normalize()

	q := `
		INSERT INTO tenants(name, display_name, language)
		VALUES ($1, $2, $3)
		RETURNING id, name, display_name, language, active, created_at, updated_at`

	args := []any{cmd.Name, cmd.DisplayName, cmd.Language}

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Tenant, error) {
		return repository.QueryOne(ctx, tx, q, args, scanTenant)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("tenant created", "id", t.ID, "name", t.Name)
	return &t, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Tenant, error) {
	if cmd.Name == "" {
		return nil, ErrNameMissing
	}

	q := `
		UPDATE tenants
		SET name = $1, display_name = $2, language = $3, active = $4, updated_at = now()
		WHERE id = $5
		RETURNING id, name, display_name, language, active, created_at, updated_at`

	args := []any{cmd.Name, cmd.DisplayName, cmd.Language, cmd.Active, id}

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Tenant, error) {
		return repository.QueryOne(ctx, tx, q, args, scanTenant)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("tenant updated", "id", t.ID, "name", t.Name)
	return &t, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM tenants WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("tenant deleted", "id", id)
	return nil
}
