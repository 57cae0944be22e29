package behavior

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/TropoEU/concierge/internal/tenants"
	"github.com/TropoEU/concierge/pkg/query"
	"github.com/TropoEU/concierge/pkg/repository"
)

type store struct {
	db      *sql.DB
	logger  *slog.Logger
	cache   *Cache
	tenants tenants.System
}

// New creates a behavior store implementing the System interface.
// The tenant system resolves display names and response languages
// for the render endpoints.
func New(db *sql.DB, logger *slog.Logger, tenants tenants.System) System {
	return &store{
		db:      db,
		logger:  logger.With("system", "behavior"),
		cache:   NewCache(),
		tenants: tenants,
	}
}

func (s *store) Handler() *Handler {
	return NewHandler(s, s.tenants, s.logger)
}

// Default returns the platform default configuration, served from the
// process-wide cache after first load. A missing row or storage failure
// falls back to the built-in defaults: prompt assembly is on the hot path
// of every conversation turn and must not fail on a degraded database.
func (s *store) Default(ctx context.Context) Config {
	return s.cache.Get(func() (Config, bool) {
		return s.loadDefault(ctx)
	})
}

// loadDefault reports whether its result is stable enough to cache. A
// missing or malformed row is a durable state, fixed only by a write that
// also invalidates the cache. A transient storage failure is not: the
// fallback is served once and the next read retries the database.
func (s *store) loadDefault(ctx context.Context) (Config, bool) {
	rec, err := s.find(ctx, uuid.Nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("default config row missing, using built-in defaults")
			return Defaults(), true
		}
		s.logger.Warn("default config unavailable, using built-in defaults", "error", err)
		return Defaults(), false
	}

	cfg := DecodeConfig(rec.Raw)
	if cfg.IsZero() {
		s.logger.Warn("default config row empty or malformed, using built-in defaults")
		return Defaults(), true
	}

	// stored defaults may predate newly added fields
	return Merge(Defaults(), cfg), true
}

// Override returns the tenant's partial configuration. A tenant that has
// customized nothing, a missing row, or a storage failure all yield the
// zero Config.
func (s *store) Override(ctx context.Context, tenantID uuid.UUID) Config {
	rec, err := s.find(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("override fetch failed, treating as uncustomized",
				"tenant_id", tenantID, "error", err)
		}
		return Config{}
	}

	return DecodeConfig(rec.Raw)
}

// Effective loads the default and override layers concurrently and merges
// them into the tenant's effective configuration.
func (s *store) Effective(ctx context.Context, tenantID uuid.UUID) Config {
	var def, override Config

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		def = s.Default(gctx)
		return nil
	})
	g.Go(func() error {
		override = s.Override(gctx, tenantID)
		return nil
	})
	g.Wait()

	return Merge(def, override)
}

func (s *store) SetDefault(ctx context.Context, cfg Config) (Config, error) {
	if err := s.upsert(ctx, uuid.Nil, cfg); err != nil {
		return Config{}, fmt.Errorf("set default config: %w", err)
	}

	s.cache.Invalidate()
	s.logger.Info("default config updated")

	return s.Default(ctx), nil
}

func (s *store) SetOverride(ctx context.Context, tenantID uuid.UUID, cfg Config) (Config, error) {
	if err := s.upsert(ctx, tenantID, cfg); err != nil {
		return Config{}, fmt.Errorf("set override for %s: %w", tenantID, err)
	}

	s.logger.Info("tenant override updated",
		"tenant_id", tenantID,
		"customized", Customized(cfg),
	)

	return s.Effective(ctx, tenantID), nil
}

// ResetOverride stores the empty object, returning the tenant to platform
// defaults. The row itself is kept.
func (s *store) ResetOverride(ctx context.Context, tenantID uuid.UUID) error {
	if err := s.upsert(ctx, tenantID, Config{}); err != nil {
		return fmt.Errorf("reset override for %s: %w", tenantID, err)
	}

	s.logger.Info("tenant override reset", "tenant_id", tenantID)
	return nil
}

func (s *store) Refresh() {
	s.cache.Invalidate()
	s.logger.Info("default config cache invalidated")
}

func (s *store) find(ctx context.Context, tenantID uuid.UUID) (record, error) {
	q, args := query.
		NewBuilder(projection).
		WhereEquals("TenantID", tenantID).
		BuildSingleOrNull()

	return repository.QueryOne(ctx, s.db, q, args, scanRecord)
}

func (s *store) upsert(ctx context.Context, tenantID uuid.UUID, cfg Config) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	q := `
		INSERT INTO prompt_configs(tenant_id, config, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (tenant_id)
		DO UPDATE SET config = EXCLUDED.config, updated_at = now()`

	_, err = repository.WithTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		_, err := tx.ExecContext(ctx, q, tenantID, raw)
		return struct{}{}, err
	})

	return err
}
