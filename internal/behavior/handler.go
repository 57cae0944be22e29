package behavior

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/TropoEU/concierge/internal/tenants"
	"github.com/TropoEU/concierge/pkg/handlers"
	"github.com/TropoEU/concierge/pkg/routes"
)

// Handler provides HTTP endpoints for behavior configuration management.
type Handler struct {
	sys     System
	tenants tenants.System
	logger  *slog.Logger
}

// NewHandler creates a Handler with the given systems and logger.
func NewHandler(sys System, tenants tenants.System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:     sys,
		tenants: tenants,
		logger:  logger.With("handler", "behavior"),
	}
}

// Routes returns the tenant-scoped route group for behavior endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/tenants",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{id}/behavior", Handler: h.View},
			{Method: "PUT", Pattern: "/{id}/behavior", Handler: h.Update},
			{Method: "DELETE", Pattern: "/{id}/behavior", Handler: h.Reset},
		},
	}
}

// AdminRoutes returns the platform-level route group for default config
// management.
func (h *Handler) AdminRoutes() routes.Group {
	return routes.Group{
		Prefix: "/behavior",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/default", Handler: h.Default},
			{Method: "PUT", Pattern: "/default", Handler: h.SetDefault},
			{Method: "POST", Pattern: "/refresh", Handler: h.Refresh},
		},
	}
}

// View returns the dashboard view of a tenant's behavior configuration.
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}

	def := h.sys.Default(r.Context())
	override := h.sys.Override(r.Context(), tenant.ID)

	handlers.RespondJSON(w, http.StatusOK, NewView(def, override))
}

// Update replaces a tenant's stored override wholesale with the JSON body.
// An empty object resets the tenant to platform defaults.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}

	var cfg Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest,
			fmt.Errorf("%w: %w", ErrInvalidConfig, err))
		return
	}

	if _, err := h.sys.SetOverride(r.Context(), tenant.ID, cfg); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	def := h.sys.Default(r.Context())
	handlers.RespondJSON(w, http.StatusOK, NewView(def, cfg))
}

// Reset clears a tenant's override, returning it to platform defaults.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}

	if err := h.sys.ResetOverride(r.Context(), tenant.ID); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Default returns the full platform default configuration, instruction
// maps included.
func (h *Handler) Default(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.Default(r.Context()))
}

// SetDefault replaces the platform default configuration and invalidates
// the cache.
func (h *Handler) SetDefault(w http.ResponseWriter, r *http.Request) {
	var cfg Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest,
			fmt.Errorf("%w: %w", ErrInvalidConfig, err))
		return
	}

	updated, err := h.sys.SetDefault(r.Context(), cfg)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, updated)
}

// Refresh invalidates the cached default config. Intended for operators
// after out-of-band writes to the default row.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.sys.Refresh()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) resolveTenant(w http.ResponseWriter, r *http.Request) (*tenants.Tenant, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, tenants.ErrNotFound)
		return nil, false
	}

	tenant, err := h.tenants.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, tenants.MapHTTPStatus(err), err)
		return nil, false
	}

	return tenant, true
}
