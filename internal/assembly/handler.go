package assembly

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/TropoEU/concierge/internal/behavior"
	"github.com/TropoEU/concierge/internal/tenants"
	"github.com/TropoEU/concierge/pkg/handlers"
	"github.com/TropoEU/concierge/pkg/routes"
)

// Handler provides HTTP endpoints that render assembled prompts from a
// tenant's behavior configuration.
type Handler struct {
	behavior behavior.System
	tenants  tenants.System
	logger   *slog.Logger
	now      func() time.Time
}

// PreviewCommand carries an optional unpersisted override plus render
// context for the dashboard's prompt preview. Nil fields fall back to the
// tenant's stored override and configured language.
type PreviewCommand struct {
	Config   *behavior.Config `json:"config,omitempty"`
	Language *string          `json:"language,omitempty"`
	Tools    []Tool           `json:"tools,omitempty"`
}

// PromptContent is the response type for assembled prompt endpoints.
type PromptContent struct {
	TenantID uuid.UUID `json:"tenant_id"`
	Content  string    `json:"content"`
}

// NewHandler creates a Handler over the behavior and tenant systems.
func NewHandler(behaviorSys behavior.System, tenantSys tenants.System, logger *slog.Logger) *Handler {
	return &Handler{
		behavior: behaviorSys,
		tenants:  tenantSys,
		logger:   logger.With("handler", "assembly"),
		now:      time.Now,
	}
}

// Routes returns the tenant-scoped route group for prompt rendering.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/tenants",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/{id}/behavior/preview", Handler: h.Preview},
			{Method: "GET", Pattern: "/{id}/prompt", Handler: h.Prompt},
		},
	}
}

// Preview renders the prompt for an unpersisted override so administrators
// can inspect changes before saving them.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}

	var cmd PreviewCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest,
			fmt.Errorf("%w: %w", behavior.ErrInvalidConfig, err))
		return
	}

	override := h.behavior.Override(r.Context(), tenant.ID)
	if cmd.Config != nil {
		override = *cmd.Config
	}

	language := tenant.Language
	if cmd.Language != nil {
		language = *cmd.Language
	}

	effective := behavior.Merge(h.behavior.Default(r.Context()), override)
	content := Render(effective, Context{
		ClientName: tenant.DisplayName,
		Language:   language,
		Now:        h.now(),
		Tools:      cmd.Tools,
	})

	handlers.RespondJSON(w, http.StatusOK, PromptContent{
		TenantID: tenant.ID,
		Content:  content,
	})
}

// Prompt returns the assembled instruction text for a tenant using its
// stored configuration and the current clock.
func (h *Handler) Prompt(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}

	effective := h.behavior.Effective(r.Context(), tenant.ID)
	content := Render(effective, Context{
		ClientName: tenant.DisplayName,
		Language:   tenant.Language,
		Now:        h.now(),
	})

	handlers.RespondJSON(w, http.StatusOK, PromptContent{
		TenantID: tenant.ID,
		Content:  content,
	})
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
