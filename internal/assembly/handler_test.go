package assembly_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/TropoEU/concierge/internal/assembly"
	"github.com/TropoEU/concierge/internal/behavior"
	"github.com/TropoEU/concierge/internal/tenants"
	"github.com/TropoEU/concierge/pkg/pagination"
)

type mockBehavior struct {
	defaultFn   func(ctx context.Context) behavior.Config
	overrideFn  func(ctx context.Context, tenantID uuid.UUID) behavior.Config
	effectiveFn func(ctx context.Context, tenantID uuid.UUID) behavior.Config
}

func (m *mockBehavior) Handler() *behavior.Handler { return nil }

func (m *mockBehavior) Default(ctx context.Context) behavior.Config {
	if m.defaultFn != nil {
		return m.defaultFn(ctx)
	}
	return behavior.Defaults()
}

func (m *mockBehavior) Override(ctx context.Context, tenantID uuid.UUID) behavior.Config {
	if m.overrideFn != nil {
		return m.overrideFn(ctx, tenantID)
	}
	return behavior.Config{}
}

func (m *mockBehavior) Effective(ctx context.Context, tenantID uuid.UUID) behavior.Config {
	if m.effectiveFn != nil {
		return m.effectiveFn(ctx, tenantID)
	}
	return behavior.Defaults()
}

func (m *mockBehavior) SetDefault(ctx context.Context, cfg behavior.Config) (behavior.Config, error) {
	return behavior.Config{}, nil
}

func (m *mockBehavior) SetOverride(ctx context.Context, tenantID uuid.UUID, cfg behavior.Config) (behavior.Config, error) {
	return behavior.Config{}, nil
}

func (m *mockBehavior) ResetOverride(ctx context.Context, tenantID uuid.UUID) error { return nil }

func (m *mockBehavior) Refresh() {}

type mockTenantStore struct {
	findFn func(ctx context.Context, id uuid.UUID) (*tenants.Tenant, error)
}

func (m *mockTenantStore) Handler() *tenants.Handler { return nil }

func (m *mockTenantStore) List(ctx context.Context, page pagination.PageRequest, filters tenants.Filters) (*pagination.PageResult[tenants.Tenant], error) {
	return nil, nil
}

func (m *mockTenantStore) Find(ctx context.Context, id uuid.UUID) (*tenants.Tenant, error) {
	return m.findFn(ctx, id)
}

func (m *mockTenantStore) Create(ctx context.Context, cmd tenants.CreateCommand) (*tenants.Tenant, error) {
	return nil, nil
}

func (m *mockTenantStore) Update(ctx context.Context, id uuid.UUID, cmd tenants.UpdateCommand) (*tenants.Tenant, error) {
	return nil, nil
}

func (m *mockTenantStore) Delete(ctx context.Context, id uuid.UUID) error { return nil }

var renderTenantID = uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

func acmeTenants() *mockTenantStore {
	return &mockTenantStore{
		findFn: func(_ context.Context, id uuid.UUID) (*tenants.Tenant, error) {
			if id != renderTenantID {
				return nil, tenants.ErrNotFound
			}
			return &tenants.Tenant{
				ID:          renderTenantID,
				Name:        "acme",
				DisplayName: "Acme",
				Language:    "en",
				Active:      true,
			}, nil
		},
	}
}

func setupRenderMux(sys behavior.System, ts tenants.System) *http.ServeMux {
	h := assembly.NewHandler(sys, ts, slog.New(slog.NewTextHandler(io.Discard, nil)))

	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		mux.HandleFunc(route.Method+" "+group.Prefix+route.Pattern, route.Handler)
	}
	return mux
}

func TestHandlerPrompt(t *testing.T) {
	mux := setupRenderMux(&mockBehavior{}, acmeTenants())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/tenants/"+renderTenantID.String()+"/prompt", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var content assembly.PromptContent
	if err := json.NewDecoder(rec.Body).Decode(&content); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if content.TenantID != renderTenantID {
		t.Errorf("tenant_id = %v, want %v", content.TenantID, renderTenantID)
	}
	if !strings.Contains(content.Content, "You are a helpful customer support assistant for Acme.") {
		t.Errorf("prompt missing intro, got:\n%s", content.Content)
	}
	if !strings.Contains(content.Content, "CURRENT DATE & TIME") {
		t.Error("prompt missing date section")
	}
}

func TestHandlerPromptUnknownTenant(t *testing.T) {
	mux := setupRenderMux(&mockBehavior{}, acmeTenants())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/tenants/"+uuid.NewString()+"/prompt", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHandlerPreview(t *testing.T) {
	mux := setupRenderMux(&mockBehavior{}, acmeTenants())

	t.Run("renders unpersisted config", func(t *testing.T) {
		body := strings.NewReader(`{
			"config": {"intro_template": "You are a support assistant for {client_name}."},
			"language": "he"
		}`)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/tenants/"+renderTenantID.String()+"/behavior/preview", body)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var content assembly.PromptContent
		if err := json.NewDecoder(rec.Body).Decode(&content); err != nil {
			t.Fatalf("decode: %v", err)
		}

		if !strings.Contains(content.Content, "You are a support assistant for Acme.") {
			t.Errorf("preview should use the submitted intro, got:\n%s", content.Content)
		}
		if !strings.Contains(content.Content, "Always respond in Hebrew") {
			t.Error("preview should honor the requested language")
		}
	})

	t.Run("falls back to the stored override", func(t *testing.T) {
		sys := &mockBehavior{
			overrideFn: func(_ context.Context, _ uuid.UUID) behavior.Config {
				return behavior.Config{
					IntroTemplate: ptr("You represent {client_name}."),
				}
			},
		}
		mux := setupRenderMux(sys, acmeTenants())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/tenants/"+renderTenantID.String()+"/behavior/preview", strings.NewReader(`{}`))
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var content assembly.PromptContent
		if err := json.NewDecoder(rec.Body).Decode(&content); err != nil {
			t.Fatalf("decode: %v", err)
		}

		if !strings.Contains(content.Content, "You represent Acme.") {
			t.Errorf("preview should merge the stored override, got:\n%s", content.Content)
		}
	})

	t.Run("tools render tool sections", func(t *testing.T) {
		body := strings.NewReader(`{
			"tools": [{"name": "order_status", "description": "Look up an order by number."}]
		}`)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/tenants/"+renderTenantID.String()+"/behavior/preview", body)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var content assembly.PromptContent
		if err := json.NewDecoder(rec.Body).Decode(&content); err != nil {
			t.Fatalf("decode: %v", err)
		}

		if !strings.Contains(content.Content, "AVAILABLE TOOLS") {
			t.Error("preview missing tools section")
		}
		if !strings.Contains(content.Content, "- order_status: Look up an order by number.") {
			t.Error("preview missing tool listing")
		}
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/tenants/"+renderTenantID.String()+"/behavior/preview", strings.NewReader(`{`))
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}
