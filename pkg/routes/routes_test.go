package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TropoEU/concierge/pkg/routes"
)

func respond(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(text))
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, routes.Group{
		Prefix: "/tenants",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: respond("list")},
			{Method: "GET", Pattern: "/{id}", Handler: respond("find")},
		},
		Children: []routes.Group{
			{
				Prefix: "/{id}/behavior",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: respond("behavior")},
				},
			},
		},
	})

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
		wantBody string
	}{
		{"group route", "GET", "/tenants", http.StatusOK, "list"},
		{"path value route", "GET", "/tenants/abc", http.StatusOK, "find"},
		{"nested child route", "GET", "/tenants/abc/behavior", http.StatusOK, "behavior"},
		{"wrong method", "DELETE", "/tenants", http.StatusMethodNotAllowed, ""},
		{"unknown path", "GET", "/unknown", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRegisterMultipleGroups(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux,
		routes.Group{
			Prefix: "/tenants",
			Routes: []routes.Route{{Method: "GET", Pattern: "", Handler: respond("tenants")}},
		},
		routes.Group{
			Prefix: "/behavior",
			Routes: []routes.Route{{Method: "GET", Pattern: "/default", Handler: respond("default")}},
		},
	)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/behavior/default", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "default" {
		t.Errorf("status = %d body = %q", rec.Code, rec.Body.String())
	}
}
