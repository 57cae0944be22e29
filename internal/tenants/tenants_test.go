package tenants_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/TropoEU/concierge/internal/tenants"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", tenants.ErrNotFound, http.StatusNotFound},
		{"duplicate", tenants.ErrDuplicate, http.StatusConflict},
		{"name missing", tenants.ErrNameMissing, http.StatusBadRequest},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("find failed: %w", tenants.ErrNotFound), http.StatusNotFound},
		{"wrapped duplicate", fmt.Errorf("insert failed: %w", tenants.ErrDuplicate), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tenants.MapHTTPStatus(tt.err)
			if got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestCreateCommandNormalize(t *testing.T) {
	tests := []struct {
		name            string
		cmd             tenants.CreateCommand
		wantDisplayName string
		wantLanguage    string
	}{
		{
			"defaults applied",
			tenants.CreateCommand{Name: "acme"},
			"acme",
			"en",
		},
		{
			"explicit values kept",
			tenants.CreateCommand{Name: "acme", DisplayName: "Acme Corp", Language: "he"},
			"Acme Corp",
			"he",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cmd.Normalize()
			if tt.cmd.DisplayName != tt.wantDisplayName {
				t.Errorf("DisplayName = %q, want %q", tt.cmd.DisplayName, tt.wantDisplayName)
			}
			if tt.cmd.Language != tt.wantLanguage {
				t.Errorf("Language = %q, want %q", tt.cmd.Language, tt.wantLanguage)
			}
		})
	}
}

func TestFiltersFromQuery(t *testing.T) {
	t.Run("all filters", func(t *testing.T) {
		values := url.Values{}
		values.Set("name", "acme")
		values.Set("language", "he")
		values.Set("active", "true")

		f := tenants.FiltersFromQuery(values)

		if f.Name == nil || *f.Name != "acme" {
			t.Errorf("Name = %v, want acme", f.Name)
		}
		if f.Language == nil || *f.Language != "he" {
			t.Errorf("Language = %v, want he", f.Language)
		}
		if f.Active == nil || !*f.Active {
			t.Errorf("Active = %v, want true", f.Active)
		}
	})

	t.Run("empty query", func(t *testing.T) {
		f := tenants.FiltersFromQuery(url.Values{})

		if f.Name != nil || f.Language != nil || f.Active != nil {
			t.Errorf("empty query should produce empty filters, got %+v", f)
		}
	})

	t.Run("invalid active ignored", func(t *testing.T) {
		values := url.Values{}
		values.Set("active", "maybe")

		f := tenants.FiltersFromQuery(values)

		if f.Active != nil {
			t.Errorf("Active = %v, want nil", f.Active)
		}
	})
}
