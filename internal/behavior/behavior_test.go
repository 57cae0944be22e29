package behavior_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/TropoEU/concierge/internal/behavior"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid config", behavior.ErrInvalidConfig, http.StatusBadRequest},
		{"wrapped invalid config", fmt.Errorf("decode failed: %w", behavior.ErrInvalidConfig), http.StatusBadRequest},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := behavior.MapHTTPStatus(tt.err)
			if got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	cfg := behavior.Defaults()

	if cfg.ReasoningEnabled == nil || !*cfg.ReasoningEnabled {
		t.Error("defaults should enable reasoning")
	}
	if len(cfg.ReasoningSteps) != 3 {
		t.Errorf("len(ReasoningSteps) = %d, want 3", len(cfg.ReasoningSteps))
	}
	if cfg.ResponseStyle == nil || cfg.ResponseStyle.Tone == nil || *cfg.ResponseStyle.Tone != behavior.ToneFriendly {
		t.Error("default tone should be friendly")
	}
	if cfg.ResponseStyle.MaxSentences != nil {
		t.Error("defaults should not cap sentence count")
	}
	if cfg.IntroTemplate == nil {
		t.Fatal("defaults should set an intro template")
	}
	if cfg.CustomInstructions != nil {
		t.Error("defaults should not carry custom instructions")
	}
}

func TestDefaultLookups(t *testing.T) {
	t.Run("tone", func(t *testing.T) {
		for _, key := range []string{behavior.ToneFriendly, behavior.ToneProfessional, behavior.ToneCasual} {
			if _, ok := behavior.ToneInstruction(key); !ok {
				t.Errorf("ToneInstruction(%q) missing", key)
			}
		}
		if _, ok := behavior.ToneInstruction("grumpy"); ok {
			t.Error("unknown tone should not resolve")
		}
	})

	t.Run("formality", func(t *testing.T) {
		for _, key := range []string{behavior.FormalityCasual, behavior.FormalityNeutral, behavior.FormalityFormal} {
			if _, ok := behavior.FormalityInstruction(key); !ok {
				t.Errorf("FormalityInstruction(%q) missing", key)
			}
		}
	})

	t.Run("languages", func(t *testing.T) {
		if name, ok := behavior.LanguageName("he"); !ok || name != "Hebrew" {
			t.Errorf("LanguageName(he) = %q, %v", name, ok)
		}
		if _, ok := behavior.LanguageName("xx"); ok {
			t.Error("unknown language code should not resolve")
		}
	})

	t.Run("tool instructions", func(t *testing.T) {
		for _, key := range []string{"format", "after_result"} {
			if _, ok := behavior.ToolInstruction(key); !ok {
				t.Errorf("ToolInstruction(%q) missing", key)
			}
		}
	})
}

func TestDefaultsReturnsCopies(t *testing.T) {
	first := behavior.Defaults()
	first.ToneInstructions[behavior.ToneFriendly] = "mutated"
	first.ReasoningSteps[0].Title = "mutated"

	second := behavior.Defaults()

	if second.ToneInstructions[behavior.ToneFriendly] == "mutated" {
		t.Error("mutating a returned map leaked into the built-in defaults")
	}
	if second.ReasoningSteps[0].Title == "mutated" {
		t.Error("mutating a returned slice leaked into the built-in defaults")
	}
}
