package behavior_test

import (
	"testing"

	"github.com/TropoEU/concierge/internal/behavior"
)

func TestCacheGet(t *testing.T) {
	cache := behavior.NewCache()

	calls := 0
	load := func() (behavior.Config, bool) {
		calls++
		return behavior.Defaults(), true
	}

	first := cache.Get(load)
	second := cache.Get(load)

	if calls != 1 {
		t.Errorf("load called %d times, want 1", calls)
	}
	if first.IntroTemplate == nil || second.IntroTemplate == nil {
		t.Fatal("cached config should round-trip intact")
	}
	if *first.IntroTemplate != *second.IntroTemplate {
		t.Error("repeated gets should return the same configuration")
	}
}

func TestCacheInvalidate(t *testing.T) {
	cache := behavior.NewCache()

	calls := 0
	load := func() (behavior.Config, bool) {
		calls++
		return behavior.Defaults(), true
	}

	cache.Get(load)
	cache.Invalidate()
	cache.Get(load)

	if calls != 2 {
		t.Errorf("load called %d times after invalidation, want 2", calls)
	}
}

func TestCacheReturnsCopies(t *testing.T) {
	cache := behavior.NewCache()
	load := func() (behavior.Config, bool) { return behavior.Defaults(), true }

	got := cache.Get(load)
	*got.ReasoningEnabled = false
	got.ToneInstructions[behavior.ToneFriendly] = "mutated"
	got.ReasoningSteps[0].Title = "mutated"

	fresh := cache.Get(load)

	if !*fresh.ReasoningEnabled {
		t.Error("mutating a returned config leaked into the cache")
	}
	if fresh.ToneInstructions[behavior.ToneFriendly] == "mutated" {
		t.Error("mutating a returned map leaked into the cache")
	}
	if fresh.ReasoningSteps[0].Title == "mutated" {
		t.Error("mutating a returned slice leaked into the cache")
	}
}

func TestCacheSkipsUncacheableLoads(t *testing.T) {
	cache := behavior.NewCache()

	stored := behavior.Defaults()
	stored.IntroTemplate = ptr("You represent {client_name}.")

	calls := 0
	load := func() (behavior.Config, bool) {
		calls++
		if calls == 1 {
			return behavior.Defaults(), false
		}
		return stored, true
	}

	first := cache.Get(load)
	if *first.IntroTemplate == *stored.IntroTemplate {
		t.Fatal("first get should serve the fallback")
	}

	second := cache.Get(load)
	if *second.IntroTemplate != *stored.IntroTemplate {
		t.Error("a failed load should not pin the fallback past the next get")
	}

	cache.Get(load)
	if calls != 2 {
		t.Errorf("load called %d times, want 2: the recovered result should be cached", calls)
	}
}
