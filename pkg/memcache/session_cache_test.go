package mem_test

import (
	"testing"
	"time"

	mem "swoon/pkg/memcache"
)

func TestSessionCache_SetGetInvalidate(t *testing.T) {
	cache := mem.NewSessionCache()

	snap := mem.SessionSnapshot{
		Decided:   map[string]string{"v1": "like"},
		Exhausted: false,
	}
	cache.Set("user-1", "discovery", snap, time.Minute)

	got, ok := cache.Get("user-1", "discovery")
	if !ok {
		t.Fatal("expected cached snapshot")
	}
	if got.Decided["v1"] != "like" {
		t.Fatalf("unexpected snapshot contents: %v", got.Decided)
	}

	if _, ok := cache.Get("user-1", "onboarding"); ok {
		t.Fatal("sessions must not share cache entries")
	}

	cache.Invalidate("user-1", "discovery")
	if _, ok := cache.Get("user-1", "discovery"); ok {
		t.Fatal("expected entry to be invalidated")
	}
}

func TestSessionCache_Expiry(t *testing.T) {
	cache := mem.NewSessionCache()
	cache.Set("user-1", "discovery", mem.SessionSnapshot{}, -time.Second)

	if _, ok := cache.Get("user-1", "discovery"); ok {
		t.Fatal("expected expired entry to be absent")
	}
}
