package devicecache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/grocerly/appcore/pkg/config"
	"github.com/grocerly/appcore/pkg/types"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := New(config.DeviceCacheConfig{
		Path: filepath.Join(t.TempDir(), "device.db"),
	}, nil)
	if err != nil {
		t.Fatalf("failed to open device cache: %v", err)
	}
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestNew_RequiresPath(t *testing.T) {
	if _, err := New(config.DeviceCacheConfig{}, nil); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestCachedUserID_EmptyCache(t *testing.T) {
	cache := newTestCache(t)

	id, err := cache.CachedUserID(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 0 {
		t.Fatalf("expected zero id from empty cache, got %d", id)
	}

	user, err := cache.CachedUser(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil user from empty cache, got %+v", user)
	}
}

func TestSaveUser_RoundTripsWithoutToken(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	err := cache.SaveUser(ctx, types.User{
		ID:      42,
		Name:    "Asha",
		Email:   "asha@example.com",
		Phone:   "9876543210",
		Role:    "customer",
		Address: "12 Market Road",
		Pincode: "560001",
		Token:   "jwt-should-not-persist",
	})
	if err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	id, err := cache.CachedUserID(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected cached id 42, got %d", id)
	}

	user, err := cache.CachedUser(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user == nil || user.Name != "Asha" || user.Pincode != "560001" {
		t.Fatalf("unexpected cached user: %+v", user)
	}
	if user.Token != "" {
		t.Fatalf("token must not survive the cache round trip")
	}
}

func TestSaveUser_OverwritesPreviousIdentity(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.SaveUser(ctx, types.User{ID: 1, Name: "First"}); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if err := cache.SaveUser(ctx, types.User{ID: 2, Name: "Second"}); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	id, err := cache.CachedUserID(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 2 {
		t.Fatalf("expected latest identity to win, got %d", id)
	}
}

func TestClear_RemovesIdentity(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.SaveUser(ctx, types.User{ID: 7}); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if err := cache.Clear(ctx); err != nil {
		t.Fatalf("unexpected clear error: %v", err)
	}
	if err := cache.Clear(ctx); err != nil {
		t.Fatalf("clearing an empty cache should not error: %v", err)
	}

	id, err := cache.CachedUserID(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 0 {
		t.Fatalf("expected cleared cache, got id %d", id)
	}
}
