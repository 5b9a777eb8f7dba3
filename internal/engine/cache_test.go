package engine

import (
	"context"
	"testing"
	"time"
)

func TestCacheKey_Deterministic(t *testing.T) {
	a := CacheKey("creator_search", "camping", "KR")
	b := CacheKey("creator_search", "camping", "KR")
	c := CacheKey("creator_search", "camping", "US")
	if a != b {
		t.Error("same parts must produce the same key")
	}
	if a == c {
		t.Error("different parts must produce different keys")
	}
}

func TestCache_L1RoundTrip(t *testing.T) {
	InitCache("", time.Minute, 100, time.Minute)
	ctx := context.Background()

	type payload struct {
		Total int `json:"total"`
	}
	key := CacheKey("test", t.Name())

	if _, ok := CacheLoadJSON[payload](ctx, key); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	CacheStoreJSON(ctx, key, payload{Total: 7})
	got, ok := CacheLoadJSON[payload](ctx, key)
	if !ok {
		t.Fatal("expected hit after store")
	}
	if got.Total != 7 {
		t.Errorf("cached value = %+v, want Total=7", got)
	}
}

func TestCache_NilSafe(t *testing.T) {
	resultCache = nil
	ctx := context.Background()
	if _, ok := CacheGet(ctx, "k"); ok {
		t.Error("uninitialized cache must miss, not panic")
	}
	CacheSet(ctx, "k", []byte("v")) // must not panic
}
