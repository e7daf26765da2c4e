package kv

import (
	"context"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	got, err := store.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("Get on missing key: %v", err)
	}
	if got != nil {
		t.Fatalf("missing key returned %q, want nil", got)
	}

	if err := store.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err = store.Get(ctx, "k")
	if err != nil || string(got) != "v1" {
		t.Fatalf("Get = (%q, %v), want (v1, nil)", got, err)
	}

	if err := store.Set(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, _ = store.Get(ctx, "k")
	if string(got) != "v2" {
		t.Fatalf("overwrite not visible, got %q", got)
	}

	if err := store.Remove(ctx, "k"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	got, _ = store.Get(ctx, "k")
	if got != nil {
		t.Fatalf("removed key returned %q, want nil", got)
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	src := []byte("original")
	if err := store.Set(ctx, "k", src); err != nil {
		t.Fatalf("Set: %v", err)
	}
	src[0] = 'X'

	got, _ := store.Get(ctx, "k")
	if string(got) != "original" {
		t.Fatalf("stored value mutated through caller slice: %q", got)
	}

	got[0] = 'Y'
	again, _ := store.Get(ctx, "k")
	if string(again) != "original" {
		t.Fatalf("stored value mutated through returned slice: %q", again)
	}
}
