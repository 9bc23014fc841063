package store

import (
	"context"
	"testing"
)

func newTestStore(t *testing.T) *StateStore {
	t.Helper()
	s, err := NewStateStore(":memory:")
	if err != nil {
		t.Fatalf("opening in-memory store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing store: %v", err)
		}
	})
	return s
}

func TestGetAbsentKey(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.Get(context.Background(), StateKeyCompareFragment)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("Get reported a value for an absent key")
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, StateKeyCompareFragment, "task=fizzbuzz&lang=Go"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	value, ok, err := s.Get(ctx, StateKeyCompareFragment)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("Get reported absent after Set")
	}
	if value != "task=fizzbuzz&lang=Go" {
		t.Errorf("Get = %q", value)
	}
}

func TestSetReplacesValue(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, StateKeyCompareFragment, "task=fizzbuzz&lang=Go"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, StateKeyCompareFragment, "task=wordcount&lang=Python"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	value, ok, err := s.Get(ctx, StateKeyCompareFragment)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || value != "task=wordcount&lang=Python" {
		t.Errorf("Get = %q, %v; want the replacement value", value, ok)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "b", "2"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	value, ok, err := s.Get(ctx, "a")
	if err != nil || !ok || value != "1" {
		t.Errorf("Get(a) = %q, %v, %v", value, ok, err)
	}
}
