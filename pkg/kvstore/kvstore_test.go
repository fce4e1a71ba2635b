package kvstore_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/giorgi26/Planner/pkg/kvstore"
)

func exerciseStore(t *testing.T, s kvstore.Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "planner_tasks", []byte(`[]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "planner_tasks", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, ok, err := s.Get(ctx, "planner_tasks")
	if err != nil || !ok {
		t.Fatalf("Get ok=%v err=%v", ok, err)
	}
	if string(got) != `[{"id":"1"}]` {
		t.Errorf("expected last write to win, got %s", got)
	}
}

func TestMemory(t *testing.T) {
	s := kvstore.NewMemory()
	exerciseStore(t, s)

	// Returned values are copies.
	ctx := context.Background()
	v, _, _ := s.Get(ctx, "planner_tasks")
	v[0] = 'X'
	again, _, _ := s.Get(ctx, "planner_tasks")
	if again[0] == 'X' {
		t.Error("mutating a returned value changed the store")
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Set(ctx, "k", nil); !errors.Is(err, kvstore.ErrClosed) {
		t.Errorf("expected ErrClosed after Close, got %v", err)
	}
}

func TestSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.db")
	s, err := kvstore.NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	exerciseStore(t, s)
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Data survives reopening.
	reopened, err := kvstore.NewSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	got, ok, err := reopened.Get(context.Background(), "planner_tasks")
	if err != nil || !ok || string(got) != `[{"id":"1"}]` {
		t.Errorf("after reopen got=%s ok=%v err=%v", got, ok, err)
	}
}

func TestOpen(t *testing.T) {
	if _, err := kvstore.Open(kvstore.Config{Driver: "memory"}); err != nil {
		t.Errorf("memory driver: %v", err)
	}
	if _, err := kvstore.Open(kvstore.Config{Driver: "redis"}); err == nil {
		t.Error("expected error for unknown driver")
	}
}
