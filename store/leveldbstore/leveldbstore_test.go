package leveldbstore

import (
	"errors"
	"testing"

	"github.com/fantom-foundation/graphcache/ident"
	"github.com/fantom-foundation/graphcache/store"
)

func TestStore_WriteReadCloseReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open[int](dir)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	want := store.Node[int]{Value: 42, Edges: []ident.ID{1, ident.Null}}
	if err := s.Write(0, want); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	s2, err := Open[int](dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	got, err := s2.Read(0)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got.Value != want.Value || len(got.Edges) != len(want.Edges) || got.Edges[0] != want.Edges[0] {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestStore_ReadMissingReturnsNotFound(t *testing.T) {
	dir := t.TempDir()
	s, err := Open[int](dir)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer s.Close()

	if _, err := s.Read(99); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
