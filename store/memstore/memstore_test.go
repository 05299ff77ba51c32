package memstore

import (
	"errors"
	"testing"

	"github.com/fantom-foundation/graphcache/ident"
	"github.com/fantom-foundation/graphcache/store"
)

func TestStore_ReadMissingReturnsNotFound(t *testing.T) {
	s := New[int]()
	if _, err := s.Read(5); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_WriteThenRead(t *testing.T) {
	s := New[string]()
	want := store.Node[string]{Value: "n0", Edges: []ident.ID{1, ident.Null}}
	if err := s.Write(0, want); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := s.Read(0)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got.Value != want.Value || len(got.Edges) != len(want.Edges) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
