package checksum

import (
	"errors"
	"testing"

	"github.com/fantom-foundation/graphcache/ident"
	"github.com/fantom-foundation/graphcache/store"
	"github.com/fantom-foundation/graphcache/store/memstore"
)

func TestReader_PassesThroughWhenDigestMatches(t *testing.T) {
	mem := memstore.New[string]()
	node := store.Node[string]{Value: "n0", Edges: []ident.ID{ident.Null}}
	if err := mem.Write(0, node); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	digest, err := Digest(node)
	if err != nil {
		t.Fatalf("digest failed: %v", err)
	}

	r := Wrap[string](mem, map[ident.ID][32]byte{0: digest})
	got, err := r.Read(0)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got.Value != node.Value {
		t.Errorf("got %+v, want %+v", got, node)
	}
}

func TestReader_DetectsMismatch(t *testing.T) {
	mem := memstore.New[string]()
	node := store.Node[string]{Value: "n0", Edges: []ident.ID{ident.Null}}
	if err := mem.Write(0, node); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	r := Wrap[string](mem, map[ident.ID][32]byte{0: {0xDE, 0xAD}})
	if _, err := r.Read(0); !errors.Is(err, store.ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
}

func TestReader_PassesThroughWhenNoDigestRegistered(t *testing.T) {
	mem := memstore.New[string]()
	node := store.Node[string]{Value: "n0"}
	if err := mem.Write(0, node); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	r := Wrap[string](mem, nil)
	if _, err := r.Read(0); err != nil {
		t.Errorf("expected pass-through without digest, got %v", err)
	}
}
