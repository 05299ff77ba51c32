package random

import "testing"

func TestPolicy_EmptyHasNoVictim(t *testing.T) {
	p := New[int](1)
	if _, ok := p.ChooseVictim(); ok {
		t.Errorf("empty policy should not offer a victim")
	}
}

func TestPolicy_ChooseVictimOnlyReturnsEligibleMembers(t *testing.T) {
	p := New[int](7)
	want := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}
	for id := range want {
		p.OnUnpinned(id)
	}

	got := map[int]bool{}
	for i := 0; i < len(want); i++ {
		id, ok := p.ChooseVictim()
		if !ok {
			t.Fatalf("expected a victim while eligible set is non-empty")
		}
		if !want[id] {
			t.Errorf("victim %d is not a member of the eligible set", id)
		}
		if got[id] {
			t.Errorf("victim %d returned twice", id)
		}
		got[id] = true
	}
	if len(got) != len(want) {
		t.Errorf("expected to drain all %d eligible entries, got %d", len(want), len(got))
	}
	if _, ok := p.ChooseVictim(); ok {
		t.Errorf("expected empty set after draining all entries")
	}
}

func TestPolicy_RepinRemovesFromEligibleSetWithoutCorruptingOthers(t *testing.T) {
	p := New[int](3)
	h1 := p.OnUnpinned(1)
	p.OnUnpinned(2)
	h3 := p.OnUnpinned(3)
	_ = h1

	// Repin 3 (the last slot) via its hint; 1 and 2 must stay eligible and
	// 3 must never come back as a victim.
	p.OnRepinned(3, h3)
	if got := p.Len(); got != 2 {
		t.Errorf("expected 2 eligible entries after repin, got %d", got)
	}

	seen := map[int]bool{}
	for i := 0; i < 2; i++ {
		id, ok := p.ChooseVictim()
		if !ok {
			t.Fatalf("expected remaining eligible entries")
		}
		seen[id] = true
	}
	if seen[3] {
		t.Errorf("repinned entry 3 must not be chosen as a victim")
	}
	if !seen[1] || !seen[2] {
		t.Errorf("expected both 1 and 2 to remain eligible, got %v", seen)
	}
}
