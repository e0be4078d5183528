package carousel

import (
	"fmt"
	"testing"
)

func TestLedgerUpsertIsIdempotentPerTitle(t *testing.T) {
	l := NewLedger()
	l.Upsert("A", "1")
	l.Upsert("B", "2")
	l.Upsert("A", "3")

	if l.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", l.Len())
	}
	got := l.Answers()
	if got[0] != (Answer{Title: "A", Option: "3"}) {
		t.Fatalf("expected A updated in place, got %+v", got[0])
	}
	if got[1].Title != "B" {
		t.Fatalf("expected first-answered order, got %+v", got)
	}
}

func TestLedgerAnswersIsSnapshot(t *testing.T) {
	l := NewLedger()
	l.Upsert("A", "1")
	snap := l.Answers()
	snap[0].Option = "changed"
	if opt, _ := l.Lookup("A"); opt != "1" {
		t.Fatalf("ledger mutated through snapshot: %q", opt)
	}
}

func TestLedgerClear(t *testing.T) {
	l := NewLedger()
	l.Upsert("A", "1")
	l.Clear()
	if l.Len() != 0 || l.Answers() != nil {
		t.Fatalf("expected empty ledger")
	}
	l.Upsert("B", "2")
	if l.Len() != 1 {
		t.Fatalf("expected ledger usable after clear")
	}
}

func TestLedgerZeroValue(t *testing.T) {
	var l Ledger
	if _, ok := l.Lookup("missing"); ok {
		t.Fatalf("expected no entry")
	}
	l.Upsert("A", "1")
	if l.Len() != 1 {
		t.Fatalf("expected zero ledger to accept upsert")
	}
}

func TestLedgerSizeBoundedByRegistry(t *testing.T) {
	r := DefaultRegistry()
	l := NewLedger()
	for round := 0; round < 5; round++ {
		for i := 0; i < r.Len(); i++ {
			step, _ := r.At(i)
			l.Upsert(step.Title, fmt.Sprintf("round-%d", round))
			if l.Len() > r.Len() {
				t.Fatalf("ledger grew past registry: %d", l.Len())
			}
		}
	}
	if l.Len() != r.Len() {
		t.Fatalf("expected %d entries, got %d", r.Len(), l.Len())
	}
}

func TestOptionLogIsSparse(t *testing.T) {
	o := NewOptionLog()
	o.Set(2, "late")
	if _, ok := o.Get(0); ok {
		t.Fatalf("expected index 0 unset")
	}
	if got, ok := o.Get(2); !ok || got != "late" {
		t.Fatalf("expected index 2 = late, got %q %v", got, ok)
	}
	o.Set(2, "later")
	if got, _ := o.Get(2); got != "later" {
		t.Fatalf("expected overwrite, got %q", got)
	}
	o.Clear()
	if o.Len() != 0 {
		t.Fatalf("expected empty log after clear")
	}
}

func TestGateLatchesUntilReset(t *testing.T) {
	var g Gate
	if g.Visible(3, 3) {
		t.Fatalf("hidden gate must not be visible")
	}
	if !g.Unlock() {
		t.Fatalf("expected first unlock to transition")
	}
	if g.Unlock() {
		t.Fatalf("expected second unlock to be a no-op")
	}
	if g.Visible(2, 3) {
		t.Fatalf("gate must require every step answered")
	}
	if !g.Visible(3, 3) || g.State() != GateVisible {
		t.Fatalf("expected visible gate")
	}
	g.Reset()
	if g.Unlocked() || g.State().String() != "hidden" {
		t.Fatalf("expected reset gate hidden")
	}
}
