package carousel

import (
	"math"
	"testing"
	"time"
)

func TestNearestIndex(t *testing.T) {
	cases := []struct {
		offset, height float64
		n, want        int
	}{
		{0, 40, 3, 0},
		{19, 40, 3, 0},
		{20, 40, 3, 1},
		{61, 40, 3, 2},
		{120, 40, 3, 3},
		{500, 40, 3, 3},
		{-30, 40, 3, 0},
		{10, 0, 3, 0},
		{math.Inf(1), 40, 3, 3},
		{math.NaN(), 40, 3, 0},
	}
	for _, tc := range cases {
		if got := NearestIndex(tc.offset, tc.height, tc.n); got != tc.want {
			t.Fatalf("NearestIndex(%v, %v, %d) = %d, want %d", tc.offset, tc.height, tc.n, got, tc.want)
		}
	}
}

func TestScrollBurstCollapsesToLastOffset(t *testing.T) {
	f := newFixture()
	debounce := f.engine.Timing().Debounce
	for _, offset := range []float64{5, 30, 45, 70, 82} {
		f.engine.OnScroll(offset)
		f.sched.Advance(debounce / 4)
	}
	if f.engine.ScrollEvaluations() != 0 {
		t.Fatalf("evaluation ran during the burst")
	}
	f.sched.Advance(debounce)
	if f.engine.ScrollEvaluations() != 1 {
		t.Fatalf("expected exactly one evaluation, got %d", f.engine.ScrollEvaluations())
	}
	if f.engine.CurrentStep() != 2 {
		t.Fatalf("expected step from last offset (82/40 -> 2), got %d", f.engine.CurrentStep())
	}
	if f.sched.Pending() != 0 {
		t.Fatalf("expected no pending timers, got %d", f.sched.Pending())
	}
}

func TestScrollToStepBoundarySettlesOnStep(t *testing.T) {
	f := newFixture()
	timing := f.engine.Timing()
	for _, k := range []int{2, 0, 3, 1} {
		f.engine.OnScroll(float64(k) * 40)
		f.sched.Advance(timing.Debounce)
		if f.engine.CurrentStep() != k {
			t.Fatalf("offset %d*height settled on %d", k, f.engine.CurrentStep())
		}
		last, _ := f.container.last()
		if last.Index != k {
			t.Fatalf("expected corrective scroll to %d, got %+v", k, last)
		}
		f.sched.Advance(timing.ScrollSettle)
	}
}

func TestProgrammaticScrollEchoesWaitForSettle(t *testing.T) {
	f := newFixture()
	timing := f.engine.Timing()
	f.engine.JumpToStep(1)
	f.engine.OnScroll(13)
	f.engine.OnScroll(40)
	f.sched.Advance(timing.Debounce)

	if f.engine.ScrollEvaluations() != 0 {
		t.Fatalf("scroll echo evaluated before the programmatic scroll settled")
	}
	if f.engine.LastScrollOffset() != 40 {
		t.Fatalf("expected last offset recorded, got %v", f.engine.LastScrollOffset())
	}

	f.sched.Advance(timing.ScrollSettle)
	if f.engine.ScrollEvaluations() != 1 {
		t.Fatalf("expected the last echo evaluated once the window closed, got %d", f.engine.ScrollEvaluations())
	}
	if f.engine.CurrentStep() != 1 {
		t.Fatalf("expected step 1 kept, got %d", f.engine.CurrentStep())
	}
}

func TestUserScrollInsideSettleWindowIsEvaluated(t *testing.T) {
	f := newFixture()
	timing := f.engine.Timing()
	f.engine.JumpToStep(1)
	f.engine.OnScroll(20)
	f.sched.Advance(timing.ScrollSettle / 5)

	for _, offset := range []float64{50, 70, 90, 110, 120} {
		f.engine.OnUserScroll(offset)
		f.sched.Advance(timing.Debounce / 4)
	}
	f.sched.Advance(timing.Debounce)

	if f.engine.ScrollEvaluations() != 1 {
		t.Fatalf("expected one evaluation of the user scroll, got %d", f.engine.ScrollEvaluations())
	}
	if f.engine.CurrentStep() != 3 {
		t.Fatalf("expected current step to follow the visible step 3, got %d", f.engine.CurrentStep())
	}
	f.sched.Advance(time.Second)
	if f.engine.CurrentStep() != 3 {
		t.Fatalf("a stale echo moved the step back to %d", f.engine.CurrentStep())
	}
}

func TestLastSuppressedOffsetIsEvaluatedAfterWindow(t *testing.T) {
	f := newFixture()
	timing := f.engine.Timing()
	f.engine.JumpToStep(1)
	f.engine.OnScroll(80)
	f.sched.Advance(timing.ScrollSettle + timing.Debounce)
	if f.engine.CurrentStep() != 2 {
		t.Fatalf("expected offset 80 to settle on step 2, got %d", f.engine.CurrentStep())
	}
}

func TestProgrammaticScrollCancelsPendingEvaluation(t *testing.T) {
	f := newFixture()
	f.engine.OnScroll(80)
	f.engine.JumpToStep(1)
	f.sched.Advance(time.Second)
	if f.engine.ScrollEvaluations() != 0 || f.engine.CurrentStep() != 1 {
		t.Fatalf("pending evaluation survived a programmatic scroll: step=%d", f.engine.CurrentStep())
	}
}

func TestScrollUsesViewportUntilStepMeasured(t *testing.T) {
	f := newFixture()
	f.container.mounted = false
	f.container.viewport = 50
	f.engine.OnScroll(100)
	f.sched.Advance(f.engine.Timing().Debounce)
	if f.engine.CurrentStep() != 2 {
		t.Fatalf("expected viewport fallback (100/50), got %d", f.engine.CurrentStep())
	}

	f.sched.Advance(f.engine.Timing().ScrollSettle)
	f.container.mounted = true
	f.container.height = 20
	f.engine.OnScroll(20)
	f.sched.Advance(f.engine.Timing().Debounce)
	if f.engine.CurrentStep() != 1 {
		t.Fatalf("expected measured height (20/20), got %d", f.engine.CurrentStep())
	}
}

func TestStepHeightIsSampledOnceUntilRemeasure(t *testing.T) {
	f := newFixture()
	timing := f.engine.Timing()
	f.engine.OnScroll(40)
	f.sched.Advance(timing.Debounce + timing.ScrollSettle)

	f.container.height = 20
	f.engine.OnScroll(40)
	f.sched.Advance(timing.Debounce + timing.ScrollSettle)
	if f.engine.CurrentStep() != 1 {
		t.Fatalf("expected cached height 40, got step %d", f.engine.CurrentStep())
	}

	f.engine.Remeasure()
	f.engine.OnScroll(40)
	f.sched.Advance(timing.Debounce)
	if f.engine.CurrentStep() != 2 {
		t.Fatalf("expected remeasured height 20, got step %d", f.engine.CurrentStep())
	}
}

func TestScrollWithoutContainerIsNoOp(t *testing.T) {
	sched := newTestScheduler()
	e := New(DefaultRegistry(), sched)
	e.OnScroll(400)
	sched.Advance(time.Second)
	if e.CurrentStep() != 0 || e.ScrollEvaluations() != 0 {
		t.Fatalf("expected no-op without container")
	}
}

func TestCloseStopsPendingEvaluation(t *testing.T) {
	f := newFixture()
	f.engine.OnScroll(80)
	f.engine.Close()
	f.sched.Advance(time.Second)
	if f.engine.ScrollEvaluations() != 0 {
		t.Fatalf("evaluation ran after Close")
	}
}
