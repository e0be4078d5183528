package carousel

import "time"

// Scheduler runs delayed callbacks. Implementations must invoke callbacks on
// the same goroutine that drives the Engine.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped a pending callback.
	Stop() bool
}

// Container is the scrollable surface that lays out one step per card.
type Container interface {
	Offset() float64
	// StepHeight reports the rendered height of the step at index, or false
	// when it is not mounted yet.
	StepHeight(index int) (float64, bool)
	ViewportHeight() float64
	ScrollToIndex(index int, smooth bool)
	ScrollToOrigin(smooth bool)
}

type Notifier interface {
	Success(message string)
	Error(message string)
}

type Submission struct {
	SessionID   string
	Answers     []Answer
	SubmittedAt time.Time
}

// Timing holds the UX delays. Zero fields fall back to DefaultTiming.
type Timing struct {
	Debounce     time.Duration
	RewindStep   time.Duration
	SummaryDelay time.Duration
	ScrollSettle time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		Debounce:     200 * time.Millisecond,
		RewindStep:   300 * time.Millisecond,
		SummaryDelay: 500 * time.Millisecond,
		ScrollSettle: 250 * time.Millisecond,
	}
}

func (t Timing) withDefaults() Timing {
	d := DefaultTiming()
	if t.Debounce <= 0 {
		t.Debounce = d.Debounce
	}
	if t.RewindStep <= 0 {
		t.RewindStep = d.RewindStep
	}
	if t.SummaryDelay <= 0 {
		t.SummaryDelay = d.SummaryDelay
	}
	if t.ScrollSettle <= 0 {
		t.ScrollSettle = d.ScrollSettle
	}
	return t
}
