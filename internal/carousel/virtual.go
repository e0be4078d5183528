package carousel

import (
	"sort"
	"time"
)

// VirtualScheduler is a Scheduler on a simulated clock. Callbacks run
// synchronously from Advance or Drain, which makes replays and tests
// deterministic.
type VirtualScheduler struct {
	now    time.Time
	seq    int
	timers []*virtualTimer
}

type virtualTimer struct {
	at   time.Time
	seq  int
	fn   func()
	done bool
}

func NewVirtualScheduler(start time.Time) *VirtualScheduler {
	return &VirtualScheduler{now: start}
}

func (s *VirtualScheduler) Now() time.Time { return s.now }

func (s *VirtualScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	s.seq++
	t := &virtualTimer{at: s.now.Add(d), seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (t *virtualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	return true
}

func (s *VirtualScheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.done {
			n++
		}
	}
	return n
}

// Advance moves the clock by d, firing due timers in deadline order,
// including timers scheduled by callbacks inside the window.
func (s *VirtualScheduler) Advance(d time.Duration) {
	deadline := s.now.Add(d)
	for {
		next := s.next(&deadline)
		if next == nil {
			break
		}
		s.fire(next)
	}
	s.now = deadline
}

// Drain fires timers until none are pending or limit callbacks have run.
// It returns the number of callbacks run.
func (s *VirtualScheduler) Drain(limit int) int {
	ran := 0
	for ran < limit {
		next := s.next(nil)
		if next == nil {
			break
		}
		s.fire(next)
		ran++
	}
	return ran
}

func (s *VirtualScheduler) fire(t *virtualTimer) {
	if t.at.After(s.now) {
		s.now = t.at
	}
	t.done = true
	s.compact()
	t.fn()
}

func (s *VirtualScheduler) next(deadline *time.Time) *virtualTimer {
	var due []*virtualTimer
	for _, t := range s.timers {
		if t.done || (deadline != nil && t.at.After(*deadline)) {
			continue
		}
		due = append(due, t)
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at.Equal(due[j].at) {
			return due[i].seq < due[j].seq
		}
		return due[i].at.Before(due[j].at)
	})
	return due[0]
}

func (s *VirtualScheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.done {
			live = append(live, t)
		}
	}
	s.timers = live
}
