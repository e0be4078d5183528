package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/owliabot/owliabot/carousel/internal/carousel"
)

type timerFiredMsg struct {
	timer *loopTimer
}

// loopScheduler arms wall-clock timers but runs their callbacks inside
// Update, so engine state is only ever touched by the program's event loop.
type loopScheduler struct {
	send func(tea.Msg)
}

type loopTimer struct {
	t    *time.Timer
	fn   func()
	done bool
}

func (s *loopScheduler) Now() time.Time { return time.Now() }

func (s *loopScheduler) AfterFunc(d time.Duration, fn func()) carousel.Timer {
	lt := &loopTimer{fn: fn}
	lt.t = time.AfterFunc(d, func() {
		if s.send != nil {
			s.send(timerFiredMsg{timer: lt})
		}
	})
	return lt
}

// Stop is called from the event loop; a fire message already in flight is
// dropped when it reaches Update.
func (t *loopTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.t.Stop()
	return true
}

func (t *loopTimer) fire() {
	if t.done {
		return
	}
	t.done = true
	t.fn()
}
