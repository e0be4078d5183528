package carousel

import (
	"math"
	"time"
)

type scrollSync struct {
	pending       Timer
	lastOffset    float64
	height        float64
	suppressUntil time.Time
	evaluations   int
}

func (s *scrollSync) suppress(now time.Time, window time.Duration) {
	s.stop()
	until := now.Add(window)
	if until.After(s.suppressUntil) {
		s.suppressUntil = until
	}
}

func (s *scrollSync) stop() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

// OnScroll feeds a raw scroll offset produced by the container itself, e.g.
// an animation frame of a programmatic scroll. Every call cancels the pending
// evaluation and schedules a new one, so only the last event of a burst is
// evaluated. While a programmatic scroll is settling the evaluation is
// deferred until the window closes, never dropped.
func (e *Engine) OnScroll(offset float64) {
	e.scroll.lastOffset = offset
	delay := e.timing.Debounce
	if now := e.sched.Now(); now.Before(e.scroll.suppressUntil) {
		delay += e.scroll.suppressUntil.Sub(now)
	}
	e.scroll.stop()
	var timer Timer
	timer = e.sched.AfterFunc(delay, func() {
		if e.scroll.pending != timer {
			return
		}
		e.scroll.pending = nil
		e.evaluateScroll(offset)
	})
	e.scroll.pending = timer
}

// OnUserScroll feeds an offset the user scrolled to. It ends any
// programmatic settle window, so the offset goes through the plain debounce.
func (e *Engine) OnUserScroll(offset float64) {
	e.scroll.suppressUntil = time.Time{}
	e.OnScroll(offset)
}

func (e *Engine) evaluateScroll(offset float64) {
	height := e.stepHeight()
	if height <= 0 {
		return
	}
	e.scroll.evaluations++
	nearest := NearestIndex(offset, height, e.registry.Len())
	e.log.Debug().Float64("offset", offset).Float64("height", height).Int("nearest", nearest).Msg("scroll settled")
	e.JumpToStep(nearest)
}

// NearestIndex rounds offset to the closest step boundary and clamps it into
// [0, n].
func NearestIndex(offset, height float64, n int) int {
	if height <= 0 || math.IsNaN(offset) {
		return 0
	}
	if math.IsInf(offset, 1) {
		return n
	}
	return clampIndex(int(math.Round(offset/height)), n)
}

// stepHeight samples step 0 once and reuses it for every evaluation, which
// assumes uniform step heights. Until step 0 is measured the viewport height
// stands in and is not cached.
func (e *Engine) stepHeight() float64 {
	if e.scroll.height > 0 {
		return e.scroll.height
	}
	if e.container == nil {
		return 0
	}
	if h, ok := e.container.StepHeight(0); ok && h > 0 {
		e.scroll.height = h
		return h
	}
	return e.container.ViewportHeight()
}

// Remeasure drops the cached step height, e.g. after the container resized.
func (e *Engine) Remeasure() {
	e.scroll.height = 0
}

// ScrollEvaluations reports how many debounced evaluations have run.
func (e *Engine) ScrollEvaluations() int {
	return e.scroll.evaluations
}

func (e *Engine) LastScrollOffset() float64 {
	return e.scroll.lastOffset
}
