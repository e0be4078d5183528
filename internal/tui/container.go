package tui

import "math"

// strip is the scroll container: every step, and the summary once it is
// mounted, occupies one card of cardHeight rows.
type strip struct {
	cardHeight int
	offset     float64
	target     float64
	cards      func() int
}

func (s *strip) Offset() float64 { return s.offset }

func (s *strip) StepHeight(index int) (float64, bool) {
	if s.cardHeight <= 0 || index < 0 || index >= s.cards() {
		return 0, false
	}
	return float64(s.cardHeight), true
}

func (s *strip) ViewportHeight() float64 { return float64(s.cardHeight) }

func (s *strip) ScrollToIndex(index int, smooth bool) {
	if s.cardHeight <= 0 || index < 0 || index >= s.cards() {
		return
	}
	s.scrollTo(float64(index*s.cardHeight), smooth)
}

func (s *strip) ScrollToOrigin(smooth bool) {
	if s.cardHeight <= 0 {
		return
	}
	s.scrollTo(0, smooth)
}

func (s *strip) scrollTo(offset float64, smooth bool) {
	s.target = s.clampOffset(offset)
	if !smooth {
		s.offset = s.target
	}
}

// scrollBy is a user scroll: it drops any animation in progress.
func (s *strip) scrollBy(delta float64) {
	s.offset = s.clampOffset(s.offset + delta)
	s.target = s.offset
}

func (s *strip) maxOffset() float64 {
	cards := s.cards()
	if cards <= 1 || s.cardHeight <= 0 {
		return 0
	}
	return float64((cards - 1) * s.cardHeight)
}

func (s *strip) clampOffset(offset float64) float64 {
	return math.Max(0, math.Min(offset, s.maxOffset()))
}

func (s *strip) moving() bool {
	return s.offset != s.target
}

// frame eases the offset a third of the way to the target, at least one row.
func (s *strip) frame() bool {
	s.target = s.clampOffset(s.target)
	diff := s.target - s.offset
	if diff == 0 {
		return false
	}
	if math.Abs(diff) <= 1 {
		s.offset = s.target
		return true
	}
	step := diff / 3
	if math.Abs(step) < 1 {
		step = math.Copysign(1, diff)
	}
	s.offset = math.Round(s.offset + step)
	return true
}

func (s *strip) resize(cardHeight, current int) {
	s.cardHeight = cardHeight
	s.offset = s.clampOffset(float64(current * cardHeight))
	s.target = s.offset
}

func (s *strip) row() int {
	return int(math.Round(s.clampOffset(s.offset)))
}
