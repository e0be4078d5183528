package carousel

type RewindState int

const (
	RewindDone RewindState = iota
	RewindActive
)

func (s RewindState) String() string {
	if s == RewindActive {
		return "rewinding"
	}
	return "done"
}

// rewinder walks the current step back to zero one step per
// timing.RewindStep. Each run carries a generation; starting a new run bumps
// it, which turns any callback from the old run into a no-op.
type rewinder struct {
	gen   uint64
	state RewindState
	at    int
	timer Timer
}

func (r *rewinder) cancel() {
	r.gen++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.state = RewindDone
}

func (e *Engine) startRewind(from int) {
	if e.rewind.state == RewindActive {
		e.log.Debug().Int("at", e.rewind.at).Msg("rewind superseded")
	}
	e.rewind.cancel()
	e.rewind.state = RewindActive
	e.rewind.at = from
	e.rewindFrom(e.rewind.gen, from)
}

func (e *Engine) rewindFrom(gen uint64, at int) {
	if gen != e.rewind.gen {
		return
	}
	if at <= 0 {
		e.rewind.timer = nil
		e.rewind.at = 0
		e.rewind.state = RewindDone
		e.scrollToOrigin()
		e.log.Debug().Msg("rewind finished")
		return
	}
	e.rewind.timer = e.sched.AfterFunc(e.timing.RewindStep, func() {
		if gen != e.rewind.gen {
			return
		}
		next := at - 1
		e.rewind.at = next
		e.current = next
		e.log.Debug().Int("step", next).Msg("rewind step")
		e.scrollToIndex(next)
		e.rewindFrom(gen, next)
	})
}

func (e *Engine) RewindState() (RewindState, int) {
	return e.rewind.state, e.rewind.at
}

func (e *Engine) Rewinding() bool {
	return e.rewind.state == RewindActive
}
