package carousel

type GateState int

const (
	GateHidden GateState = iota
	GateVisible
)

func (s GateState) String() string {
	if s == GateVisible {
		return "visible"
	}
	return "hidden"
}

// Gate latches once the last step is answered and stays open until Reset,
// regardless of where the user navigates afterwards.
type Gate struct {
	state GateState
}

func (g *Gate) Unlock() bool {
	if g.state == GateVisible {
		return false
	}
	g.state = GateVisible
	return true
}

func (g *Gate) Reset() {
	g.state = GateHidden
}

func (g *Gate) State() GateState {
	return g.state
}

func (g *Gate) Unlocked() bool {
	return g.state == GateVisible
}

// Visible is the combined predicate: unlocked and every step answered.
func (g *Gate) Visible(answered, total int) bool {
	return g.state == GateVisible && answered == total
}
