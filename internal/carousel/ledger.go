package carousel

type Answer struct {
	Title  string `json:"title" yaml:"title"`
	Option string `json:"option" yaml:"option"`
}

// Ledger keeps one answer per step title, ordered by when each step was
// first answered.
type Ledger struct {
	entries []Answer
	byTitle map[string]int
}

func NewLedger() *Ledger {
	return &Ledger{byTitle: map[string]int{}}
}

// Upsert replaces the option of an existing entry in place, or appends a new
// entry.
func (l *Ledger) Upsert(title, option string) {
	if l.byTitle == nil {
		l.byTitle = map[string]int{}
	}
	if i, ok := l.byTitle[title]; ok {
		l.entries[i].Option = option
		return
	}
	l.byTitle[title] = len(l.entries)
	l.entries = append(l.entries, Answer{Title: title, Option: option})
}

func (l *Ledger) Lookup(title string) (string, bool) {
	i, ok := l.byTitle[title]
	if !ok {
		return "", false
	}
	return l.entries[i].Option, true
}

func (l *Ledger) Clear() {
	l.entries = nil
	l.byTitle = map[string]int{}
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

func (l *Ledger) Answers() []Answer {
	if len(l.entries) == 0 {
		return nil
	}
	out := make([]Answer, len(l.entries))
	copy(out, l.entries)
	return out
}
