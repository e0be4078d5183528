package carousel

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyRegistry  = errors.New("registry has no steps")
	ErrDuplicateTitle = errors.New("duplicate step title")
	ErrNoOptions      = errors.New("step has no options")
	ErrEmptyTitle     = errors.New("step title is empty")
	ErrDuplicateID    = errors.New("duplicate step id")
)

type Step struct {
	ID      int      `yaml:"id" toml:"id"`
	Title   string   `yaml:"title" toml:"title"`
	Options []string `yaml:"options" toml:"options"`
}

// Registry is the fixed, ordered list of steps. It is never mutated after
// NewRegistry returns.
type Registry struct {
	steps []Step
	index map[string]int
}

// NewRegistry validates steps and copies them. When no step sets an ID, each
// step takes its position; otherwise IDs must be unique.
func NewRegistry(steps []Step) (*Registry, error) {
	if len(steps) == 0 {
		return nil, ErrEmptyRegistry
	}
	implicitIDs := true
	for _, step := range steps {
		if step.ID != 0 {
			implicitIDs = false
			break
		}
	}
	ids := make(map[int]struct{}, len(steps))
	r := &Registry{
		steps: make([]Step, 0, len(steps)),
		index: make(map[string]int, len(steps)),
	}
	for i, step := range steps {
		title := strings.TrimSpace(step.Title)
		if title == "" {
			return nil, fmt.Errorf("step %d: %w", i, ErrEmptyTitle)
		}
		if len(step.Options) == 0 {
			return nil, fmt.Errorf("step %q: %w", title, ErrNoOptions)
		}
		if _, exists := r.index[title]; exists {
			return nil, fmt.Errorf("step %q: %w", title, ErrDuplicateTitle)
		}
		id := step.ID
		if implicitIDs {
			id = i
		}
		if _, exists := ids[id]; exists {
			return nil, fmt.Errorf("step %q: id %d: %w", title, id, ErrDuplicateID)
		}
		ids[id] = struct{}{}
		r.index[title] = i
		r.steps = append(r.steps, Step{
			ID:      id,
			Title:   title,
			Options: cloneSlice(step.Options),
		})
	}
	return r, nil
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.steps)
}

// At returns a copy of the step at index.
func (r *Registry) At(index int) (Step, bool) {
	if r == nil || index < 0 || index >= len(r.steps) {
		return Step{}, false
	}
	step := r.steps[index]
	step.Options = cloneSlice(step.Options)
	return step, true
}

func (r *Registry) IndexOf(title string) (int, bool) {
	if r == nil {
		return 0, false
	}
	i, ok := r.index[title]
	return i, ok
}

func (r *Registry) Titles() []string {
	if r == nil {
		return nil
	}
	titles := make([]string, len(r.steps))
	for i, step := range r.steps {
		titles[i] = step.Title
	}
	return titles
}

func DefaultSteps() []Step {
	return []Step{
		{
			ID:      0,
			Title:   "How was your day overall?",
			Options: []string{"😊 Great", "😐 Average", "😔 Bad"},
		},
		{
			ID:      1,
			Title:   "What’s your favorite meal today?",
			Options: []string{"🍔 Burger", "🍕 Pizza", "🥗 Salad", "🍣 Sushi"},
		},
		{
			ID:      2,
			Title:   "Did you connect with friends or family today?",
			Options: []string{"📞 Yes, a lot", "✉️ A little", "🛑 Not at all"},
		},
	}
}

func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultSteps())
	if err != nil {
		panic(err)
	}
	return r
}

func cloneSlice(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
