package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/owliabot/owliabot/carousel/internal/carousel"
)

type harness struct {
	t     *testing.T
	model *Model
	sched *carousel.VirtualScheduler
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	zone.NewGlobal()
	sched := carousel.NewVirtualScheduler(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	m := NewModel(Options{
		Timing:    carousel.DefaultTiming(),
		ToastTTL:  3 * time.Second,
		Scheduler: sched,
	})
	h := &harness{t: t, model: m, sched: sched}
	h.send(tea.WindowSizeMsg{Width: 100, Height: 24})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	_, cmd := h.model.Update(msg)
	return cmd
}

func (h *harness) press(keys ...string) {
	h.t.Helper()
	for _, k := range keys {
		switch k {
		case "down":
			h.send(tea.KeyMsg{Type: tea.KeyDown})
		case "up":
			h.send(tea.KeyMsg{Type: tea.KeyUp})
		case "pgdown":
			h.send(tea.KeyMsg{Type: tea.KeyPgDown})
		case "pgup":
			h.send(tea.KeyMsg{Type: tea.KeyPgUp})
		default:
			h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		}
		h.settle()
	}
}

// settle plays animation frames until the strip stops moving.
func (h *harness) settle() {
	h.t.Helper()
	for i := 0; i < 200 && h.model.strip.moving(); i++ {
		h.send(frameMsg{})
	}
	if h.model.strip.moving() {
		h.t.Fatalf("strip never settled: offset=%v target=%v", h.model.strip.offset, h.model.strip.target)
	}
}

func (h *harness) advance(d time.Duration) {
	h.t.Helper()
	h.sched.Advance(d)
	h.settle()
}

func (h *harness) view() string {
	return stripANSI(h.model.View())
}

func (h *harness) answerAll() {
	h.t.Helper()
	h.press("1", "1", "1")
	h.advance(carousel.DefaultTiming().SummaryDelay)
}

func (h *harness) requireView(substr string) {
	h.t.Helper()
	if view := h.view(); !strings.Contains(view, substr) {
		h.t.Fatalf("expected view to contain %q, got:\n%s", substr, view)
	}
}
