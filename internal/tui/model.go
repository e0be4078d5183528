package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/owliabot/owliabot/carousel/internal/carousel"
	"github.com/rs/zerolog"
)

const (
	frameInterval = 16 * time.Millisecond
	wheelRows     = 2
	footerRows    = 2
	gutterWidth   = 4
	minCardHeight = 8
)

type frameMsg struct{}

type Options struct {
	Registry *carousel.Registry
	Timing   carousel.Timing
	ToastTTL time.Duration
	Logger   zerolog.Logger
	OnSubmit func(carousel.Submission)
	// Scheduler overrides the event-loop scheduler, e.g. in tests.
	Scheduler carousel.Scheduler
}

type Model struct {
	engine  *carousel.Engine
	loop    *loopScheduler
	strip   *strip
	toast   *toaster
	keys    keyMap
	log     zerolog.Logger
	width   int
	height  int
	ticking bool
}

func NewModel(opts Options) *Model {
	registry := opts.Registry
	if registry == nil {
		registry = carousel.DefaultRegistry()
	}
	m := &Model{
		keys: defaultKeys(),
		log:  opts.Logger,
	}
	sched := opts.Scheduler
	if sched == nil {
		m.loop = &loopScheduler{}
		sched = m.loop
	}
	m.toast = &toaster{sched: sched, ttl: opts.ToastTTL}
	engineOpts := []carousel.Option{
		carousel.WithTiming(opts.Timing),
		carousel.WithLogger(opts.Logger),
		carousel.WithNotifier(m.toast),
	}
	if opts.OnSubmit != nil {
		engineOpts = append(engineOpts, carousel.WithSubmitHook(opts.OnSubmit))
	}
	m.engine = carousel.New(registry, sched, engineOpts...)
	m.strip = &strip{cards: m.mountedCards}
	return m
}

// Bind routes timer callbacks through the running program.
func (m *Model) Bind(send func(tea.Msg)) {
	if m.loop != nil {
		m.loop.send = send
	}
}

func (m *Model) Engine() *carousel.Engine { return m.engine }

func (m *Model) Close() { m.engine.Close() }

func (m *Model) mountedCards() int {
	cards := m.engine.Registry().Len()
	if m.engine.SummaryVisible() {
		cards++
	}
	return cards
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case timerFiredMsg:
		msg.timer.fire()
	case frameMsg:
		m.ticking = false
		if m.strip.frame() {
			m.engine.OnScroll(m.strip.offset)
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.engine.Close()
			return m, tea.Quit
		}
		m.handleKey(msg)
	}
	return m, m.nextFrame()
}

func (m *Model) nextFrame() tea.Cmd {
	if m.ticking || !m.strip.moving() {
		return nil
	}
	m.ticking = true
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.engine.SetContainer(m.strip)
	m.strip.resize(maxInt(minCardHeight, height-footerRows), m.engine.CurrentStep())
	m.engine.Remeasure()
}

func (m *Model) onSummary() bool {
	return m.engine.CurrentStep() == m.engine.SummarySlot() && m.engine.SummaryVisible()
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.ScrollUp):
		m.userScroll(-1)
	case key.Matches(msg, m.keys.ScrollDown):
		m.userScroll(1)
	case key.Matches(msg, m.keys.PrevStep):
		m.engine.JumpToStep(m.engine.CurrentStep() - 1)
	case key.Matches(msg, m.keys.NextStep):
		m.jumpForward()
	case key.Matches(msg, m.keys.First):
		m.engine.JumpToStep(0)
	case key.Matches(msg, m.keys.Answer):
		index, err := strconv.Atoi(msg.String())
		if err == nil {
			m.engine.SelectOption(index - 1)
		}
	case key.Matches(msg, m.keys.Submit):
		if m.onSummary() {
			m.engine.Submit()
		}
	case key.Matches(msg, m.keys.Cancel):
		if m.onSummary() {
			m.engine.Cancel()
		}
	}
}

func (m *Model) jumpForward() {
	next := m.engine.CurrentStep() + 1
	if next >= m.mountedCards() {
		return
	}
	m.engine.JumpToStep(next)
}

func (m *Model) userScroll(rows int) {
	before := m.strip.offset
	m.strip.scrollBy(float64(rows))
	if m.strip.offset != before {
		m.engine.OnUserScroll(m.strip.offset)
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.userScroll(-wheelRows)
		return
	case tea.MouseButtonWheelDown:
		m.userScroll(wheelRows)
		return
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return
	}
	for _, id := range m.clickTargets() {
		if z := zone.Get(id); z != nil && z.InBounds(msg) {
			m.activate(id)
			return
		}
	}
}

func (m *Model) clickTargets() []string {
	n := m.engine.Registry().Len()
	ids := make([]string, 0, n*4+2)
	for i := 0; i < n; i++ {
		ids = append(ids, dotZoneID(i))
		step, _ := m.engine.Registry().At(i)
		for j := range step.Options {
			ids = append(ids, optionZoneID(i, j))
		}
	}
	if m.engine.SummaryVisible() {
		ids = append(ids, submitZoneID, cancelZoneID)
	}
	return ids
}

// activate performs the action bound to a clickable zone.
func (m *Model) activate(id string) {
	switch {
	case id == submitZoneID:
		if m.engine.SummaryVisible() {
			m.engine.Submit()
		}
	case id == cancelZoneID:
		if m.engine.SummaryVisible() {
			m.engine.Cancel()
		}
	case strings.HasPrefix(id, "dot-"):
		var step int
		if _, err := fmt.Sscanf(id, "dot-%d", &step); err == nil {
			m.engine.JumpToStep(step)
		}
	case strings.HasPrefix(id, "option-"):
		var step, option int
		if _, err := fmt.Sscanf(id, "option-%d-%d", &step, &option); err != nil {
			return
		}
		if step != m.engine.CurrentStep() {
			m.engine.JumpToStep(step)
		}
		m.engine.SelectOption(option)
	}
}

func optionZoneID(step, option int) string {
	return fmt.Sprintf("option-%d-%d", step, option)
}

func dotZoneID(step int) string {
	return fmt.Sprintf("dot-%d", step)
}

const (
	submitZoneID = "summary-submit"
	cancelZoneID = "summary-cancel"
)

// Run starts the carousel program and blocks until the user quits.
func Run(opts Options, mouse bool) error {
	zone.NewGlobal()
	m := NewModel(opts)
	defer m.Close()

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, programOpts...)
	m.Bind(p.Send)
	_, err := p.Run()
	return err
}
