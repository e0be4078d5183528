package carousel

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	SubmitMessage = "Summary Submitted!"
	CancelMessage = "Summary Cancelled!"
)

type Option func(*Engine)

func WithContainer(c Container) Option {
	return func(e *Engine) { e.container = c }
}

func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

func WithTiming(t Timing) Option {
	return func(e *Engine) { e.timing = t.withDefaults() }
}

func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

func WithSubmitHook(fn func(Submission)) Option {
	return func(e *Engine) { e.onSubmit = fn }
}

// Engine owns the current step pointer and keeps it consistent with the
// container's scroll offset. It is not safe for concurrent use: every method
// and every scheduled callback must run on one goroutine.
type Engine struct {
	registry  *Registry
	sched     Scheduler
	container Container
	notifier  Notifier
	timing    Timing
	log       zerolog.Logger
	onSubmit  func(Submission)

	current   int
	ledger    *Ledger
	chosen    *OptionLog
	gate      Gate
	sessionID string

	scroll      scrollSync
	rewind      rewinder
	summaryJump Timer
}

func New(registry *Registry, sched Scheduler, opts ...Option) *Engine {
	e := &Engine{
		registry:  registry,
		sched:     sched,
		timing:    DefaultTiming(),
		log:       zerolog.Nop(),
		ledger:    NewLedger(),
		chosen:    NewOptionLog(),
		sessionID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetContainer attaches the scroll container once it is mounted.
func (e *Engine) SetContainer(c Container) {
	e.container = c
	e.scroll.height = 0
}

func (e *Engine) SetNotifier(n Notifier) {
	e.notifier = n
}

func (e *Engine) Registry() *Registry { return e.registry }

func (e *Engine) Timing() Timing { return e.timing }

func (e *Engine) SessionID() string { return e.sessionID }

func (e *Engine) CurrentStep() int { return e.current }

// SummarySlot is the virtual index N past the last step.
func (e *Engine) SummarySlot() int { return e.registry.Len() }

func (e *Engine) Answers() []Answer { return e.ledger.Answers() }

func (e *Engine) AnswerCount() int { return e.ledger.Len() }

func (e *Engine) SelectedOption(index int) (string, bool) {
	return e.chosen.Get(index)
}

func (e *Engine) SelectedCount() int { return e.chosen.Len() }

func (e *Engine) SummaryUnlocked() bool { return e.gate.Unlocked() }

func (e *Engine) SummaryVisible() bool {
	return e.gate.Visible(e.ledger.Len(), e.registry.Len())
}

// JumpToStep clamps target into [0, N], makes it current and scrolls to it.
func (e *Engine) JumpToStep(target int) {
	n := e.registry.Len()
	clamped := clampIndex(target, n)
	if clamped != target {
		e.log.Debug().Int("target", target).Int("clamped", clamped).Msg("jump target clamped")
	}
	e.current = clamped
	e.log.Debug().Int("step", clamped).Msg("jump to step")
	e.scrollToIndex(clamped)
}

// RecordAnswer stores option for the current step and advances. Answering the
// last step unlocks the summary and scrolls to it after timing.SummaryDelay.
func (e *Engine) RecordAnswer(option string) {
	at := e.current
	step, ok := e.registry.At(at)
	if !ok {
		e.log.Debug().Int("step", at).Msg("answer ignored outside step range")
		return
	}
	e.ledger.Upsert(step.Title, option)
	e.chosen.Set(at, option)
	e.log.Debug().Int("step", at).Str("option", option).Int("answered", e.ledger.Len()).Msg("answer recorded")

	n := e.registry.Len()
	if at == n-1 && e.gate.Unlock() {
		e.log.Debug().Msg("summary unlocked")
	}

	next := at + 1
	if next < n {
		e.JumpToStep(next)
		return
	}
	e.stopSummaryJump()
	var timer Timer
	timer = e.sched.AfterFunc(e.timing.SummaryDelay, func() {
		if e.summaryJump != timer {
			return
		}
		e.summaryJump = nil
		if !e.SummaryVisible() {
			return
		}
		e.JumpToStep(n)
	})
	e.summaryJump = timer
}

// SelectOption answers the current step with its option at index.
func (e *Engine) SelectOption(index int) bool {
	step, ok := e.registry.At(e.current)
	if !ok || index < 0 || index >= len(step.Options) {
		return false
	}
	e.RecordAnswer(step.Options[index])
	return true
}

func (e *Engine) Submit() {
	if e.notifier != nil {
		e.notifier.Success(SubmitMessage)
	}
	snapshot := Submission{
		SessionID:   e.sessionID,
		Answers:     e.ledger.Answers(),
		SubmittedAt: e.sched.Now(),
	}
	e.log.Info().Str("session", e.sessionID).Int("answers", len(snapshot.Answers)).Msg("summary submitted")
	if e.onSubmit != nil {
		e.onSubmit(snapshot)
	}
	e.reset()
}

func (e *Engine) Cancel() {
	if e.notifier != nil {
		e.notifier.Error(CancelMessage)
	}
	e.log.Info().Str("session", e.sessionID).Int("answers", e.ledger.Len()).Msg("summary cancelled")
	e.reset()
}

// reset clears answers and the gate, then rewinds from the last step.
func (e *Engine) reset() {
	e.ledger.Clear()
	e.chosen.Clear()
	e.gate.Reset()
	e.scroll.stop()
	e.stopSummaryJump()
	e.sessionID = uuid.NewString()
	start := e.registry.Len() - 1
	if start < 0 {
		start = 0
	}
	e.current = start
	e.startRewind(start)
}

// Close stops every pending timer the engine still owns.
func (e *Engine) Close() {
	e.scroll.stop()
	e.stopSummaryJump()
	e.rewind.cancel()
}

func (e *Engine) stopSummaryJump() {
	if e.summaryJump != nil {
		e.summaryJump.Stop()
		e.summaryJump = nil
	}
}

func (e *Engine) scrollToIndex(index int) {
	if e.container == nil {
		return
	}
	e.scroll.suppress(e.sched.Now(), e.timing.ScrollSettle)
	e.container.ScrollToIndex(index, true)
}

func (e *Engine) scrollToOrigin() {
	if e.container == nil {
		return
	}
	e.scroll.suppress(e.sched.Now(), e.timing.ScrollSettle)
	e.container.ScrollToOrigin(true)
}

func clampIndex(index, n int) int {
	if index < 0 {
		return 0
	}
	if index > n {
		return n
	}
	return index
}
