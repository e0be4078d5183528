package carousel

import "time"

type scrollCall struct {
	Index  int
	Origin bool
	Smooth bool
}

type fakeContainer struct {
	offset   float64
	height   float64
	viewport float64
	mounted  bool
	calls    []scrollCall
}

func newFakeContainer(height float64) *fakeContainer {
	return &fakeContainer{height: height, viewport: height, mounted: true}
}

func (c *fakeContainer) Offset() float64 { return c.offset }

func (c *fakeContainer) StepHeight(index int) (float64, bool) {
	if !c.mounted {
		return 0, false
	}
	return c.height, true
}

func (c *fakeContainer) ViewportHeight() float64 { return c.viewport }

func (c *fakeContainer) ScrollToIndex(index int, smooth bool) {
	c.calls = append(c.calls, scrollCall{Index: index, Smooth: smooth})
	c.offset = float64(index) * c.height
}

func (c *fakeContainer) ScrollToOrigin(smooth bool) {
	c.calls = append(c.calls, scrollCall{Origin: true, Smooth: smooth})
	c.offset = 0
}

func (c *fakeContainer) last() (scrollCall, bool) {
	if len(c.calls) == 0 {
		return scrollCall{}, false
	}
	return c.calls[len(c.calls)-1], true
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) { n.successes = append(n.successes, message) }

func (n *recordingNotifier) Error(message string) { n.errors = append(n.errors, message) }

type fixture struct {
	engine    *Engine
	sched     *VirtualScheduler
	container *fakeContainer
	notifier  *recordingNotifier
}

func newFixture(opts ...Option) fixture {
	sched := newTestScheduler()
	container := newFakeContainer(40)
	notifier := &recordingNotifier{}
	all := append([]Option{
		WithContainer(container),
		WithNotifier(notifier),
		WithTiming(DefaultTiming()),
	}, opts...)
	return fixture{
		engine:    New(DefaultRegistry(), sched, all...),
		sched:     sched,
		container: container,
		notifier:  notifier,
	}
}

// answerAll answers every step with its first option and lets the summary
// delay elapse.
func (f fixture) answerAll() {
	for i := 0; i < f.engine.Registry().Len(); i++ {
		f.engine.SelectOption(0)
	}
	f.sched.Advance(f.engine.Timing().SummaryDelay)
}

func newTestScheduler() *VirtualScheduler {
	return NewVirtualScheduler(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
}
