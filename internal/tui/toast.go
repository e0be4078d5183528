package tui

import (
	"time"

	"github.com/owliabot/owliabot/carousel/internal/carousel"
)

type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
)

// toaster is the notification sink; a toast clears itself after ttl.
type toaster struct {
	sched carousel.Scheduler
	ttl   time.Duration
	text  string
	kind  toastKind
	timer carousel.Timer
}

func (t *toaster) Success(message string) { t.show(toastSuccess, message) }

func (t *toaster) Error(message string) { t.show(toastError, message) }

func (t *toaster) show(kind toastKind, message string) {
	if t.timer != nil {
		t.timer.Stop()
	}
	t.kind = kind
	t.text = message
	if t.sched == nil || t.ttl <= 0 {
		return
	}
	t.timer = t.sched.AfterFunc(t.ttl, func() {
		t.text = ""
		t.timer = nil
	})
}

func (t *toaster) render() string {
	switch {
	case t.text == "":
		return ""
	case t.kind == toastError:
		return styles.Error.Render(" ✗ " + t.text)
	default:
		return styles.Success.Render(" ✓ " + t.text)
	}
}
