package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/owliabot/owliabot/carousel/internal/carousel"
	"github.com/owliabot/owliabot/carousel/internal/logging"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// drainLimit bounds the timers fired while replaying one answer.
const drainLimit = 1024

var errConflictingFinish = errors.New("--submit and --cancel are mutually exclusive")

type answerReport struct {
	Session   string            `yaml:"session"`
	Answers   []carousel.Answer `yaml:"answers"`
	Summary   bool              `yaml:"summary_visible"`
	Submitted bool              `yaml:"submitted,omitempty"`
	Cancelled bool              `yaml:"cancelled,omitempty"`
	Toasts    []string          `yaml:"toasts,omitempty"`
}

type toastLog struct{ lines []string }

func (t *toastLog) Success(msg string) { t.lines = append(t.lines, "ok: "+msg) }
func (t *toastLog) Error(msg string)   { t.lines = append(t.lines, "error: "+msg) }

func newAnswerCmd(flags *rootFlags) *cobra.Command {
	var submit, cancel bool
	cmd := &cobra.Command{
		Use:   "answer <option> [option...]",
		Short: "Replay answers headlessly, one 1-based option number per question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if submit && cancel {
				return errConflictingFinish
			}
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			registry, err := loadRegistry(cfg)
			if err != nil {
				return err
			}
			if len(args) > registry.Len() {
				return fmt.Errorf("got %d answers for %d questions", len(args), registry.Len())
			}
			log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer closer.Close()

			sched := carousel.NewVirtualScheduler(time.Now())
			toasts := &toastLog{}
			var submitted *carousel.Submission
			engine := carousel.New(registry, sched,
				carousel.WithTiming(cfg.Timing),
				carousel.WithNotifier(toasts),
				carousel.WithLogger(log),
				carousel.WithSubmitHook(func(s carousel.Submission) {
					submitted = &s
					submissionLogger(log)(s)
				}),
			)
			defer engine.Close()

			for i, arg := range args {
				step, _ := registry.At(i)
				n, err := strconv.Atoi(arg)
				if err != nil || n < 1 || n > len(step.Options) {
					return fmt.Errorf("answer %d: %q is not an option number between 1 and %d", i+1, arg, len(step.Options))
				}
				engine.JumpToStep(i)
				engine.SelectOption(n - 1)
				sched.Drain(drainLimit)
			}

			report := answerReport{
				Session: engine.SessionID(),
				Answers: engine.Answers(),
				Summary: engine.SummaryVisible(),
			}
			switch {
			case submit:
				if !report.Summary {
					return fmt.Errorf("cannot submit: %d of %d questions answered", engine.AnswerCount(), registry.Len())
				}
				engine.Submit()
				report.Submitted = submitted != nil
			case cancel:
				engine.Cancel()
				report.Cancelled = true
			}
			sched.Drain(drainLimit)
			report.Toasts = toasts.lines

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(report); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().BoolVar(&submit, "submit", false, "Submit the answers once every question is answered")
	cmd.Flags().BoolVar(&cancel, "cancel", false, "Cancel after replaying the answers")
	return cmd
}
