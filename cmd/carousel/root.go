package main

import (
	"github.com/owliabot/owliabot/carousel/internal/carousel"
	"github.com/owliabot/owliabot/carousel/internal/config"
	"github.com/owliabot/owliabot/carousel/internal/logging"
	"github.com/owliabot/owliabot/carousel/internal/tui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	stepsFile  string
	logFile    string
	logLevel   string
	noMouse    bool
}

var runTUI = tui.Run

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "carousel",
		Short:         "Answer a fixed sequence of questions in a scrolling card carousel",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			registry, err := loadRegistry(cfg)
			if err != nil {
				return err
			}
			log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer closer.Close()

			log.Info().Int("steps", registry.Len()).Msg("carousel starting")
			return runTUI(tui.Options{
				Registry: registry,
				Timing:   cfg.Timing,
				ToastTTL: cfg.ToastTTL,
				Logger:   log,
				OnSubmit: submissionLogger(log),
			}, cfg.Mouse)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (yaml, toml or json)")
	pf.StringVar(&flags.stepsFile, "steps", "", "Steps file (yaml or toml); defaults to the built-in questions")
	pf.StringVar(&flags.logFile, "log-file", "", "Write JSON logs to this file")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.Flags().BoolVar(&flags.noMouse, "no-mouse", false, "Disable mouse support")

	root.AddCommand(newStepsCmd(flags), newAnswerCmd(flags))
	return root
}

// load merges file and environment config with explicitly set flags.
func (f *rootFlags) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("steps") {
		cfg.StepsFile = f.stepsFile
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if f.noMouse {
		cfg.Mouse = false
	}
	return cfg, nil
}

func loadRegistry(cfg config.Config) (*carousel.Registry, error) {
	if cfg.StepsFile == "" {
		return carousel.DefaultRegistry(), nil
	}
	return carousel.LoadRegistry(cfg.StepsFile)
}

func submissionLogger(log zerolog.Logger) func(carousel.Submission) {
	return func(s carousel.Submission) {
		arr := zerolog.Arr()
		for _, a := range s.Answers {
			arr.Dict(zerolog.Dict().Str("title", a.Title).Str("option", a.Option))
		}
		log.Info().Str("session", s.SessionID).Time("submitted_at", s.SubmittedAt).Array("answers", arr).Msg("submission")
	}
}
