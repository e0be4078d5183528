package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/owliabot/owliabot/carousel/internal/carousel"
	"github.com/spf13/viper"
)

const EnvPrefix = "CAROUSEL"

type Config struct {
	Timing    carousel.Timing
	ToastTTL  time.Duration
	StepsFile string
	LogFile   string
	LogLevel  string
	Mouse     bool
}

func Default() Config {
	return Config{
		Timing:   carousel.DefaultTiming(),
		ToastTTL: 3 * time.Second,
		LogLevel: "info",
		Mouse:    true,
	}
}

func newViper() *viper.Viper {
	d := Default()
	v := viper.New()
	v.SetDefault("timing.debounce", d.Timing.Debounce)
	v.SetDefault("timing.rewind_step", d.Timing.RewindStep)
	v.SetDefault("timing.summary_delay", d.Timing.SummaryDelay)
	v.SetDefault("timing.scroll_settle", d.Timing.ScrollSettle)
	v.SetDefault("timing.toast_ttl", d.ToastTTL)
	v.SetDefault("steps_file", "")
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("mouse", d.Mouse)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path when given (yaml, toml or json by extension), then applies
// CAROUSEL_* environment overrides on top of the defaults.
func Load(path string) (Config, error) {
	v := newViper()
	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config file not found: %s", path)
			}
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Timing: carousel.Timing{
			Debounce:     v.GetDuration("timing.debounce"),
			RewindStep:   v.GetDuration("timing.rewind_step"),
			SummaryDelay: v.GetDuration("timing.summary_delay"),
			ScrollSettle: v.GetDuration("timing.scroll_settle"),
		},
		ToastTTL:  v.GetDuration("timing.toast_ttl"),
		StepsFile: strings.TrimSpace(v.GetString("steps_file")),
		LogFile:   strings.TrimSpace(v.GetString("log_file")),
		LogLevel:  strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
		Mouse:     v.GetBool("mouse"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	durations := []struct {
		name  string
		value time.Duration
	}{
		{"timing.debounce", c.Timing.Debounce},
		{"timing.rewind_step", c.Timing.RewindStep},
		{"timing.summary_delay", c.Timing.SummaryDelay},
		{"timing.scroll_settle", c.Timing.ScrollSettle},
		{"timing.toast_ttl", c.ToastTTL},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return fmt.Errorf("%s must be positive, got %s", d.name, d.value)
		}
	}
	return nil
}
