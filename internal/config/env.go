package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	FrontendTUI    = "tui"
	FrontendGUI    = "gui"
	FrontendScript = "script"
)

// App is the process configuration read from the environment. Flags given
// on the command line override it.
type App struct {
	LogLevel    string        `env:"IMMUNE_LOG_LEVEL" envDefault:"info"`
	LogFile     string        `env:"IMMUNE_LOG_FILE"`
	Frontend    string        `env:"IMMUNE_FRONTEND" envDefault:"tui"`
	Audio       bool          `env:"IMMUNE_AUDIO" envDefault:"true"`
	MetricsAddr string        `env:"IMMUNE_METRICS_ADDR"`
	FeedbackTTL time.Duration `env:"IMMUNE_FEEDBACK_TTL" envDefault:"3s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func Load() (App, error) {
	var cfg App
	if err := ParseEnv(&cfg); err != nil {
		return App{}, err
	}
	if err := cfg.Validate(); err != nil {
		return App{}, err
	}
	return cfg, nil
}

func (c App) Validate() error {
	switch c.Frontend {
	case FrontendTUI, FrontendGUI, FrontendScript:
	default:
		return fmt.Errorf("invalid frontend: %s", c.Frontend)
	}
	if c.FeedbackTTL < 0 {
		return fmt.Errorf("feedback ttl must not be negative, got %s", c.FeedbackTTL)
	}
	return nil
}
