//go:build !cgo

package gui

import (
	"errors"
	"time"

	"github.com/appengine-ltd/immune-defense/internal/game"
)

// ErrUnavailable is returned when the binary was built without cgo, which
// raylib needs.
var ErrUnavailable = errors.New("gui: built without cgo; use the tui or script front-end")

type AppConfig struct {
	Version     string
	FeedbackTTL time.Duration
}

type App struct{}

func NewApp(cfg AppConfig, ctrl *game.Controller) *App {
	return &App{}
}

func (a *App) Run() error {
	return ErrUnavailable
}
