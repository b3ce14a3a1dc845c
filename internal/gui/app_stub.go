//go:build !cgo

package gui

import (
	"errors"

	"github.com/janssenandrew/silksong-save-analyzer/internal/analyzer"
)

type AppConfig struct {
	Version string
	Session *analyzer.Session
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

// Run exists so the binary still builds without cgo; the GUI needs the
// raylib client build.
func (a *App) Run() error {
	return errors.New("the gui command requires a cgo build (raylib); use analyze or tui instead")
}
