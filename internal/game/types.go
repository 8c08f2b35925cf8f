package game

import (
	"log"

	"seagullz.com/seagullz/internal/character"
	"seagullz.com/seagullz/internal/render"
	"seagullz.com/seagullz/internal/simulation"
	"seagullz.com/seagullz/internal/ui/hud"
)

// Recorder receives the player's state once per tick.
type Recorder interface {
	Record(tick uint64, s character.Status) error
}

// Options configures a Mode.
type Options struct {
	Config       *simulation.Config
	HUD          *hud.HUDConfig
	Renderer     render.Renderer
	Input        render.InputManager
	ScreenWidth  int
	ScreenHeight int
	PlayerName   string

	// Recorder is optional.
	Recorder Recorder
	// Logger defaults to log.Default().
	Logger *log.Logger
}
