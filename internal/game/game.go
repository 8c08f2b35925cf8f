package game

import (
	"fmt"
	"log"

	"seagullz.com/seagullz/internal/character"
	"seagullz.com/seagullz/internal/input"
	"seagullz.com/seagullz/internal/render"
	"seagullz.com/seagullz/internal/simulation"
	"seagullz.com/seagullz/internal/ui/hud"
)

var _ input.Pawn = (*character.Character)(nil)

// DefaultPlayerName names the pawn when Options leaves it empty.
const DefaultPlayerName = "Player"

// Mode is the game mode: it spawns the default pawn, owns the HUD and runs
// the fixed-rate update loop.
type Mode struct {
	ScreenWidth  int
	ScreenHeight int
	Config       *simulation.Config
	Renderer     render.Renderer
	InputMgr     render.InputManager

	// Player pawn and the controller feeding it
	Player     *character.Character
	Controller *input.Controller

	// HUD
	GameHUD *hud.HUD

	recorder Recorder
	logger   *log.Logger

	// Tick counts completed updates
	Tick uint64

	wasSprinting bool
}

// NewMode builds the pawn, bindings and HUD from opts.
func NewMode(opts Options) (*Mode, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = simulation.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Renderer == nil || opts.Input == nil {
		return nil, fmt.Errorf("game mode needs a renderer and an input manager")
	}

	bindings, err := input.NewBindings(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve input bindings: %w", err)
	}

	name := opts.PlayerName
	if name == "" {
		name = DefaultPlayerName
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	player := character.New(name, cfg)
	gameHUD := hud.New(opts.HUD, opts.Renderer, opts.ScreenWidth, opts.ScreenHeight)
	gameHUD.SetPlayer(player)

	return &Mode{
		ScreenWidth:  opts.ScreenWidth,
		ScreenHeight: opts.ScreenHeight,
		Config:       cfg,
		Renderer:     opts.Renderer,
		InputMgr:     opts.Input,
		Player:       player,
		Controller:   input.NewController(bindings, opts.Input, player),
		GameHUD:      gameHUD,
		recorder:     opts.Recorder,
		logger:       logger,
	}, nil
}

// Update handles one fixed tick: input, then the pawn, then recording.
func (m *Mode) Update() error {
	if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}
	if m.InputMgr.IsKeyJustPressed(render.KeyF1) {
		m.GameHUD.ToggleDebug()
	}

	dt := m.Config.TickSeconds()
	m.Controller.Update(dt)
	m.Player.Tick(dt)
	m.Tick++

	m.logSprintChange()

	if m.recorder != nil {
		if err := m.recorder.Record(m.Tick, m.Player.Status()); err != nil {
			m.logger.Printf("Warning: trace disabled after write error: %v", err)
			m.recorder = nil
		}
	}
	return nil
}

// logSprintChange logs sprint transitions, calling out forced stops.
func (m *Mode) logSprintChange() {
	sprinting := m.Player.IsSprinting()
	if sprinting == m.wasSprinting {
		return
	}
	m.wasSprinting = sprinting

	switch {
	case sprinting:
		m.logger.Printf("tick %d: sprint started (stamina %.1f)", m.Tick, m.Player.CurrentStamina())
	case m.Player.CurrentStamina() <= 0:
		m.logger.Printf("tick %d: sprint stopped, out of stamina", m.Tick)
	default:
		m.logger.Printf("tick %d: sprint stopped (stamina %.1f)", m.Tick, m.Player.CurrentStamina())
	}
}

// Layout tracks the window size and uses it as the logical screen size.
func (m *Mode) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth = outsideWidth
		m.ScreenHeight = outsideHeight
		m.GameHUD.SetScreenSize(outsideWidth, outsideHeight)
	}
	return m.ScreenWidth, m.ScreenHeight
}
