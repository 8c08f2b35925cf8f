package main

import (
	"flag"
	"log"
	"os"

	"seagullz.com/seagullz/internal/game"
	ebitenrender "seagullz.com/seagullz/internal/render/ebiten"
	"seagullz.com/seagullz/internal/simulation"
	"seagullz.com/seagullz/internal/telemetry"
)

func main() {
	var (
		configPath = flag.String("config", "data/simulation.yaml", "simulation config (JSON or YAML)")
		traceDir   = flag.String("trace", "", "directory for per-tick traces (disabled when empty)")
		width      = flag.Int("width", 1280, "window width")
		height     = flag.Int("height", 800, "window height")
		name       = flag.String("name", game.DefaultPlayerName, "player name shown on the HUD")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[seagullz] ", log.LstdFlags)

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.Printf("Sprint tuning: %+v at %d ticks/s", cfg.Sprint, cfg.Tick.RateHz)

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	opts := game.Options{
		Config:       cfg,
		Renderer:     renderer,
		Input:        inputMgr,
		ScreenWidth:  *width,
		ScreenHeight: *height,
		PlayerName:   *name,
		Logger:       logger,
	}

	if *traceDir != "" {
		// Flush once per simulated second
		trace := telemetry.NewTraceLogger(*traceDir, uint64(cfg.Tick.RateHz))
		defer func() {
			if err := trace.Close(); err != nil {
				logger.Printf("Warning: failed to close trace: %v", err)
			}
		}()
		opts.Recorder = trace
		logger.Printf("Tracing session %s to %s", trace.Session(), *traceDir)
	}

	mode, err := game.NewMode(opts)
	if err != nil {
		// Return so the deferred trace close runs
		logger.Printf("Failed to create game mode: %v", err)
		return
	}

	// Set up the window
	engine.SetWindowSize(*width, *height)
	engine.SetWindowTitle("SEAGULLZ")
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.Tick.RateHz)
	engine.SetCursorCaptured(true)

	logger.Println("Starting game...")
	if err := engine.RunGame(mode); err != nil {
		logger.Printf("Game exited with error: %v", err)
		return
	}
	logger.Println("Bye")
}
