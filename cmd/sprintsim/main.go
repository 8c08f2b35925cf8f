// Command sprintsim runs the character simulation without a window. It holds
// sprint over a tick range and prints the stamina curve, which makes it easy
// to check a tuning file before trying it in game.
package main

import (
	"flag"
	"fmt"
	"os"

	"seagullz.com/seagullz/internal/character"
	"seagullz.com/seagullz/internal/simulation"
	"seagullz.com/seagullz/internal/telemetry"
)

type options struct {
	configPath string
	ticks      uint64
	sprintFrom uint64
	sprintTo   uint64
	every      uint64
	walk       bool
	traceDir   string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "data/simulation.yaml", "simulation config (JSON or YAML)")
	flag.Uint64Var(&opts.ticks, "ticks", 1200, "ticks to simulate")
	flag.Uint64Var(&opts.sprintFrom, "sprint-from", 1, "first tick with sprint held (inclusive)")
	flag.Uint64Var(&opts.sprintTo, "sprint-to", 600, "last tick with sprint held (inclusive, 0 = never release)")
	flag.Uint64Var(&opts.every, "every", 60, "print every N ticks (0 = transitions only)")
	flag.BoolVar(&opts.walk, "walk", true, "hold forward for the whole run")
	flag.StringVar(&opts.traceDir, "trace", "", "directory for a tick trace (optional)")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) (err error) {
	cfg, err := simulation.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var trace *telemetry.TraceLogger
	if opts.traceDir != "" {
		trace = telemetry.NewTraceLogger(opts.traceDir, 0)
		defer func() {
			// Buffered frames reach disk on close
			if cerr := trace.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close trace: %w", cerr)
			}
		}()
		fmt.Printf("trace session=%s dir=%s\n", trace.Session(), opts.traceDir)
	}

	c := character.New("sim", cfg)
	dt := cfg.TickSeconds()
	fmt.Printf("rate=%dHz drain=%g/tick regen=%g/tick multiplier=%g stamina=%g/%g\n",
		cfg.Tick.RateHz, cfg.Sprint.DrainPerTick, cfg.Sprint.RegenPerTick,
		cfg.Sprint.Multiplier, c.CurrentStamina(), cfg.Sprint.MaxStamina)

	held := false
	var forcedAt uint64
	for tick := uint64(1); tick <= opts.ticks; tick++ {
		want := tick >= opts.sprintFrom && (opts.sprintTo == 0 || tick <= opts.sprintTo)
		switch {
		case want && !held:
			c.StartSprint()
			fmt.Printf("tick %6d  press sprint\n", tick)
		case !want && held:
			c.StopSprint()
			fmt.Printf("tick %6d  release sprint\n", tick)
		}
		held = want

		if opts.walk {
			c.MoveForward(1)
		}
		wasSprinting := c.IsSprinting()
		c.Tick(dt)

		if wasSprinting && !c.IsSprinting() && held {
			forcedAt = tick
			fmt.Printf("tick %6d  sprint forced off, stamina %.2f\n", tick, c.CurrentStamina())
		}
		if opts.every > 0 && tick%opts.every == 0 {
			printTick(tick, c)
		}
		if trace != nil {
			if err := trace.Record(tick, c.Status()); err != nil {
				return fmt.Errorf("trace: %w", err)
			}
		}
	}

	if forcedAt > 0 {
		sprinted := forcedAt - opts.sprintFrom + 1
		fmt.Printf("exhausted after %d ticks of sprint (%.1fs)\n", sprinted, float64(sprinted)*dt)
	}
	printTick(opts.ticks, c)
	return nil
}

func printTick(tick uint64, c *character.Character) {
	s := c.Status()
	fmt.Printf("tick %6d  stamina=%7.2f sprinting=%-5t speed=%6.1f x=%9.1f\n",
		tick, s.Sprint.Stamina, s.Sprint.Sprinting, s.Sprint.Speed, s.Position.X)
}
