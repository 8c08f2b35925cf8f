package game

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"seagullz.com/seagullz/internal/character"
	"seagullz.com/seagullz/internal/render"
	"seagullz.com/seagullz/internal/render/rendertest"
	"seagullz.com/seagullz/internal/simulation"
)

type memRecorder struct {
	ticks []uint64
	last  character.Status
	fail  bool
}

func (r *memRecorder) Record(tick uint64, s character.Status) error {
	if r.fail {
		return errors.New("disk full")
	}
	r.ticks = append(r.ticks, tick)
	r.last = s
	return nil
}

type fixture struct {
	mode   *Mode
	in     *rendertest.Input
	draw   *rendertest.Renderer
	rec    *memRecorder
	logBuf *bytes.Buffer
}

func newFixture(t *testing.T, cfg *simulation.Config) *fixture {
	t.Helper()
	f := &fixture{
		in:     rendertest.NewInput(),
		draw:   &rendertest.Renderer{},
		rec:    &memRecorder{},
		logBuf: &bytes.Buffer{},
	}
	mode, err := NewMode(Options{
		Config:       cfg,
		Renderer:     f.draw,
		Input:        f.in,
		ScreenWidth:  800,
		ScreenHeight: 600,
		Recorder:     f.rec,
		Logger:       log.New(f.logBuf, "", 0),
	})
	if err != nil {
		t.Fatalf("NewMode: %v", err)
	}
	f.mode = mode
	return f
}

// step runs one tick and clears input edges.
func (f *fixture) step(t *testing.T) {
	t.Helper()
	if err := f.mode.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	f.in.EndTick()
}

func TestSprintKeyDrivesRegulator(t *testing.T) {
	f := newFixture(t, nil)

	f.in.Press(render.KeyShift)
	f.step(t)
	if !f.mode.Player.IsSprinting() {
		t.Fatal("Expected Shift to start sprinting")
	}
	if f.mode.Player.CurrentStamina() >= 100 {
		t.Errorf("Expected stamina to drain on the first sprint tick, got %f", f.mode.Player.CurrentStamina())
	}

	f.in.Release(render.KeyShift)
	f.step(t)
	if f.mode.Player.IsSprinting() {
		t.Fatal("Expected releasing Shift to stop sprinting")
	}

	logs := f.logBuf.String()
	if !strings.Contains(logs, "sprint started") || !strings.Contains(logs, "sprint stopped") {
		t.Errorf("Expected sprint transitions in the log, got:\n%s", logs)
	}
}

func TestHeldSprintIsForcedOff(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Sprint.InitialStamina = 0.25
	f := newFixture(t, cfg)

	f.in.Press(render.KeyShift)
	for i := 0; i < 5; i++ {
		f.step(t)
	}

	if f.mode.Player.IsSprinting() {
		t.Error("Expected exhaustion to stop the sprint while the key is held")
	}
	if !strings.Contains(f.logBuf.String(), "out of stamina") {
		t.Errorf("Expected forced stop to be logged, got:\n%s", f.logBuf.String())
	}
}

func TestUpdateRecordsEveryTick(t *testing.T) {
	f := newFixture(t, nil)

	f.in.Held[render.KeyW] = true
	for i := 0; i < 3; i++ {
		f.step(t)
	}

	if len(f.rec.ticks) != 3 || f.rec.ticks[2] != 3 {
		t.Fatalf("Expected ticks 1..3 recorded, got %v", f.rec.ticks)
	}
	if f.rec.last.Position.X <= 0 {
		t.Errorf("Expected W to move the player forward, got x=%f", f.rec.last.Position.X)
	}
	if f.mode.Tick != 3 {
		t.Errorf("Expected tick counter 3, got %d", f.mode.Tick)
	}
}

func TestRecorderErrorDisablesTrace(t *testing.T) {
	f := newFixture(t, nil)
	f.rec.fail = true

	f.step(t)
	f.step(t)

	if n := strings.Count(f.logBuf.String(), "trace disabled"); n != 1 {
		t.Errorf("Expected one trace warning, got %d", n)
	}
}

func TestEscapeQuits(t *testing.T) {
	f := newFixture(t, nil)

	f.in.Press(render.KeyEscape)
	if err := f.mode.Update(); !errors.Is(err, render.ErrQuit) {
		t.Errorf("Expected ErrQuit, got %v", err)
	}
}

func TestDrawAndLayout(t *testing.T) {
	f := newFixture(t, nil)

	w, h := f.mode.Layout(1024, 768)
	if w != 1024 || h != 768 {
		t.Errorf("Expected layout 1024x768, got %dx%d", w, h)
	}

	screen := &rendertest.Image{W: w, H: h}
	f.mode.Draw(screen)
	if screen.Filled == nil {
		t.Error("Expected the background to be filled")
	}
	if f.draw.Circles != 1 {
		t.Errorf("Expected one player marker, got %d", f.draw.Circles)
	}
	if len(f.draw.Texts) == 0 {
		t.Error("Expected HUD text to be drawn")
	}
}

func TestNewModeRejectsBadBindings(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Input.Actions["Sprint"] = []string{"Hyper"}

	_, err := NewMode(Options{
		Config:   cfg,
		Renderer: &rendertest.Renderer{},
		Input:    rendertest.NewInput(),
	})
	if err == nil {
		t.Error("Expected unknown key to be rejected")
	}
}

func TestSprintRingFollowsSprint(t *testing.T) {
	f := newFixture(t, nil)
	screen := &rendertest.Image{W: 800, H: 600}

	f.mode.Draw(screen)
	if f.draw.Rings != 0 {
		t.Errorf("Expected no sprint ring while walking, got %d", f.draw.Rings)
	}

	f.in.Press(render.KeyShift)
	f.step(t)
	f.draw.Reset()
	f.mode.Draw(screen)
	if f.draw.Rings != 1 {
		t.Errorf("Expected one sprint ring while sprinting, got %d", f.draw.Rings)
	}
	if f.draw.Circles != 1 {
		t.Errorf("Expected the player marker to still be drawn, got %d", f.draw.Circles)
	}
}
