package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"seagullz.com/seagullz/internal/character"
	"seagullz.com/seagullz/internal/simulation"
)

func TestTraceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	logger := NewTraceLogger(dir, 0)
	if logger.Session() == "" {
		t.Fatal("Expected a session ID")
	}

	c := character.New("tracer", simulation.DefaultConfig())
	c.StartSprint()
	for tick := uint64(1); tick <= 10; tick++ {
		c.Tick(1.0 / 60.0)
		if err := logger.Record(tick, c.Status()); err != nil {
			t.Fatalf("Record tick %d: %v", tick, err)
		}
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	files, err := ListTraceFiles(dir)
	if err != nil {
		t.Fatalf("ListTraceFiles: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("Expected 1 trace file, got %d", len(files))
	}
	if !strings.HasPrefix(filepath.Base(files[0]), "trace-") {
		t.Errorf("Unexpected trace file name %s", files[0])
	}

	frames, err := ReadFrames(files[0])
	if err != nil {
		t.Fatalf("ReadFrames: %v", err)
	}
	if len(frames) != 10 {
		t.Fatalf("Expected 10 frames, got %d", len(frames))
	}

	last := frames[9]
	if last.Tick != 10 || last.Session != logger.Session() {
		t.Errorf("Unexpected last frame header: tick=%d session=%s", last.Tick, last.Session)
	}
	if !last.Sprinting || last.Speed != 1500 {
		t.Errorf("Expected sprinting at 1500, got sprinting=%v speed=%f", last.Sprinting, last.Speed)
	}
	if last.Stamina < 98.99 || last.Stamina > 99.01 {
		t.Errorf("Expected stamina ~99 after 10 sprint ticks, got %f", last.Stamina)
	}
}

func TestWriterRotatesHourly(t *testing.T) {
	dir := t.TempDir()
	w := NewJSONLZstdWriter(dir, "trace")
	now := time.Date(2026, 3, 1, 10, 59, 0, 0, time.UTC)
	w.now = func() time.Time { return now }

	if err := w.Write(Frame{Tick: 1}); err != nil {
		t.Fatal(err)
	}
	now = now.Add(2 * time.Minute)
	if err := w.Write(Frame{Tick: 2}); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	files, err := ListTraceFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "trace-2026-03-01-10"+FileExt),
		filepath.Join(dir, "trace-2026-03-01-11"+FileExt),
	}
	if len(files) != 2 || files[0] != want[0] || files[1] != want[1] {
		t.Fatalf("Expected %v, got %v", want, files)
	}

	frames, err := ReadFrames(files[1])
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 1 || frames[0].Tick != 2 {
		t.Errorf("Expected the second hour to hold tick 2, got %+v", frames)
	}
}

func TestWriterAppendsAfterReopen(t *testing.T) {
	dir := t.TempDir()
	w := NewJSONLZstdWriter(dir, "trace")
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return fixed }

	for i := uint64(1); i <= 2; i++ {
		if err := w.Write(Frame{Tick: i}); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
	}

	frames, err := ReadFrames(filepath.Join(dir, "trace-2026-03-01-10"+FileExt))
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 2 {
		t.Errorf("Expected both writes in one file, got %d frames", len(frames))
	}
}

func TestListTraceFilesIgnoresOthers(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"notes.txt", "trace-2026-01-01-00.jsonl"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	files, err := ListTraceFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("Expected no trace files, got %v", files)
	}
}

func TestSummarize(t *testing.T) {
	frames := []Frame{
		{Session: "a", Tick: 1, Stamina: 0.1, Sprinting: true, Health: 100},
		{Session: "a", Tick: 2, Stamina: 0, Sprinting: true, Health: 100},
		{Session: "a", Tick: 3, Stamina: 0, Sprinting: false, Health: 100},
		{Session: "a", Tick: 4, Stamina: 0.25, Sprinting: false, Health: 90},
	}

	s := Summarize(frames)
	if s.Frames != 4 || s.Sessions != 1 {
		t.Errorf("Expected 4 frames in 1 session, got %d in %d", s.Frames, s.Sessions)
	}
	if s.SprintTicks != 2 {
		t.Errorf("Expected 2 sprint ticks, got %d", s.SprintTicks)
	}
	if s.ForcedStops != 1 {
		t.Errorf("Expected 1 forced stop, got %d", s.ForcedStops)
	}
	if s.MinStamina != 0 || s.MaxStamina != 0.25 {
		t.Errorf("Expected stamina range [0, 0.25], got [%f, %f]", s.MinStamina, s.MaxStamina)
	}
	if s.FinalHealth != 90 || s.FinalStamina != 0.25 {
		t.Errorf("Unexpected final values: %+v", s)
	}

	if empty := Summarize(nil); empty.Frames != 0 {
		t.Errorf("Expected empty summary, got %+v", empty)
	}
}

func TestTraceLoggerFlushesOnInterval(t *testing.T) {
	dir := t.TempDir()
	logger := NewTraceLogger(dir, 3)
	defer logger.Close()

	c := character.New("tracer", simulation.DefaultConfig())
	for tick := uint64(1); tick <= 3; tick++ {
		if err := logger.Record(tick, c.Status()); err != nil {
			t.Fatalf("Record tick %d: %v", tick, err)
		}
	}

	files, err := ListTraceFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("Expected 1 trace file, got %d", len(files))
	}
	info, err := os.Stat(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("Expected frames on disk after the flush tick, file is empty")
	}
}

func TestWriterFlushBeforeWrite(t *testing.T) {
	w := NewJSONLZstdWriter(t.TempDir(), "trace")
	if err := w.Flush(); err != nil {
		t.Errorf("Expected Flush with no open file to be a no-op, got %v", err)
	}
}
