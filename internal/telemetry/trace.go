package telemetry

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"seagullz.com/seagullz/internal/character"
)

// Frame is one tick of character state.
type Frame struct {
	Session   string  `json:"session"`
	Tick      uint64  `json:"tick"`
	Stamina   float64 `json:"stamina"`
	Sprinting bool    `json:"sprinting"`
	Speed     float64 `json:"speed"`
	Health    float64 `json:"health"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
	Yaw       float64 `json:"yaw"`
	Pitch     float64 `json:"pitch"`
}

// FrameFrom builds a frame from a character status.
func FrameFrom(session string, tick uint64, s character.Status) Frame {
	return Frame{
		Session:   session,
		Tick:      tick,
		Stamina:   s.Sprint.Stamina,
		Sprinting: s.Sprint.Sprinting,
		Speed:     s.Sprint.Speed,
		Health:    s.Health,
		X:         s.Position.X,
		Y:         s.Position.Y,
		Z:         s.Position.Z,
		Yaw:       s.Yaw,
		Pitch:     s.Pitch,
	}
}

// TraceLogger writes one frame per tick for a single play session.
type TraceLogger struct {
	w          *JSONLZstdWriter
	session    string
	flushEvery uint64
}

// NewTraceLogger creates a logger writing under dir with a fresh session ID.
// Frames are flushed to disk every flushEvery ticks; zero leaves it to Close.
func NewTraceLogger(dir string, flushEvery uint64) *TraceLogger {
	return &TraceLogger{
		w:          NewJSONLZstdWriter(dir, "trace"),
		session:    uuid.NewString(),
		flushEvery: flushEvery,
	}
}

// Session returns the session ID stamped on every frame.
func (l *TraceLogger) Session() string { return l.session }

// Record writes the status for tick.
func (l *TraceLogger) Record(tick uint64, s character.Status) error {
	if err := l.w.Write(FrameFrom(l.session, tick, s)); err != nil {
		return err
	}
	if l.flushEvery > 0 && tick%l.flushEvery == 0 {
		return l.w.Flush()
	}
	return nil
}

// Close flushes and closes the trace.
func (l *TraceLogger) Close() error { return l.w.Close() }

// ReadFrames decodes every frame in a trace file.
func ReadFrames(path string) ([]Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var frames []Frame
	scanner := bufio.NewScanner(dec)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var fr Frame
		if err := json.Unmarshal(scanner.Bytes(), &fr); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		frames = append(frames, fr)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return frames, nil
}

// ListTraceFiles returns the trace files in dir, oldest first.
func ListTraceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), FileExt) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	// Hour stamps sort lexically
	sort.Strings(out)
	return out, nil
}

// Summary aggregates a run of frames.
type Summary struct {
	Frames       int
	Sessions     int
	MinStamina   float64
	MaxStamina   float64
	SprintTicks  int
	ForcedStops  int
	FinalStamina float64
	FinalHealth  float64
}

// Summarize computes a Summary. A forced stop is a tick where sprinting went
// from on to off with stamina at zero.
func Summarize(frames []Frame) Summary {
	var s Summary
	if len(frames) == 0 {
		return s
	}
	sessions := make(map[string]struct{})
	s.MinStamina = frames[0].Stamina
	s.MaxStamina = frames[0].Stamina
	for i, f := range frames {
		sessions[f.Session] = struct{}{}
		if f.Stamina < s.MinStamina {
			s.MinStamina = f.Stamina
		}
		if f.Stamina > s.MaxStamina {
			s.MaxStamina = f.Stamina
		}
		if f.Sprinting {
			s.SprintTicks++
		}
		if i > 0 && frames[i-1].Session == f.Session && frames[i-1].Sprinting && !f.Sprinting && f.Stamina == 0 {
			s.ForcedStops++
		}
	}
	last := frames[len(frames)-1]
	s.Frames = len(frames)
	s.Sessions = len(sessions)
	s.FinalStamina = last.Stamina
	s.FinalHealth = last.Health
	return s
}
