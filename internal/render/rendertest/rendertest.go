// Package rendertest provides in-memory fakes of the render interfaces for
// tests that must run without a window or GPU.
package rendertest

import (
	"image/color"

	"seagullz.com/seagullz/internal/render"
)

// Rect is a recorded FillRect call.
type Rect struct {
	X, Y, W, H float32
	Color      color.Color
}

// Text is a recorded DrawText call.
type Text struct {
	Str  string
	X, Y int
}

// Renderer records draw calls. Text is measured as 6x16 pixels per
// character, like the debug font.
type Renderer struct {
	Rects   []Rect
	Lines   int
	Circles int // filled
	Rings   int // stroked
	Texts   []Text
}

// Reset forgets recorded calls.
func (r *Renderer) Reset() {
	*r = Renderer{}
}

// Strings returns the drawn text in call order.
func (r *Renderer) Strings() []string {
	out := make([]string, len(r.Texts))
	for i, t := range r.Texts {
		out[i] = t.Str
	}
	return out
}

func (r *Renderer) FillRect(dst render.Image, x, y, w, h float32, clr color.Color) {
	r.Rects = append(r.Rects, Rect{X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Renderer) StrokeRect(dst render.Image, x, y, w, h, strokeWidth float32, clr color.Color) {}

func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	r.Lines++
}

func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.Circles++
}

func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius, strokeWidth float32, clr color.Color) {
	r.Rings++
}

func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.Texts = append(r.Texts, Text{Str: text, X: x, Y: y})
}

func (r *Renderer) MeasureText(text string, scale float64) (int, int) {
	return int(float64(len(text)*6) * scale), int(16 * scale)
}

// Image is a sized surface that remembers its last fill.
type Image struct {
	W, H   int
	Filled color.Color
}

func (i *Image) Size() (int, int)     { return i.W, i.H }
func (i *Image) Fill(clr color.Color) { i.Filled = clr }

// Input is a scriptable InputManager. Press and Release set both the held
// state and the edge; EndTick clears edges like a backend does between ticks.
type Input struct {
	Held         map[render.Key]bool
	JustPressed  map[render.Key]bool
	JustReleased map[render.Key]bool
	X, Y         int
}

// NewInput creates an Input with nothing held.
func NewInput() *Input {
	return &Input{
		Held:         make(map[render.Key]bool),
		JustPressed:  make(map[render.Key]bool),
		JustReleased: make(map[render.Key]bool),
	}
}

func (in *Input) IsKeyPressed(key render.Key) bool      { return in.Held[key] }
func (in *Input) IsKeyJustPressed(key render.Key) bool  { return in.JustPressed[key] }
func (in *Input) IsKeyJustReleased(key render.Key) bool { return in.JustReleased[key] }
func (in *Input) GetCursorPosition() (int, int)         { return in.X, in.Y }

// Press holds key and marks it just pressed.
func (in *Input) Press(key render.Key) {
	in.Held[key] = true
	in.JustPressed[key] = true
}

// Release lets go of key and marks it just released.
func (in *Input) Release(key render.Key) {
	delete(in.Held, key)
	in.JustReleased[key] = true
}

// EndTick clears the edge state.
func (in *Input) EndTick() {
	in.JustPressed = make(map[render.Key]bool)
	in.JustReleased = make(map[render.Key]bool)
}
