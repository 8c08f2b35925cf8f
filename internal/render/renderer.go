// Package render defines the backend-neutral drawing, input and game-loop
// interfaces. Game logic only talks to these so it can be driven by the
// ebiten backend in a window or by fakes in tests.
package render

import (
	"errors"
	"image/color"
)

// ErrQuit is returned from Game.Update to end the loop cleanly.
var ErrQuit = errors.New("render: quit requested")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine.
type Renderer interface {
	// Vector operations (for drawing shapes)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeRect(dst Image, x, y, width, height, strokeWidth float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a render target, usually the screen.
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
}

// InputManager handles input from the user (keyboard, mouse).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	IsKeyJustReleased(key Key) bool
	GetCursorPosition() (x, y int)
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game binds
const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyR
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyShift
	KeyEscape
	KeyF1
)

var keyNames = map[string]Key{
	"W":      KeyW,
	"A":      KeyA,
	"S":      KeyS,
	"D":      KeyD,
	"Q":      KeyQ,
	"E":      KeyE,
	"R":      KeyR,
	"Up":     KeyUp,
	"Down":   KeyDown,
	"Left":   KeyLeft,
	"Right":  KeyRight,
	"Space":  KeySpace,
	"Shift":  KeyShift,
	"Escape": KeyEscape,
	"F1":     KeyF1,
}

// KeyByName looks up a key by its binding name (e.g. "Shift").
func KeyByName(name string) (Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// SetTPS sets the number of Update calls per second.
	SetTPS(tps int)

	// SetCursorCaptured hides and locks the cursor for mouse look.
	SetCursorCaptured(captured bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends. ErrQuit from
	// Update ends it without an error.
	RunGame(game Game) error
}
