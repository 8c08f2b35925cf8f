package game

import (
	"image/color"
	"math"

	"seagullz.com/seagullz/internal/render"
)

// World units per screen pixel in the debug view
const worldScale = 10.0

// Grid spacing of the debug view in world units
const gridSpacing = 500.0

// Gap between the player marker and its sprint ring, in pixels
const sprintRingGap = 4.0

var (
	backgroundColor = color.RGBA{18, 22, 28, 255}
	gridColor       = color.RGBA{40, 46, 56, 255}
	playerColor     = color.RGBA{220, 220, 220, 255}
	sprintColor     = color.RGBA{120, 220, 255, 255}
	facingColor     = color.RGBA{255, 200, 80, 255}
)

// Draw renders a top-down debug view centred on the player, then the HUD.
func (m *Mode) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	w, h := screen.Size()
	cx, cy := float64(w)/2, float64(h)/2
	pos := m.Player.Position

	m.drawGrid(screen, w, h, pos.X, pos.Y)

	// The player stays centred; jumping scales the marker up a little
	radius := 10 + pos.Z/worldScale/4
	m.Renderer.FillCircle(screen, float32(cx), float32(cy), float32(radius), playerColor)
	if m.Player.IsSprinting() {
		m.Renderer.StrokeCircle(screen, float32(cx), float32(cy), float32(radius+sprintRingGap), 2, sprintColor)
	}

	// Facing line along the control yaw
	rad := m.Player.Yaw() * math.Pi / 180
	fx := cx + math.Cos(rad)*radius*2
	fy := cy + math.Sin(rad)*radius*2
	m.Renderer.StrokeLine(screen, float32(cx), float32(cy), float32(fx), float32(fy), 2, facingColor)

	m.GameHUD.Draw(screen)
}

// drawGrid draws world grid lines scrolled so the player is at the centre.
func (m *Mode) drawGrid(screen render.Image, w, h int, px, py float64) {
	halfW := float64(w) / 2 * worldScale
	halfH := float64(h) / 2 * worldScale

	for x := math.Floor((px-halfW)/gridSpacing) * gridSpacing; x <= px+halfW; x += gridSpacing {
		sx := float32((x-px)/worldScale + float64(w)/2)
		m.Renderer.StrokeLine(screen, sx, 0, sx, float32(h), 1, gridColor)
	}
	for y := math.Floor((py-halfH)/gridSpacing) * gridSpacing; y <= py+halfH; y += gridSpacing {
		sy := float32((y-py)/worldScale + float64(h)/2)
		m.Renderer.StrokeLine(screen, 0, sy, float32(w), sy, 1, gridColor)
	}
}
