// Package hud provides the heads-up display: a centred crosshair and a panel
// with the player's health and stamina.
package hud

import (
	"fmt"
	"image/color"
	"math"

	"seagullz.com/seagullz/internal/character"
	"seagullz.com/seagullz/internal/render"
)

// HUDConfig defines what to display in the HUD
type HUDConfig struct {
	ShowCrosshair bool    // Draw the centre crosshair
	ShowHealth    bool    // Show health readout
	ShowStamina   bool    // Show stamina bar
	ShowPosition  bool    // Show world position and view angles
	Position      string  // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity       float64 // Background opacity, clamped to 0-1
	LowStamina    float64 // Fraction below which the bar turns red
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		ShowCrosshair: true,
		ShowHealth:    true,
		ShowStamina:   true,
		ShowPosition:  false,
		Position:      "bottom-left",
		Opacity:       0.7,
		LowStamina:    0.25,
	}
}

// StatusSource supplies the state the HUD displays.
type StatusSource interface {
	Status() character.Status
}

// Colours used by the HUD
var (
	crosshairColor    = color.RGBA{255, 255, 255, 220}
	staminaColor      = color.RGBA{60, 170, 230, 255}
	staminaSprintTint = color.RGBA{120, 220, 255, 255}
	staminaLowColor   = color.RGBA{210, 60, 50, 255}
	barBackground     = color.RGBA{30, 30, 45, 255}
	textColor         = color.RGBA{230, 230, 230, 255}
)

// Shown next to the stamina label while sprinting
const sprintTag = "SPRINT"

// Layout constants
const (
	panelWidth     = 200
	panelPadding   = 8
	lineHeight     = 16
	barHeight      = 10
	crosshairSize  = 8
	crosshairGap   = 3
	screenPadding  = 10
	crosshairWidth = 2
)

// HUD manages the heads-up display
type HUD struct {
	config       *HUDConfig
	renderer     render.Renderer
	screenWidth  int
	screenHeight int

	player StatusSource
}

// New creates a new HUD with the given configuration. The HUD keeps its own
// copy of config.
func New(config *HUDConfig, r render.Renderer, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	cfg := *config
	switch {
	case cfg.Opacity < 0 || math.IsNaN(cfg.Opacity):
		cfg.Opacity = 0
	case cfg.Opacity > 1:
		cfg.Opacity = 1
	}
	return &HUD{
		config:       &cfg,
		renderer:     r,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// SetPlayer sets the source of the displayed stats
func (h *HUD) SetPlayer(player StatusSource) {
	h.player = player
}

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// ToggleDebug shows or hides the position readout
func (h *HUD) ToggleDebug() {
	h.config.ShowPosition = !h.config.ShowPosition
}

// Draw renders the HUD to the screen
func (h *HUD) Draw(screen render.Image) {
	if h.config.ShowCrosshair {
		h.drawCrosshair(screen)
	}

	if h.player == nil {
		return
	}
	status := h.player.Status()

	x, y := h.calculatePosition()
	h.drawPanel(screen, x, y)

	currentY := y + panelPadding
	if status.Name != "" {
		h.renderer.DrawText(screen, status.Name, x+panelPadding, currentY, textColor, 1)
		currentY += lineHeight
	}

	if h.config.ShowHealth {
		h.renderer.DrawText(screen, fmt.Sprintf("Health: %.0f", status.Health), x+panelPadding, currentY, textColor, 1)
		currentY += lineHeight
	}

	if h.config.ShowStamina {
		currentY = h.drawStaminaBar(screen, x+panelPadding, currentY, status)
	}

	if h.config.ShowPosition {
		p := status.Position
		h.renderer.DrawText(screen, fmt.Sprintf("Pos: %.0f, %.0f, %.0f", p.X, p.Y, p.Z), x+panelPadding, currentY, textColor, 1)
		currentY += lineHeight
		h.renderer.DrawText(screen, fmt.Sprintf("Yaw: %.0f Pitch: %.0f", status.Yaw, status.Pitch), x+panelPadding, currentY, textColor, 1)
	}
}

// drawCrosshair draws a plus centred on the screen
func (h *HUD) drawCrosshair(screen render.Image) {
	cx := float32(h.screenWidth) / 2
	cy := float32(h.screenHeight) / 2

	h.renderer.StrokeLine(screen, cx-crosshairSize, cy, cx-crosshairGap, cy, crosshairWidth, crosshairColor)
	h.renderer.StrokeLine(screen, cx+crosshairGap, cy, cx+crosshairSize, cy, crosshairWidth, crosshairColor)
	h.renderer.StrokeLine(screen, cx, cy-crosshairSize, cx, cy-crosshairGap, crosshairWidth, crosshairColor)
	h.renderer.StrokeLine(screen, cx, cy+crosshairGap, cx, cy+crosshairSize, crosshairWidth, crosshairColor)
}

// calculatePosition returns the top-left corner of the HUD panel
func (h *HUD) calculatePosition() (int, int) {
	height := h.panelHeight()

	switch h.config.Position {
	case "top-right":
		return h.screenWidth - panelWidth - screenPadding, screenPadding
	case "bottom-left":
		return screenPadding, h.screenHeight - height - screenPadding
	case "bottom-right":
		return h.screenWidth - panelWidth - screenPadding, h.screenHeight - height - screenPadding
	default: // "top-left"
		return screenPadding, screenPadding
	}
}

// panelHeight calculates the height needed for the enabled elements
func (h *HUD) panelHeight() int {
	height := panelPadding * 2
	height += lineHeight // Name
	if h.config.ShowHealth {
		height += lineHeight
	}
	if h.config.ShowStamina {
		height += lineHeight + barHeight + 4
	}
	if h.config.ShowPosition {
		height += lineHeight * 2
	}
	return height
}

// drawPanel draws the semi-transparent background panel
func (h *HUD) drawPanel(screen render.Image, x, y int) {
	alpha := uint8(h.config.Opacity * 255)
	h.renderer.FillRect(screen, float32(x), float32(y), panelWidth, float32(h.panelHeight()), color.RGBA{20, 20, 30, alpha})
	h.renderer.StrokeRect(screen, float32(x), float32(y), panelWidth, float32(h.panelHeight()), 1, color.RGBA{60, 60, 80, alpha})
}

// drawStaminaBar draws the label and a bar proportional to the stamina left
func (h *HUD) drawStaminaBar(screen render.Image, x, y int, status character.Status) int {
	s := status.Sprint
	barWidth := panelWidth - panelPadding*2

	h.renderer.DrawText(screen, fmt.Sprintf("Stamina: %.0f/%.0f", s.Stamina, s.MaxStamina), x, y, textColor, 1)
	if s.Sprinting {
		// Right-aligned with the end of the bar
		w, _ := h.renderer.MeasureText(sprintTag, 1)
		h.renderer.DrawText(screen, sprintTag, x+barWidth-w, y, staminaSprintTint, 1)
	}
	y += lineHeight

	h.renderer.FillRect(screen, float32(x), float32(y), float32(barWidth), barHeight, barBackground)

	fraction := 0.0
	if s.MaxStamina > 0 {
		fraction = s.Stamina / s.MaxStamina
	}
	if fillWidth := float32(float64(barWidth) * fraction); fillWidth > 0 {
		h.renderer.FillRect(screen, float32(x), float32(y), fillWidth, barHeight, h.staminaFill(fraction, s.Sprinting))
	}

	return y + barHeight + 4
}

// staminaFill picks the bar colour for the current fraction
func (h *HUD) staminaFill(fraction float64, sprinting bool) color.RGBA {
	switch {
	case fraction < h.config.LowStamina:
		return staminaLowColor
	case sprinting:
		return staminaSprintTint
	default:
		return staminaColor
	}
}
