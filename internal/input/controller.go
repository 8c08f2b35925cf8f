package input

import "seagullz.com/seagullz/internal/render"

// DefaultMouseScale converts cursor pixels to degrees of look.
const DefaultMouseScale = 0.2

// Controller polls an InputManager once per tick and drives a Pawn.
type Controller struct {
	bindings *Bindings
	input    render.InputManager
	pawn     Pawn

	// MouseScale is degrees of look per pixel of cursor movement.
	MouseScale float64

	lastX, lastY int
	haveCursor   bool
}

// NewController creates a controller that feeds pawn from im.
func NewController(bindings *Bindings, im render.InputManager, pawn Pawn) *Controller {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Controller{
		bindings:   bindings,
		input:      im,
		pawn:       pawn,
		MouseScale: DefaultMouseScale,
	}
}

// Update dispatches this tick's input. Actions fire first, in name order,
// with each action's press before its release, so a press and release in
// the same tick leave the released state. Axes follow.
func (c *Controller) Update(dt float64) {
	dx, dy := c.cursorDelta()

	for _, action := range c.bindings.Actions {
		h := actionHandlers[action.Name]
		if h.pressed != nil && c.anyJustPressed(action.Keys) {
			h.pressed(c.pawn)
		}
		if h.released != nil && c.anyJustReleased(action.Keys) {
			h.released(c.pawn)
		}
	}

	for _, axis := range c.bindings.Axes {
		value := 0.0
		for _, k := range axis.Keys {
			switch k.mouse {
			case mouseX:
				value += float64(dx) * c.MouseScale * k.Scale
			case mouseY:
				value += float64(dy) * c.MouseScale * k.Scale
			default:
				if c.input.IsKeyPressed(k.Key) {
					value += k.Scale
				}
			}
		}
		axisHandlers[axis.Name](c.pawn, value, dt)
	}
}

func (c *Controller) cursorDelta() (int, int) {
	x, y := c.input.GetCursorPosition()
	if !c.haveCursor {
		c.lastX, c.lastY = x, y
		c.haveCursor = true
		return 0, 0
	}
	dx, dy := x-c.lastX, y-c.lastY
	c.lastX, c.lastY = x, y
	return dx, dy
}

func (c *Controller) anyJustPressed(keys []render.Key) bool {
	for _, k := range keys {
		if c.input.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (c *Controller) anyJustReleased(keys []render.Key) bool {
	for _, k := range keys {
		if c.input.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}
