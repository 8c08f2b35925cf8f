package stats

// DefaultHealth is the starting health of a new character.
const DefaultHealth = 100.0

// Health is a plain accumulator. Damage and healing are applied as signed
// deltas. There is no cap and no death transition; whatever drives the
// deltas decides what a value at or below zero means.
type Health struct {
	current float64
}

// NewHealth creates a health stat starting at initial.
func NewHealth(initial float64) Health {
	return Health{current: initial}
}

// Current returns the current health.
func (h *Health) Current() float64 {
	return h.current
}

// Adjust adds delta to the current health.
func (h *Health) Adjust(delta float64) {
	h.current += delta
}
