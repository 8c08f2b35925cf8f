// Package stats holds the per-character resources that gameplay code reads and
// mutates every tick: the stamina pool that gates sprinting, and health.
//
// Nothing in this package locks. A Regulator or Health value is owned by a
// single character and is only touched from that character's update callback.
package stats

import "math"

// Default sprint tuning. Drain and regen are amounts per tick, not per second.
const (
	DefaultMaxStamina       = 100.0
	DefaultInitialStamina   = 100.0
	DefaultDrainPerTick     = 0.1
	DefaultRegenPerTick     = 0.25
	DefaultSprintMultiplier = 2.5
)

// SprintConfig is the construction-time tuning for a Regulator.
type SprintConfig struct {
	InitialStamina float64
	MaxStamina     float64
	DrainPerTick   float64
	RegenPerTick   float64
	Multiplier     float64
}

// DefaultSprintConfig returns the stock sprint tuning.
func DefaultSprintConfig() SprintConfig {
	return SprintConfig{
		InitialStamina: DefaultInitialStamina,
		MaxStamina:     DefaultMaxStamina,
		DrainPerTick:   DefaultDrainPerTick,
		RegenPerTick:   DefaultRegenPerTick,
		Multiplier:     DefaultSprintMultiplier,
	}
}

// Regulator owns a character's stamina and sprint state. Sprinting multiplies
// the base speed and drains stamina each tick; not sprinting regenerates it.
// Running out of stamina forces the sprint off.
type Regulator struct {
	cfg SprintConfig

	stamina   float64
	sprinting bool
	baseSpeed float64
	speed     float64
}

// NewRegulator creates a regulator with the given tuning. baseSpeed is the
// character's nominal movement speed and is captured once here.
func NewRegulator(cfg SprintConfig, baseSpeed float64) Regulator {
	if cfg.MaxStamina <= 0 {
		cfg.MaxStamina = DefaultMaxStamina
	}
	if cfg.Multiplier <= 0 {
		cfg.Multiplier = DefaultSprintMultiplier
	}

	r := Regulator{
		cfg:       cfg,
		baseSpeed: baseSpeed,
		speed:     baseSpeed,
	}
	r.stamina = r.clamp(cfg.InitialStamina)
	return r
}

// StartSprint turns sprinting on. It does not look at stamina; if the pool is
// empty the next Tick stops the sprint again.
func (r *Regulator) StartSprint() {
	r.speed = r.baseSpeed * r.cfg.Multiplier
	r.sprinting = true
}

// StopSprint turns sprinting off and restores the base speed.
func (r *Regulator) StopSprint() {
	r.speed = r.baseSpeed
	r.sprinting = false
}

// Tick advances the regulator by one simulation step. dt is accepted for
// symmetry with the rest of the update loop but drain and regen are fixed
// amounts per tick.
func (r *Regulator) Tick(dt float64) {
	_ = dt

	if r.sprinting {
		if r.stamina <= 0 {
			r.StopSprint()
		} else {
			r.UpdateStamina(-r.cfg.DrainPerTick)
		}
		return
	}

	if r.stamina < r.cfg.MaxStamina {
		r.UpdateStamina(r.cfg.RegenPerTick)
	}
}

// UpdateStamina adds delta to the pool and clamps the result to [0, max].
// Pickups and abilities use it to adjust stamina directly. A NaN delta is
// ignored.
func (r *Regulator) UpdateStamina(delta float64) {
	if math.IsNaN(delta) {
		return
	}
	r.stamina = r.clamp(r.stamina + delta)
}

// clamp checks both bounds independently.
func (r *Regulator) clamp(v float64) float64 {
	if v > r.cfg.MaxStamina {
		v = r.cfg.MaxStamina
	}
	if v < 0 {
		v = 0
	}
	return v
}

// CurrentStamina returns the stamina left in the pool.
func (r *Regulator) CurrentStamina() float64 {
	return r.stamina
}

// InitialStamina returns the configured starting stamina.
func (r *Regulator) InitialStamina() float64 {
	return r.cfg.InitialStamina
}

// MaxStamina returns the pool capacity.
func (r *Regulator) MaxStamina() float64 {
	return r.cfg.MaxStamina
}

// Fraction returns stamina as a fraction of capacity, in [0, 1].
func (r *Regulator) Fraction() float64 {
	return r.stamina / r.cfg.MaxStamina
}

// IsSprinting reports whether the sprint is active.
func (r *Regulator) IsSprinting() bool {
	return r.sprinting
}

// BaseSpeed returns the speed captured at construction.
func (r *Regulator) BaseSpeed() float64 {
	return r.baseSpeed
}

// SpeedMultiplier returns the factor applied while sprinting.
func (r *Regulator) SpeedMultiplier() float64 {
	return r.cfg.Multiplier
}

// EffectiveSpeed returns the current movement speed: base speed times the
// multiplier while sprinting, base speed otherwise.
func (r *Regulator) EffectiveSpeed() float64 {
	return r.speed
}

// SprintSnapshot is a read-only copy of a regulator's state for display.
type SprintSnapshot struct {
	Stamina    float64
	MaxStamina float64
	Sprinting  bool
	Speed      float64
}

// Snapshot returns the current state by value.
func (r *Regulator) Snapshot() SprintSnapshot {
	return SprintSnapshot{
		Stamina:    r.stamina,
		MaxStamina: r.cfg.MaxStamina,
		Sprinting:  r.sprinting,
		Speed:      r.speed,
	}
}
