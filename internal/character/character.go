// Package character implements the player-controlled pawn: look and movement
// input, jumping, and the sprint and health stats it owns.
package character

import (
	"math"

	"seagullz.com/seagullz/internal/simulation"
	"seagullz.com/seagullz/internal/stats"
)

// Vec3 is a position or velocity in world units. Z is up.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length2D returns the horizontal length of v.
func (v Vec3) Length2D() float64 {
	return math.Hypot(v.X, v.Y)
}

// Character is a first-person pawn. It is driven from a single update loop
// and is not safe for concurrent use.
type Character struct {
	Name string

	movement simulation.MovementConfig
	camera   simulation.CameraConfig

	sprint stats.Regulator
	health stats.Health

	Position Vec3
	Velocity Vec3

	// Control rotation, degrees. Yaw is in [0, 360); positive pitch looks up.
	yaw, pitch float64
	// Body yaw turns toward the direction of travel at RotationRate.
	bodyYaw float64

	spawnYaw, spawnPitch float64

	onGround bool
	jumpHeld bool

	// Movement input gathered since the last tick, world space.
	pendingInput Vec3
}

// New creates a character at the origin, on the ground, facing yaw 0. The
// sprint regulator captures the configured walk speed as its base speed.
func New(name string, cfg *simulation.Config) *Character {
	if cfg == nil {
		cfg = simulation.DefaultConfig()
	}
	return &Character{
		Name:     name,
		movement: cfg.Movement,
		camera:   cfg.Camera,
		sprint:   stats.NewRegulator(cfg.SprintTuning(), cfg.Movement.MaxWalkSpeed),
		health:   stats.NewHealth(cfg.Health.Initial),
		onGround: true,
	}
}

// Forward returns the horizontal unit vector the control rotation faces.
func (c *Character) Forward() Vec3 {
	rad := c.yaw * math.Pi / 180
	return Vec3{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Right returns the horizontal unit vector to the right of Forward.
func (c *Character) Right() Vec3 {
	rad := c.yaw * math.Pi / 180
	return Vec3{X: -math.Sin(rad), Y: math.Cos(rad)}
}

// MoveForward adds forward/backward movement input for this tick.
func (c *Character) MoveForward(value float64) {
	if value == 0 {
		return
	}
	c.pendingInput = c.pendingInput.Add(c.Forward().Scale(value))
}

// MoveRight adds side to side movement input for this tick.
func (c *Character) MoveRight(value float64) {
	if value == 0 {
		return
	}
	c.pendingInput = c.pendingInput.Add(c.Right().Scale(value))
}

// AddYawInput turns the view by degrees.
func (c *Character) AddYawInput(degrees float64) {
	c.yaw = wrapDegrees(c.yaw + degrees)
}

// AddPitchInput tilts the view by degrees, within the camera pitch limits.
func (c *Character) AddPitchInput(degrees float64) {
	c.pitch = clamp(c.pitch+degrees, c.camera.MinPitch, c.camera.MaxPitch)
}

// TurnAtRate turns at a normalized rate, where 1.0 is the full base turn rate.
func (c *Character) TurnAtRate(rate, dt float64) {
	c.AddYawInput(rate * c.camera.BaseTurnRate * dt)
}

// LookUpAtRate looks up or down at a normalized rate.
func (c *Character) LookUpAtRate(rate, dt float64) {
	c.AddPitchInput(rate * c.camera.BaseLookUpRate * dt)
}

// ResetView restores the spawn orientation.
func (c *Character) ResetView() {
	c.yaw = c.spawnYaw
	c.pitch = c.spawnPitch
}

// Jump launches the character if it is standing on the ground.
func (c *Character) Jump() {
	c.jumpHeld = true
	if !c.onGround {
		return
	}
	c.Velocity.Z = c.movement.JumpZVelocity
	c.onGround = false
}

// StopJumping releases the jump input.
func (c *Character) StopJumping() {
	c.jumpHeld = false
}

// StartSprint begins sprinting.
func (c *Character) StartSprint() {
	c.sprint.StartSprint()
}

// StopSprint ends sprinting.
func (c *Character) StopSprint() {
	c.sprint.StopSprint()
}

// UpdateStamina adjusts stamina by delta, clamped to the pool.
func (c *Character) UpdateStamina(delta float64) {
	c.sprint.UpdateStamina(delta)
}

// SetHealth adds delta to health. Health is not capped.
func (c *Character) SetHealth(delta float64) {
	c.health.Adjust(delta)
}

// CurrentStamina returns the stamina left.
func (c *Character) CurrentStamina() float64 { return c.sprint.CurrentStamina() }

// InitialStamina returns the starting stamina.
func (c *Character) InitialStamina() float64 { return c.sprint.InitialStamina() }

// CurrentHealth returns health.
func (c *Character) CurrentHealth() float64 { return c.health.Current() }

// IsSprinting reports whether the sprint is active.
func (c *Character) IsSprinting() bool { return c.sprint.IsSprinting() }

// MaxWalkSpeed returns the speed movement is currently capped at.
func (c *Character) MaxWalkSpeed() float64 { return c.sprint.EffectiveSpeed() }

// Yaw returns the control yaw in degrees.
func (c *Character) Yaw() float64 { return c.yaw }

// Pitch returns the control pitch in degrees.
func (c *Character) Pitch() float64 { return c.pitch }

// BodyYaw returns the yaw the body faces.
func (c *Character) BodyYaw() float64 { return c.bodyYaw }

// OnGround reports whether the character is standing.
func (c *Character) OnGround() bool { return c.onGround }

// JumpHeld reports whether the jump input is held.
func (c *Character) JumpHeld() bool { return c.jumpHeld }

// Tick advances the character by one simulation step of dt seconds. Sprint
// and stamina update first so this tick's movement uses the resulting speed.
func (c *Character) Tick(dt float64) {
	c.sprint.Tick(dt)

	input := c.pendingInput
	c.pendingInput = Vec3{}
	if l := input.Length2D(); l > 1 {
		input = input.Scale(1 / l)
	}

	target := input.Scale(c.sprint.EffectiveSpeed())
	if c.onGround {
		c.Velocity.X, c.Velocity.Y = target.X, target.Y
	} else if input.Length2D() > 0 {
		a := c.movement.AirControl
		c.Velocity.X += (target.X - c.Velocity.X) * a
		c.Velocity.Y += (target.Y - c.Velocity.Y) * a
	}

	if input.Length2D() > 0 {
		c.turnBodyToward(math.Atan2(input.Y, input.X)*180/math.Pi, dt)
	}

	if !c.onGround {
		c.Velocity.Z += c.movement.Gravity * dt
	}
	c.Position = c.Position.Add(c.Velocity.Scale(dt))
	if c.Position.Z <= 0 && !c.onGround {
		c.Position.Z = 0
		c.Velocity.Z = 0
		c.onGround = true
	}
}

func (c *Character) turnBodyToward(target, dt float64) {
	diff := wrapDegrees(target-c.bodyYaw+180) - 180
	step := c.movement.RotationRate * dt
	if math.Abs(diff) <= step {
		c.bodyYaw = wrapDegrees(target)
		return
	}
	if diff < 0 {
		step = -step
	}
	c.bodyYaw = wrapDegrees(c.bodyYaw + step)
}

// Status is a read-only copy of the character for display and tracing.
type Status struct {
	Name     string
	Sprint   stats.SprintSnapshot
	Health   float64
	Position Vec3
	Yaw      float64
	Pitch    float64
	OnGround bool
}

// Status returns the current state by value.
func (c *Character) Status() Status {
	return Status{
		Name:     c.Name,
		Sprint:   c.sprint.Snapshot(),
		Health:   c.health.Current(),
		Position: c.Position,
		Yaw:      c.yaw,
		Pitch:    c.pitch,
		OnGround: c.onGround,
	}
}

func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	// Tiny negative inputs round up to exactly 360
	if d >= 360 {
		d -= 360
	}
	return d
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
