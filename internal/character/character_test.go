package character

import (
	"math"
	"testing"

	"seagullz.com/seagullz/internal/simulation"
)

const epsilon = 1e-6

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func newTestCharacter() *Character {
	return New("tester", simulation.DefaultConfig())
}

func TestNewCharacter(t *testing.T) {
	c := newTestCharacter()

	if c.CurrentStamina() != 100 || c.InitialStamina() != 100 {
		t.Errorf("Expected stamina 100/100, got %f/%f", c.CurrentStamina(), c.InitialStamina())
	}
	if c.CurrentHealth() != 100 {
		t.Errorf("Expected health 100, got %f", c.CurrentHealth())
	}
	if !c.OnGround() {
		t.Error("Expected new character to be on the ground")
	}
	if c.MaxWalkSpeed() != 600 {
		t.Errorf("Expected walk speed 600, got %f", c.MaxWalkSpeed())
	}
}

func TestWalkAndSprintSpeed(t *testing.T) {
	c := newTestCharacter()

	c.MoveForward(1)
	c.Tick(1)
	if !approxEqual(c.Position.X, 600) || !approxEqual(c.Position.Y, 0) {
		t.Fatalf("Expected to walk to (600, 0), got (%f, %f)", c.Position.X, c.Position.Y)
	}

	c.StartSprint()
	c.MoveForward(1)
	c.Tick(0.5)
	if !approxEqual(c.Position.X, 600+1500*0.5) {
		t.Errorf("Expected sprint to cover 750 units in 0.5s, got x=%f", c.Position.X)
	}
	if !approxEqual(c.CurrentStamina(), 99.9) {
		t.Errorf("Expected one tick of drain, got stamina %f", c.CurrentStamina())
	}

	c.StopSprint()
	if c.MaxWalkSpeed() != 600 {
		t.Errorf("Expected walk speed restored, got %f", c.MaxWalkSpeed())
	}
}

func TestMovementInputIsConsumed(t *testing.T) {
	c := newTestCharacter()

	c.MoveForward(1)
	c.Tick(1)
	c.Tick(1)
	if !approxEqual(c.Position.X, 600) {
		t.Errorf("Expected no movement on a tick without input, got x=%f", c.Position.X)
	}
}

func TestDiagonalInputIsNormalized(t *testing.T) {
	c := newTestCharacter()

	c.MoveForward(1)
	c.MoveRight(1)
	c.Tick(1)

	dist := math.Hypot(c.Position.X, c.Position.Y)
	if !approxEqual(dist, 600) {
		t.Errorf("Expected diagonal distance 600, got %f", dist)
	}
	if c.Position.Y <= 0 {
		t.Errorf("Expected right input to move along +Y at yaw 0, got y=%f", c.Position.Y)
	}
}

func TestExhaustedSprintFallsBackToWalking(t *testing.T) {
	c := newTestCharacter()
	c.UpdateStamina(-1000)
	if c.CurrentStamina() != 0 {
		t.Fatalf("Expected stamina clamped to 0, got %f", c.CurrentStamina())
	}

	c.StartSprint()
	c.MoveForward(1)
	c.Tick(1)

	if c.IsSprinting() {
		t.Error("Expected sprint to be forced off with no stamina")
	}
	if !approxEqual(c.Position.X, 600) {
		t.Errorf("Expected walk-speed movement on the forced stop tick, got x=%f", c.Position.X)
	}
}

func TestJumpAndLand(t *testing.T) {
	c := newTestCharacter()
	dt := 1.0 / 60.0

	c.Jump()
	if c.OnGround() {
		t.Fatal("Expected jump to leave the ground")
	}
	if !c.JumpHeld() {
		t.Error("Expected jump input to be held")
	}
	c.StopJumping()
	if c.JumpHeld() {
		t.Error("Expected jump input released")
	}

	peak := 0.0
	landed := false
	for i := 0; i < 300; i++ {
		c.Tick(dt)
		if c.Position.Z > peak {
			peak = c.Position.Z
		}
		if c.OnGround() {
			landed = true
			break
		}
	}

	if !landed {
		t.Fatal("Expected to land within 5 seconds")
	}
	if c.Position.Z != 0 || c.Velocity.Z != 0 {
		t.Errorf("Expected to rest at z=0, got z=%f vz=%f", c.Position.Z, c.Velocity.Z)
	}
	// v^2 / 2g = 600^2 / 1960 ~= 183.7
	if peak < 170 || peak > 190 {
		t.Errorf("Expected a jump apex near 184, got %f", peak)
	}
}

func TestJumpIgnoredInAir(t *testing.T) {
	c := newTestCharacter()

	c.Jump()
	c.Tick(0.1)
	vz := c.Velocity.Z
	c.Jump()
	if c.Velocity.Z != vz {
		t.Errorf("Expected a mid-air jump to be ignored, vz %f -> %f", vz, c.Velocity.Z)
	}
}

func TestLookInput(t *testing.T) {
	c := newTestCharacter()

	c.AddPitchInput(200)
	if c.Pitch() != 89 {
		t.Errorf("Expected pitch clamped to 89, got %f", c.Pitch())
	}
	c.AddPitchInput(-500)
	if c.Pitch() != -89 {
		t.Errorf("Expected pitch clamped to -89, got %f", c.Pitch())
	}

	c.AddYawInput(-90)
	if c.Yaw() != 270 {
		t.Errorf("Expected yaw to wrap to 270, got %f", c.Yaw())
	}

	c.TurnAtRate(1, 0.5)
	if !approxEqual(c.Yaw(), 292.5) {
		t.Errorf("Expected yaw 292.5 after half a second at full turn rate, got %f", c.Yaw())
	}

	c.LookUpAtRate(1, 1)
	if !approxEqual(c.Pitch(), -44) {
		t.Errorf("Expected pitch -44, got %f", c.Pitch())
	}

	c.ResetView()
	if c.Yaw() != 0 || c.Pitch() != 0 {
		t.Errorf("Expected view reset to (0, 0), got (%f, %f)", c.Yaw(), c.Pitch())
	}
}

func TestYawStaysBelow360(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
	}{
		{"tiny negative", -1e-15},
		{"full turn", 360},
		{"negative full turn", -360},
		{"many turns", 3600.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCharacter()
			c.AddYawInput(tt.delta)
			if c.Yaw() < 0 || c.Yaw() >= 360 {
				t.Errorf("Expected yaw in [0, 360), got %v", c.Yaw())
			}
		})
	}
}

func TestMoveFollowsYaw(t *testing.T) {
	c := newTestCharacter()
	c.AddYawInput(90)

	c.MoveForward(1)
	c.Tick(1)
	if !approxEqual(c.Position.X, 0) || !approxEqual(c.Position.Y, 600) {
		t.Errorf("Expected forward at yaw 90 to move along +Y, got (%f, %f)", c.Position.X, c.Position.Y)
	}
}

func TestBodyTurnsTowardMovement(t *testing.T) {
	c := newTestCharacter()
	c.AddYawInput(180)

	c.MoveForward(1)
	c.Tick(0.1)
	// 540 deg/s * 0.1s = 54 degrees; shortest way from 0 to 180 is ambiguous,
	// either direction is fine as long as it moved by one step
	turned := math.Min(c.BodyYaw(), 360-c.BodyYaw())
	if !approxEqual(turned, 54) {
		t.Errorf("Expected body to turn 54 degrees, got yaw %f", c.BodyYaw())
	}

	for i := 0; i < 10; i++ {
		c.MoveForward(1)
		c.Tick(0.1)
	}
	if !approxEqual(c.BodyYaw(), 180) {
		t.Errorf("Expected body to face 180, got %f", c.BodyYaw())
	}
}

func TestHealthIsAccumulator(t *testing.T) {
	c := newTestCharacter()

	c.SetHealth(-150)
	if c.CurrentHealth() != -50 {
		t.Errorf("Expected health -50, got %f", c.CurrentHealth())
	}
	c.SetHealth(1000)
	if c.CurrentHealth() != 950 {
		t.Errorf("Expected health 950, got %f", c.CurrentHealth())
	}
}

func TestStatus(t *testing.T) {
	c := newTestCharacter()
	c.StartSprint()
	c.Tick(1.0 / 60.0)

	s := c.Status()
	if s.Name != "tester" || !s.Sprint.Sprinting || s.Sprint.Speed != 1500 || s.Health != 100 {
		t.Errorf("Unexpected status: %+v", s)
	}
}
