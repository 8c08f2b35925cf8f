// Package simulation provides the tuning rules for the character simulation.
// Rules are loaded from a data file so a build can retune sprinting, movement
// and camera rates without code changes. Anything the file omits keeps its
// default.
package simulation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"seagullz.com/seagullz/internal/stats"
)

//go:embed config.schema.json
var schemaSource string

var configSchema = jsonschema.MustCompileString("config.schema.json", schemaSource)

// Config holds all simulation rules for a character
type Config struct {
	// Fixed update rate
	Tick TickConfig `json:"tick"`

	// Stamina and sprint rules
	Sprint SprintConfig `json:"sprint"`

	// Starting health
	Health HealthConfig `json:"health"`

	// Movement rules
	Movement MovementConfig `json:"movement"`

	// Look rates and limits
	Camera CameraConfig `json:"camera"`

	// Key and axis bindings
	Input InputConfig `json:"input"`
}

// TickConfig defines the fixed simulation rate. Stamina drain and regen are
// applied per tick, so this rate is what turns them into per-second values.
type TickConfig struct {
	RateHz int `json:"rate_hz"` // Updates per second (e.g., 60)
}

// SprintConfig defines the stamina pool and sprint multiplier
type SprintConfig struct {
	InitialStamina float64 `json:"initial_stamina"` // Stamina at spawn
	MaxStamina     float64 `json:"max_stamina"`     // Pool capacity
	DrainPerTick   float64 `json:"drain_per_tick"`  // Stamina spent per tick while sprinting
	RegenPerTick   float64 `json:"regen_per_tick"`  // Stamina restored per tick while not sprinting
	Multiplier     float64 `json:"multiplier"`      // Speed factor while sprinting
}

// HealthConfig defines starting health
type HealthConfig struct {
	Initial float64 `json:"initial"`
}

// MovementConfig defines character movement. Distances are in world units
// (centimetres), velocities in units per second.
type MovementConfig struct {
	MaxWalkSpeed  float64 `json:"max_walk_speed"`  // Base ground speed
	JumpZVelocity float64 `json:"jump_z_velocity"` // Launch velocity of a jump
	AirControl    float64 `json:"air_control"`     // Fraction of ground control while airborne
	Gravity       float64 `json:"gravity"`         // Vertical acceleration (negative is down)
	RotationRate  float64 `json:"rotation_rate"`   // Body yaw rate toward movement, degrees per second
}

// CameraConfig defines look input scaling
type CameraConfig struct {
	BaseTurnRate   float64 `json:"base_turn_rate"`    // Degrees per second at full turn rate input
	BaseLookUpRate float64 `json:"base_look_up_rate"` // Degrees per second at full look rate input
	MinPitch       float64 `json:"min_pitch"`         // Lowest pitch, degrees
	MaxPitch       float64 `json:"max_pitch"`         // Highest pitch, degrees
}

// InputConfig maps named actions and axes to key names
type InputConfig struct {
	Actions map[string][]string     `json:"actions"` // Action name -> keys
	Axes    map[string][]AxisMapping `json:"axes"`    // Axis name -> key/scale pairs
}

// AxisMapping binds one key (or mouse axis) to an axis with a scale
type AxisMapping struct {
	Key   string  `json:"key"`
	Scale float64 `json:"scale"`
}

// DefaultConfig returns the stock first-person tuning
func DefaultConfig() *Config {
	return &Config{
		Tick: TickConfig{
			RateHz: 60,
		},
		Sprint: SprintConfig{
			InitialStamina: stats.DefaultInitialStamina,
			MaxStamina:     stats.DefaultMaxStamina,
			DrainPerTick:   stats.DefaultDrainPerTick,
			RegenPerTick:   stats.DefaultRegenPerTick,
			Multiplier:     stats.DefaultSprintMultiplier,
		},
		Health: HealthConfig{
			Initial: stats.DefaultHealth,
		},
		Movement: MovementConfig{
			MaxWalkSpeed:  600,
			JumpZVelocity: 600,
			AirControl:    0.2,
			Gravity:       -980,
			RotationRate:  540,
		},
		Camera: CameraConfig{
			BaseTurnRate:   45,
			BaseLookUpRate: 45,
			MinPitch:       -89,
			MaxPitch:       89,
		},
		Input: DefaultInputConfig(),
	}
}

// DefaultInputConfig returns the stock keyboard and mouse bindings
func DefaultInputConfig() InputConfig {
	return InputConfig{
		Actions: map[string][]string{
			"Jump":      {"Space"},
			"Sprint":    {"Shift"},
			"ResetView": {"R"},
		},
		Axes: map[string][]AxisMapping{
			"MoveForward": {{Key: "W", Scale: 1}, {Key: "S", Scale: -1}},
			"MoveRight":   {{Key: "D", Scale: 1}, {Key: "A", Scale: -1}},
			"Turn":        {{Key: "MouseX", Scale: 1}},
			"TurnRate":    {{Key: "Right", Scale: 1}, {Key: "Left", Scale: -1}},
			"LookUp":      {{Key: "MouseY", Scale: -1}},
			"LookUpRate":  {{Key: "Up", Scale: 1}, {Key: "Down", Scale: -1}},
		},
	}
}

// LoadConfig loads simulation config from a JSON or YAML file. The format is
// picked from the extension (.yaml and .yml are YAML, anything else JSON).
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// ParseJSON overlays a JSON document onto the defaults and validates it
func ParseJSON(data []byte) (*Config, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}
	return decode(doc, data)
}

// ParseYAML overlays a YAML document onto the defaults and validates it
func ParseYAML(data []byte) (*Config, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}
	if doc == nil {
		return DefaultConfig(), nil
	}

	// Re-encode as JSON so both formats share the schema and struct tags.
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}
	return ParseJSON(normalized)
}

func decode(doc any, data []byte) (*Config, error) {
	if err := configSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the rules the schema cannot express
func (c *Config) Validate() error {
	if c.Tick.RateHz <= 0 {
		return fmt.Errorf("invalid simulation config: tick.rate_hz must be positive, got %d", c.Tick.RateHz)
	}
	s := c.Sprint
	if s.MaxStamina <= 0 {
		return fmt.Errorf("invalid simulation config: sprint.max_stamina must be positive, got %g", s.MaxStamina)
	}
	if s.InitialStamina < 0 || s.InitialStamina > s.MaxStamina {
		return fmt.Errorf("invalid simulation config: sprint.initial_stamina %g outside [0, %g]", s.InitialStamina, s.MaxStamina)
	}
	if s.DrainPerTick < 0 || s.RegenPerTick < 0 {
		return fmt.Errorf("invalid simulation config: sprint drain and regen must not be negative")
	}
	if s.Multiplier <= 0 {
		return fmt.Errorf("invalid simulation config: sprint.multiplier must be positive, got %g", s.Multiplier)
	}
	if c.Camera.MinPitch > c.Camera.MaxPitch {
		return fmt.Errorf("invalid simulation config: camera.min_pitch %g above max_pitch %g", c.Camera.MinPitch, c.Camera.MaxPitch)
	}
	return nil
}

// TickSeconds returns the duration of one tick in seconds
func (c *Config) TickSeconds() float64 {
	return 1.0 / float64(c.Tick.RateHz)
}

// SprintTuning converts the sprint section into regulator tuning
func (c *Config) SprintTuning() stats.SprintConfig {
	return stats.SprintConfig{
		InitialStamina: c.Sprint.InitialStamina,
		MaxStamina:     c.Sprint.MaxStamina,
		DrainPerTick:   c.Sprint.DrainPerTick,
		RegenPerTick:   c.Sprint.RegenPerTick,
		Multiplier:     c.Sprint.Multiplier,
	}
}
