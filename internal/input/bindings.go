// Package input turns raw key and cursor state into named gameplay actions
// and axes, and dispatches them to the pawn being controlled.
package input

import (
	"fmt"
	"sort"

	"seagullz.com/seagullz/internal/render"
	"seagullz.com/seagullz/internal/simulation"
)

// Action names
const (
	ActionJump      = "Jump"
	ActionSprint    = "Sprint"
	ActionResetView = "ResetView"
)

// Axis names
const (
	AxisMoveForward = "MoveForward"
	AxisMoveRight   = "MoveRight"
	AxisTurn        = "Turn"
	AxisTurnRate    = "TurnRate"
	AxisLookUp      = "LookUp"
	AxisLookUpRate  = "LookUpRate"
)

// Names of the cursor axes usable in axis bindings
const (
	MouseX = "MouseX"
	MouseY = "MouseY"
)

// Pawn is the set of inputs a controllable character accepts.
type Pawn interface {
	MoveForward(value float64)
	MoveRight(value float64)
	AddYawInput(degrees float64)
	AddPitchInput(degrees float64)
	TurnAtRate(rate, dt float64)
	LookUpAtRate(rate, dt float64)
	Jump()
	StopJumping()
	StartSprint()
	StopSprint()
	ResetView()
}

// actionHandlers maps each known action to its pressed and released calls.
// A nil handler means the event is ignored.
var actionHandlers = map[string]struct {
	pressed  func(Pawn)
	released func(Pawn)
}{
	ActionJump:      {pressed: Pawn.Jump, released: Pawn.StopJumping},
	ActionSprint:    {pressed: Pawn.StartSprint, released: Pawn.StopSprint},
	ActionResetView: {pressed: Pawn.ResetView},
}

// axisHandlers maps each known axis to the call that consumes its value.
var axisHandlers = map[string]func(p Pawn, value, dt float64){
	AxisMoveForward: func(p Pawn, v, _ float64) { p.MoveForward(v) },
	AxisMoveRight:   func(p Pawn, v, _ float64) { p.MoveRight(v) },
	AxisTurn:        func(p Pawn, v, _ float64) { p.AddYawInput(v) },
	AxisTurnRate:    func(p Pawn, v, dt float64) { p.TurnAtRate(v, dt) },
	AxisLookUp:      func(p Pawn, v, _ float64) { p.AddPitchInput(v) },
	AxisLookUpRate:  func(p Pawn, v, dt float64) { p.LookUpAtRate(v, dt) },
}

type mouseAxis int

const (
	mouseNone mouseAxis = iota
	mouseX
	mouseY
)

// ActionBinding binds keys to a named action.
type ActionBinding struct {
	Name string
	Keys []render.Key
}

// AxisKey is one contributor to an axis value.
type AxisKey struct {
	Key   render.Key
	mouse mouseAxis
	Scale float64
}

// AxisBinding binds keys and cursor movement to a named axis.
type AxisBinding struct {
	Name string
	Keys []AxisKey
}

// Bindings is a resolved binding table. Actions and axes are kept sorted by
// name so dispatch order within a tick is stable.
type Bindings struct {
	Actions []ActionBinding
	Axes    []AxisBinding
}

// DefaultBindings resolves the stock bindings.
func DefaultBindings() *Bindings {
	b, err := NewBindings(simulation.DefaultInputConfig())
	if err != nil {
		panic(fmt.Sprintf("input: default bindings are invalid: %v", err))
	}
	return b
}

// NewBindings resolves key names in cfg. Unknown actions, axes or keys are
// errors.
func NewBindings(cfg simulation.InputConfig) (*Bindings, error) {
	b := &Bindings{}

	for _, name := range sortedKeys(cfg.Actions) {
		if _, ok := actionHandlers[name]; !ok {
			return nil, fmt.Errorf("unknown input action %q", name)
		}
		binding := ActionBinding{Name: name}
		for _, keyName := range cfg.Actions[name] {
			key, ok := render.KeyByName(keyName)
			if !ok {
				return nil, fmt.Errorf("action %s: unknown key %q", name, keyName)
			}
			binding.Keys = append(binding.Keys, key)
		}
		b.Actions = append(b.Actions, binding)
	}

	for _, name := range sortedKeys(cfg.Axes) {
		if _, ok := axisHandlers[name]; !ok {
			return nil, fmt.Errorf("unknown input axis %q", name)
		}
		binding := AxisBinding{Name: name}
		for _, m := range cfg.Axes[name] {
			ak := AxisKey{Scale: m.Scale}
			switch m.Key {
			case MouseX:
				ak.mouse = mouseX
			case MouseY:
				ak.mouse = mouseY
			default:
				key, ok := render.KeyByName(m.Key)
				if !ok {
					return nil, fmt.Errorf("axis %s: unknown key %q", name, m.Key)
				}
				ak.Key = key
			}
			binding.Keys = append(binding.Keys, ak)
		}
		b.Axes = append(b.Axes, binding)
	}

	return b, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
