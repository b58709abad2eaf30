// Package components defines ECS components for the simulation.
package components

// Position represents an entity's world position.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's velocity.
type Velocity struct {
	X, Y float32
}

// Color is a renderer-independent RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Body holds the physical appearance of a creature, fixed at creation.
type Body struct {
	Size  float32
	Color Color
}

// State enumerates creature behavioral states.
type State uint8

const (
	StateWander State = iota
	StateRest
	StateEat
)

// String returns the display name for a State.
func (s State) String() string {
	switch s {
	case StateWander:
		return "wander"
	case StateRest:
		return "rest"
	case StateEat:
		return "eat"
	default:
		return "unknown"
	}
}

// Creature holds per-creature behavioral state.
// Type never changes after creation. Energy is capped at MaxEnergy but has no
// floor: it may go negative, and nothing dies of starvation.
type Creature struct {
	ID         uint32
	Type       CreatureType
	State      State
	StateTimer int32 // ticks remaining in current state
	Energy     float32
	Speed      float32 // type base speed, fixed at creation
}

// MaxEnergy is the energy cap for all creatures.
const MaxEnergy float32 = 100
