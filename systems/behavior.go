package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/meadow/components"
	"github.com/pthm-cable/meadow/config"
)

// Transition probabilities, evaluated when a dwell timer expires.
const (
	wanderChance = 0.60
	restChance   = 0.25
	// remaining 0.15 attempts to eat
)

// BehaviorSystem drives the per-creature state machine: dwell timers, state
// transitions, feeding, and energy decay. Movement integration lives in
// PhysicsSystem.
type BehaviorSystem struct {
	filter ecs.Filter4[components.Position, components.Velocity, components.Body, components.Creature]

	// Nibbles counts successful feeding events, cumulative for telemetry.
	Nibbles int
}

// NewBehaviorSystem creates a behavior system.
func NewBehaviorSystem(w *ecs.World) *BehaviorSystem {
	return &BehaviorSystem{
		filter: *ecs.NewFilter4[components.Position, components.Velocity, components.Body, components.Creature](w),
	}
}

// Update evaluates every creature's state machine for one tick. Creatures
// read plants and nibble them through the plant system, but never touch each
// other, so iteration order is irrelevant.
func (s *BehaviorSystem) Update(plants *PlantSystem, grid *PlantGrid, rng *LCG) {
	cfg := config.Cfg().Creatures

	query := s.filter.Query()
	for query.Next() {
		pos, vel, _, cr := query.Get()

		cr.StateTimer--
		if cr.StateTimer <= 0 {
			s.transition(pos, vel, cr, plants, grid, rng)
		}

		// Feeding happens every tick while eating: re-check for a plant in
		// nibble range, which uses a lower size threshold than targeting.
		if cr.State == components.StateEat {
			i := grid.Nearest(plants.Plants, pos.X, pos.Y,
				float32(cfg.EatNibbleRadius), float32(cfg.NibbleMinSize))
			if i >= 0 {
				plants.Nibble(i, float32(cfg.NibbleDamage))
				cr.Energy += float32(cfg.EatGain)
				if cr.Energy > components.MaxEnergy {
					cr.Energy = components.MaxEnergy
				}
				s.Nibbles++
			}
		}

		// Energy decays every tick regardless of state. There is no floor
		// and no starvation death; energy may go negative.
		cr.Energy -= float32(cfg.EnergyDecay)
	}
}

// transition rolls the next state and resets velocity and dwell timer.
func (s *BehaviorSystem) transition(pos *components.Position, vel *components.Velocity,
	cr *components.Creature, plants *PlantSystem, grid *PlantGrid, rng *LCG) {

	cfg := config.Cfg().Creatures

	roll := rng.Next()
	switch {
	case roll < wanderChance:
		s.enterWander(vel, cr, rng, 120, 300)

	case roll < wanderChance+restChance:
		cr.State = components.StateRest
		cr.StateTimer = int32(rng.IntRange(60, 180))
		vel.X = 0
		vel.Y = 0

	default:
		// Attempt to eat: look for a sizable plant nearby and head for it
		// at half speed. No target found is not an error; wander briefly.
		i := grid.Nearest(plants.Plants, pos.X, pos.Y,
			float32(cfg.EatSearchRadius), float32(cfg.EatMinSize))
		if i < 0 {
			s.enterWander(vel, cr, rng, 60, 120)
			return
		}

		p := &plants.Plants[i]
		dx := p.X - pos.X
		dy := p.Y - pos.Y
		dist := float32(math.Sqrt(float64(dx*dx + dy*dy)))
		speed := cr.Speed * 0.5
		if dist > 1e-5 {
			vel.X = dx / dist * speed
			vel.Y = dy / dist * speed
		} else {
			vel.X = 0
			vel.Y = 0
		}

		cr.State = components.StateEat
		cr.StateTimer = int32(rng.IntRange(60, 120))
	}
}

// enterWander picks a fresh random heading at the type's base speed.
func (s *BehaviorSystem) enterWander(vel *components.Velocity, cr *components.Creature,
	rng *LCG, minDwell, maxDwell int) {

	heading := rng.Range(0, 2*math.Pi)
	vel.X = cos32(heading) * cr.Speed
	vel.Y = sin32(heading) * cr.Speed

	cr.State = components.StateWander
	cr.StateTimer = int32(rng.IntRange(minDwell, maxDwell))
}
