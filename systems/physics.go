package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/meadow/components"
	"github.com/pthm-cable/meadow/config"
)

// Flight drift frequencies. Time and position terms are deliberately
// incommensurate so butterfly paths never settle into a loop.
const (
	driftTimeFreqX = 0.050
	driftTimeFreqY = 0.041
	driftPosFreq   = 0.013
)

// PhysicsSystem integrates creature velocity into position with Euler steps
// and bounces creatures off the inset margin.
type PhysicsSystem struct {
	filter ecs.Filter3[components.Position, components.Velocity, components.Creature]
	bounds Bounds
}

// NewPhysicsSystem creates a physics system for the given bounds.
func NewPhysicsSystem(w *ecs.World, bounds Bounds) *PhysicsSystem {
	return &PhysicsSystem{
		filter: *ecs.NewFilter3[components.Position, components.Velocity, components.Creature](w),
		bounds: bounds,
	}
}

// Update runs one integration step for every creature.
func (s *PhysicsSystem) Update(tick int32) {
	margin := config.Cfg().Derived.Margin32
	drift := float32(config.Cfg().Creatures.FlightDrift)
	maxX := s.bounds.Width - margin
	maxY := s.bounds.Height - margin

	query := s.filter.Query()
	for query.Next() {
		pos, vel, cr := query.Get()

		dx := vel.X
		dy := vel.Y

		// Fliers get a small sinusoidal drift seeded by world time and their
		// own position, giving floaty paths distinct from ground dwellers.
		// The drift is a per-tick displacement, not accumulated velocity.
		if cr.Type.IsFlying() {
			t := float32(tick)
			dx += sin32(t*driftTimeFreqX+pos.Y*driftPosFreq) * drift
			dy += cos32(t*driftTimeFreqY+pos.X*driftPosFreq) * drift
		}

		pos.X += dx
		pos.Y += dy

		// Bounce off the margin: clamp and invert that axis.
		if pos.X < margin {
			pos.X = margin
			vel.X = -vel.X
		} else if pos.X > maxX {
			pos.X = maxX
			vel.X = -vel.X
		}
		if pos.Y < margin {
			pos.Y = margin
			vel.Y = -vel.Y
		} else if pos.Y > maxY {
			pos.Y = maxY
			vel.Y = -vel.Y
		}
	}
}
