// Package sim implements the world simulation: a bounded 2D meadow of
// creatures and plants advanced in discrete ticks. The package owns all world
// state; rendering and other consumers read it between ticks and never write.
package sim

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/meadow/components"
	"github.com/pthm-cable/meadow/config"
	"github.com/pthm-cable/meadow/systems"
)

// plantGridCellSize is the spatial grid resolution for plant lookups.
// Slightly larger than the eat search radius so a 3x3 neighborhood covers it.
const plantGridCellSize = 64.0

// World is the aggregate simulation state. It is created once per session by
// NewWorld and mutated in place by Update. A World is not safe for concurrent
// ticks; callers drive Update from a single goroutine.
type World struct {
	Width, Height float32
	Time          int32
	Weather       systems.Weather
	DayPhase      float32

	ecsWorld *ecs.World

	creatureMapper *ecs.Map4[
		components.Position,
		components.Velocity,
		components.Body,
		components.Creature,
	]
	creatureFilter *ecs.Filter4[
		components.Position,
		components.Velocity,
		components.Body,
		components.Creature,
	]

	behavior  *systems.BehaviorSystem
	physics   *systems.PhysicsSystem
	plants    *systems.PlantSystem
	plantGrid *systems.PlantGrid
	particles *systems.ParticleSystem

	rng           *systems.LCG
	nextID        uint32
	creatureCount int
}

// NewWorld creates a fully populated world of the given dimensions. The RNG
// is reset to the fixed seed first, so two worlds built with identical
// arguments have identical layouts regardless of call history.
// Dimensions too small to hold the placement margins are rejected.
func NewWorld(width, height int) (*World, error) {
	cfg := config.Cfg()

	minDim := 2 * cfg.Plants.Margin
	if cfg.Creatures.Margin > cfg.Plants.Margin {
		minDim = 2 * cfg.Creatures.Margin
	}
	if float64(width) <= minDim || float64(height) <= minDim {
		return nil, fmt.Errorf("sim: world dimensions %dx%d too small, both must exceed %g", width, height, minDim)
	}

	ecsWorld := ecs.NewWorld()
	bounds := systems.Bounds{Width: float32(width), Height: float32(height)}
	wind := systems.NewWindField(int64(systems.WorldSeed))

	w := &World{
		Width:    bounds.Width,
		Height:   bounds.Height,
		Weather:  systems.WeatherClear,
		DayPhase: float32(cfg.Day.InitialPhase),

		ecsWorld: ecsWorld,
		creatureMapper: ecs.NewMap4[
			components.Position,
			components.Velocity,
			components.Body,
			components.Creature,
		](ecsWorld),
		creatureFilter: ecs.NewFilter4[
			components.Position,
			components.Velocity,
			components.Body,
			components.Creature,
		](ecsWorld),

		behavior:  systems.NewBehaviorSystem(ecsWorld),
		physics:   systems.NewPhysicsSystem(ecsWorld, bounds),
		plants:    systems.NewPlantSystem(bounds),
		plantGrid: systems.NewPlantGrid(bounds, plantGridCellSize),
		particles: systems.NewParticleSystem(bounds, wind),

		rng: systems.NewLCG(systems.WorldSeed),
	}

	w.populate()

	return w, nil
}

// Update advances the world by exactly one tick. It is synchronous, has no
// wall-clock dependency, and may be called at any external cadence; callers
// must not invoke overlapping ticks concurrently.
func (w *World) Update() {
	w.Time++
	w.DayPhase = systems.AdvanceDayPhase(w.DayPhase)

	// Plant indices shift on compaction, so the grid is rebuilt per tick.
	w.plantGrid.Rebuild(w.plants.Plants)

	w.behavior.Update(w.plants, w.plantGrid, w.rng)
	w.physics.Update(w.Time)
	w.plants.Update(w.DayPhase, w.Weather, w.rng)

	w.Weather = systems.NextWeather(w.Weather, w.rng)
	w.particles.Update(w.Weather, w.Time, w.rng)
}

// EachCreature calls fn with a copy of every creature's components. Copies
// keep the read-only contract with external consumers enforceable.
func (w *World) EachCreature(fn func(pos components.Position, vel components.Velocity, body components.Body, cr components.Creature)) {
	query := w.creatureFilter.Query()
	for query.Next() {
		pos, vel, body, cr := query.Get()
		fn(*pos, *vel, *body, *cr)
	}
}

// Plants returns the live plant collection. Read-only for callers.
func (w *World) Plants() []systems.Plant {
	return w.plants.Plants
}

// Particles returns the live particle collection. Read-only for callers.
func (w *World) Particles() []systems.Particle {
	return w.particles.Particles
}

// CreatureCount returns the number of creatures in the world.
func (w *World) CreatureCount() int {
	return w.creatureCount
}

// Counters holds cumulative event totals for telemetry.
type Counters struct {
	PlantsSpawned int
	PlantsRemoved int
	Nibbles       int
}

// Counters returns the world's cumulative event counters.
func (w *World) Counters() Counters {
	return Counters{
		PlantsSpawned: w.plants.Spawned,
		PlantsRemoved: w.plants.Removed,
		Nibbles:       w.behavior.Nibbles,
	}
}
