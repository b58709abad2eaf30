package telemetry

import (
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/meadow/components"
	"github.com/pthm-cable/meadow/sim"
)

// ticksPerSecond converts configured window sizes into tick counts. The
// simulation itself is cadence-free; this is only a reporting convention.
const ticksPerSecond = 60

// Collector builds WindowStats from world state at window boundaries.
// Event totals are derived from the world's cumulative counters, so the
// collector never hooks into the tick path.
type Collector struct {
	windowTicks int32
	windowStart int32
	last        sim.Counters
}

// NewCollector creates a stats collector with the given window size in
// simulation seconds.
func NewCollector(windowSec float64) *Collector {
	ticks := int32(windowSec * ticksPerSecond)
	if ticks < 1 {
		ticks = 1
	}
	return &Collector{windowTicks: ticks}
}

// WindowDone reports whether the current window ends at or before this tick.
func (c *Collector) WindowDone(tick int32) bool {
	return tick-c.windowStart >= c.windowTicks
}

// Collect samples the world, closes the current window, and returns its
// stats. Reads world state only; never mutates it.
func (c *Collector) Collect(w *sim.World) WindowStats {
	counters := w.Counters()

	energies := make([]float64, 0, w.CreatureCount())
	w.EachCreature(func(_ components.Position, _ components.Velocity, _ components.Body, cr components.Creature) {
		energies = append(energies, float64(cr.Energy))
	})

	plants := w.Plants()
	sizes := make([]float64, len(plants))
	for i := range plants {
		sizes[i] = float64(plants[i].Size)
	}

	energyMean, p10, p50, p90 := ComputeEnergyStats(energies)

	stats := WindowStats{
		WindowEndTick: w.Time,
		SimTimeSec:    float64(w.Time) / ticksPerSecond,

		Creatures: w.CreatureCount(),
		Plants:    len(plants),
		Particles: len(w.Particles()),

		Weather:  w.Weather.String(),
		DayPhase: float64(w.DayPhase),

		PlantSpawns:   counters.PlantsSpawned - c.last.PlantsSpawned,
		PlantRemovals: counters.PlantsRemoved - c.last.PlantsRemoved,
		Nibbles:       counters.Nibbles - c.last.Nibbles,

		EnergyMean: energyMean,
		EnergyP10:  p10,
		EnergyP50:  p50,
		EnergyP90:  p90,
	}

	if len(sizes) > 0 {
		stats.PlantSizeMean = stat.Mean(sizes, nil)
		stats.PlantSizeStd = stat.StdDev(sizes, nil)
	}

	c.windowStart = w.Time
	c.last = counters

	return stats
}
