// Package telemetry aggregates windowed simulation statistics.
package telemetry

import (
	"log/slog"
	"math"
	"sort"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowEndTick int32   `csv:"window_end"`
	SimTimeSec    float64 `csv:"sim_time"`

	// Population counts at window end
	Creatures int `csv:"creatures"`
	Plants    int `csv:"plants"`
	Particles int `csv:"particles"`

	// World state at window end
	Weather  string  `csv:"weather"`
	DayPhase float64 `csv:"day_phase"`

	// Events during window
	PlantSpawns   int `csv:"plant_spawns"`
	PlantRemovals int `csv:"plant_removals"`
	Nibbles       int `csv:"nibbles"`

	// Creature energy distribution (sampled at window end)
	EnergyMean float64 `csv:"energy_mean"`
	EnergyP10  float64 `csv:"energy_p10"`
	EnergyP50  float64 `csv:"energy_p50"`
	EnergyP90  float64 `csv:"energy_p90"`

	// Plant size distribution (sampled at window end)
	PlantSizeMean float64 `csv:"plant_size_mean"`
	PlantSizeStd  float64 `csv:"plant_size_std"`
}

// Log writes the window stats as a structured log line.
func (s WindowStats) Log() {
	slog.Info("window stats",
		"tick", s.WindowEndTick,
		"creatures", s.Creatures,
		"plants", s.Plants,
		"particles", s.Particles,
		"weather", s.Weather,
		"day_phase", s.DayPhase,
		"plant_spawns", s.PlantSpawns,
		"plant_removals", s.PlantRemovals,
		"nibbles", s.Nibbles,
		"energy_mean", s.EnergyMean,
		"energy_p50", s.EnergyP50,
		"plant_size_mean", s.PlantSizeMean,
	)
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	rank := p * float64(n-1)
	lo := int(math.Floor(rank))
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// ComputeEnergyStats returns mean and p10/p50/p90 of the given values.
// The input slice is sorted in place.
func ComputeEnergyStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sort.Float64s(values)

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(len(values))

	p10 = Percentile(values, 0.10)
	p50 = Percentile(values, 0.50)
	p90 = Percentile(values, 0.90)
	return mean, p10, p50, p90
}
