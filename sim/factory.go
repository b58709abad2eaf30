package sim

import (
	"github.com/pthm-cable/meadow/components"
	"github.com/pthm-cable/meadow/config"
)

// populate fills a fresh world with its initial creatures and plants.
// Creature counts are tens per type; plants number in the hundreds, dominated
// by ground-cover grass placed in clustered patches.
func (w *World) populate() {
	pop := config.Cfg().Population

	for i := 0; i < pop.Beetles; i++ {
		w.spawnCreature(components.CreatureBeetle)
	}
	for i := 0; i < pop.Butterflies; i++ {
		w.spawnCreature(components.CreatureButterfly)
	}
	for i := 0; i < pop.Ants; i++ {
		w.spawnCreature(components.CreatureAnt)
	}

	margin := config.Cfg().Derived.PlantMargin32
	radius := float32(pop.PatchRadius)

	// Grass grows in patches: sample a patch center, then scatter individuals
	// around it, clamped to the placement margin.
	for p := 0; p < pop.GrassPatches; p++ {
		cx := w.rng.Range(margin, w.Width-margin)
		cy := w.rng.Range(margin, w.Height-margin)
		count := w.rng.IntRange(pop.GrassPerPatchMin, pop.GrassPerPatchMax)

		for i := 0; i < count; i++ {
			x := clamp(cx+w.rng.Range(-radius, radius), margin, w.Width-margin)
			y := clamp(cy+w.rng.Range(-radius, radius), margin, w.Height-margin)
			w.plants.Add(components.PlantGrass, x, y, false, w.rng)
		}
	}

	for i := 0; i < pop.Flowers; i++ {
		w.spawnPlantUniform(components.PlantFlower)
	}
	for i := 0; i < pop.Bushes; i++ {
		w.spawnPlantUniform(components.PlantBush)
	}
}

// spawnCreature creates a creature of the given type at a uniform position
// inside the creature margin. Velocity starts at zero; the first wander
// transition sets a heading when the initial dwell timer expires.
func (w *World) spawnCreature(typ components.CreatureType) {
	margin := config.Cfg().Derived.Margin32

	pos := components.Position{
		X: w.rng.Range(margin, w.Width-margin),
		Y: w.rng.Range(margin, w.Height-margin),
	}
	vel := components.Velocity{}

	base, jitter := typ.BaseSize()
	palette := typ.Palette()
	body := components.Body{
		Size:  base + w.rng.Range(-jitter, jitter),
		Color: palette[w.rng.Intn(len(palette))],
	}

	cr := components.Creature{
		ID:         w.nextID,
		Type:       typ,
		State:      components.StateWander,
		StateTimer: int32(w.rng.IntRange(120, 300)),
		Energy:     components.MaxEnergy,
		Speed:      typ.BaseSpeed(),
	}
	w.nextID++

	w.creatureMapper.NewEntity(&pos, &vel, &body, &cr)
	w.creatureCount++
}

// spawnPlantUniform places a mature plant uniformly inside the plant margin.
func (w *World) spawnPlantUniform(typ components.PlantType) {
	margin := config.Cfg().Derived.PlantMargin32
	x := w.rng.Range(margin, w.Width-margin)
	y := w.rng.Range(margin, w.Height-margin)
	w.plants.Add(typ, x, y, false, w.rng)
}

// clamp clamps v to [min, max].
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
