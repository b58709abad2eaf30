package sim

import (
	"reflect"
	"testing"

	"github.com/pthm-cable/meadow/components"
	"github.com/pthm-cable/meadow/config"
	"github.com/pthm-cable/meadow/systems"
)

func init() {
	config.MustInit("")
}

type creatureSnap struct {
	Pos  components.Position
	Vel  components.Velocity
	Body components.Body
	Cr   components.Creature
}

func snapshot(w *World) ([]creatureSnap, []systems.Plant) {
	var creatures []creatureSnap
	w.EachCreature(func(pos components.Position, vel components.Velocity, body components.Body, cr components.Creature) {
		creatures = append(creatures, creatureSnap{pos, vel, body, cr})
	})
	plants := append([]systems.Plant(nil), w.Plants()...)
	return creatures, plants
}

func TestNewWorldDeterministic(t *testing.T) {
	a, err := NewWorld(1000, 1000)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	b, err := NewWorld(1000, 1000)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	ca, pa := snapshot(a)
	cb, pb := snapshot(b)
	if !reflect.DeepEqual(ca, cb) {
		t.Error("fresh worlds differ in creatures")
	}
	if !reflect.DeepEqual(pa, pb) {
		t.Error("fresh worlds differ in plants")
	}

	// Determinism survives ticking: both worlds own their RNG, so running
	// them interleaved cannot make them diverge.
	for i := 0; i < 200; i++ {
		a.Update()
		b.Update()
	}
	ca, pa = snapshot(a)
	cb, pb = snapshot(b)
	if !reflect.DeepEqual(ca, cb) {
		t.Error("ticked worlds differ in creatures")
	}
	if !reflect.DeepEqual(pa, pb) {
		t.Error("ticked worlds differ in plants")
	}
	if a.Weather != b.Weather || a.DayPhase != b.DayPhase || a.Time != b.Time {
		t.Error("ticked worlds differ in weather, day phase, or time")
	}
}

func TestLongRunInvariants(t *testing.T) {
	w, err := NewWorld(1000, 1000)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	margin := float32(config.Cfg().Creatures.Margin)
	maxX := w.Width - margin
	maxY := w.Height - margin

	var prev Counters
	for tick := 0; tick < 10000; tick++ {
		w.Update()

		if tick%100 != 0 {
			continue
		}

		w.EachCreature(func(pos components.Position, _ components.Velocity, _ components.Body, cr components.Creature) {
			if pos.X < margin || pos.X > maxX || pos.Y < margin || pos.Y > maxY {
				t.Fatalf("creature %d at (%v, %v) outside margins at tick %d", cr.ID, pos.X, pos.Y, tick)
			}
			if cr.Energy > components.MaxEnergy {
				t.Fatalf("creature %d energy %v above cap at tick %d", cr.ID, cr.Energy, tick)
			}
		})

		for _, p := range w.Plants() {
			if p.Size > p.MaxSize {
				t.Fatalf("plant %d size %v above max %v at tick %d", p.ID, p.Size, p.MaxSize, tick)
			}
		}

		c := w.Counters()
		if c.PlantsSpawned < prev.PlantsSpawned || c.PlantsRemoved < prev.PlantsRemoved || c.Nibbles < prev.Nibbles {
			t.Fatalf("counters went backwards at tick %d: %+v -> %+v", tick, prev, c)
		}
		prev = c
	}

	if w.Time != 10000 {
		t.Errorf("Time = %d after 10000 ticks", w.Time)
	}
}

func TestPausedWorldUnchanged(t *testing.T) {
	w, err := NewWorld(500, 500)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	before, plantsBefore := snapshot(w)
	// A paused session simply stops calling Update; nothing mutates between
	// ticks on its own.
	after, plantsAfter := snapshot(w)

	if !reflect.DeepEqual(before, after) || !reflect.DeepEqual(plantsBefore, plantsAfter) {
		t.Error("world state changed without Update")
	}
	if w.Time != 0 {
		t.Errorf("Time = %d without any Update", w.Time)
	}
}

func TestRainProducesParticles(t *testing.T) {
	w, err := NewWorld(500, 500)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	rained := false
	for i := 0; i < 500; i++ {
		w.Weather = systems.WeatherRain
		w.Update()
		for _, p := range w.Particles() {
			if p.Kind == systems.ParticleRain {
				rained = true
			}
		}
	}
	if !rained {
		t.Error("no rain particles after 500 rainy ticks")
	}
}

func TestNewWorldRejectsDegenerateDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 100}, {100, 0}, {-5, 100}, {60, 60}, {1000, 40}} {
		if _, err := NewWorld(dims[0], dims[1]); err == nil {
			t.Errorf("NewWorld(%d, %d) accepted degenerate dimensions", dims[0], dims[1])
		}
	}

	if _, err := NewWorld(200, 200); err != nil {
		t.Errorf("NewWorld(200, 200) rejected: %v", err)
	}
}

func TestPopulationMatchesConfig(t *testing.T) {
	w, err := NewWorld(800, 800)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	pop := config.Cfg().Population
	wantCreatures := pop.Beetles + pop.Butterflies + pop.Ants
	if got := w.CreatureCount(); got != wantCreatures {
		t.Errorf("CreatureCount = %d, want %d", got, wantCreatures)
	}

	counts := map[components.CreatureType]int{}
	ids := map[uint32]bool{}
	w.EachCreature(func(_ components.Position, _ components.Velocity, _ components.Body, cr components.Creature) {
		counts[cr.Type]++
		if ids[cr.ID] {
			t.Errorf("duplicate creature ID %d", cr.ID)
		}
		ids[cr.ID] = true
	})
	if counts[components.CreatureBeetle] != pop.Beetles ||
		counts[components.CreatureButterfly] != pop.Butterflies ||
		counts[components.CreatureAnt] != pop.Ants {
		t.Errorf("per-type counts %v do not match population config", counts)
	}

	// Flowers and bushes are fixed counts; grass patch sizes are randomized
	// within a configured band.
	minPlants := pop.Flowers + pop.Bushes + pop.GrassPatches*pop.GrassPerPatchMin
	maxPlants := pop.Flowers + pop.Bushes + pop.GrassPatches*pop.GrassPerPatchMax
	if n := len(w.Plants()); n < minPlants || n > maxPlants {
		t.Errorf("plant count %d outside [%d, %d]", n, minPlants, maxPlants)
	}
}
