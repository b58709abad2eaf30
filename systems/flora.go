package systems

import (
	"github.com/pthm-cable/meadow/components"
	"github.com/pthm-cable/meadow/config"
)

// Plant is a single plant instance. Position is fixed at creation; only
// seedlings are placed, never repositioned. Size grows toward MaxSize and is
// reduced by grazing creatures.
type Plant struct {
	ID         uint32
	X, Y       float32
	Size       float32
	MaxSize    float32
	GrowthRate float32
	Color      components.Color
	Type       components.PlantType
	Age        int32
	Dead       bool
}

// NewPlant constructs a plant of the given type at a position. Bootstrap
// plants (startSmall=false) appear mature at 80-100% of MaxSize; seedlings
// start at a small random size.
func NewPlant(id uint32, typ components.PlantType, x, y float32, startSmall bool, rng *LCG) Plant {
	cfg := config.Cfg().Plants

	base, jitter := typ.BaseMaxSize()
	maxSize := base + rng.Range(-jitter, jitter)

	var size float32
	if startSmall {
		size = rng.Range(float32(cfg.MinSize), float32(cfg.MinSize)*2)
	} else {
		size = maxSize * rng.Range(0.8, 1.0)
	}

	palette := typ.Palette()
	color := palette[rng.Intn(len(palette))]

	return Plant{
		ID:         id,
		X:          x,
		Y:          y,
		Size:       size,
		MaxSize:    maxSize,
		GrowthRate: rng.Range(float32(cfg.GrowthRateMin), float32(cfg.GrowthRateMax)),
		Color:      color,
		Type:       typ,
	}
}

// PlantSystem manages the plant collection outside the ECS. Plants are
// numerous and mostly inert, so a plain slice with compaction removal is
// cheaper than entity churn.
type PlantSystem struct {
	Plants []Plant

	// Cumulative counters for telemetry.
	Spawned int
	Removed int

	bounds       Bounds
	reproductive bool
	nextID       uint32
}

// NewPlantSystem creates a plant system for the given bounds.
// The lifecycle variant comes from config: "reproductive" plants spawn
// seedlings and are removed when grazed below the minimum size; "static"
// plants never reproduce and floor at the minimum size instead.
func NewPlantSystem(bounds Bounds) *PlantSystem {
	cfg := config.Cfg().Plants
	return &PlantSystem{
		Plants:       make([]Plant, 0, cfg.MaxPlants),
		bounds:       bounds,
		reproductive: cfg.Lifecycle == "reproductive",
	}
}

// Add creates and appends a plant, assigning it a fresh ID.
func (ps *PlantSystem) Add(typ components.PlantType, x, y float32, startSmall bool, rng *LCG) {
	ps.Plants = append(ps.Plants, NewPlant(ps.nextID, typ, x, y, startSmall, rng))
	ps.nextID++
}

// Nibble reduces the plant at index i by the given amount. Floor policy is
// applied on the next Update pass.
func (ps *PlantSystem) Nibble(i int, amount float32) {
	ps.Plants[i].Size -= amount
}

// Update advances every plant by one tick: ageing, day/weather-modulated
// growth, the configured shrink policy, and (reproductive variant only)
// seedling spawning and removal of depleted plants.
func (ps *PlantSystem) Update(dayPhase float32, weather Weather, rng *LCG) {
	cfg := config.Cfg().Plants
	minSize := float32(cfg.MinSize)
	growth := DayGrowthMultiplier(dayPhase) * WeatherGrowthMultiplier(weather)

	// Seedlings are collected during iteration and appended afterwards;
	// the plant slice is never mutated structurally mid-loop.
	type seed struct {
		typ  components.PlantType
		x, y float32
	}
	var seeds []seed

	for i := range ps.Plants {
		p := &ps.Plants[i]
		p.Age++

		if p.Size < p.MaxSize {
			p.Size += p.GrowthRate * growth
			if p.Size > p.MaxSize {
				p.Size = p.MaxSize
			}
		}

		if !ps.reproductive {
			// Static variant: grazing can't take a plant below the floor,
			// keeping the entity count fixed for long-running sessions.
			if p.Size < minSize {
				p.Size = minSize
			}
			continue
		}

		// Reproductive variant: depleted plants die.
		if p.Size < minSize {
			p.Dead = true
			continue
		}

		// Mature plants occasionally drop a seedling nearby.
		if p.Age >= int32(cfg.SpawnAge) &&
			p.Size >= p.MaxSize*float32(cfg.SpawnMaturity) &&
			len(ps.Plants)+len(seeds) < cfg.MaxPlants &&
			rng.Chance(float32(cfg.SpawnChance)) {

			offset := float32(cfg.SpawnOffset)
			margin := config.Cfg().Derived.PlantMargin32
			x := clampFloat(p.X+rng.Range(-offset, offset), margin, ps.bounds.Width-margin)
			y := clampFloat(p.Y+rng.Range(-offset, offset), margin, ps.bounds.Height-margin)
			seeds = append(seeds, seed{typ: p.Type, x: x, y: y})
		}
	}

	for _, s := range seeds {
		ps.Add(s.typ, s.x, s.y, true, rng)
		ps.Spawned++
	}

	if ps.reproductive {
		ps.compact()
	}
}

// compact removes dead plants by retaining live ones in order.
func (ps *PlantSystem) compact() {
	alive := 0
	for i := range ps.Plants {
		if ps.Plants[i].Dead {
			ps.Removed++
			continue
		}
		ps.Plants[alive] = ps.Plants[i]
		alive++
	}
	ps.Plants = ps.Plants[:alive]
}
