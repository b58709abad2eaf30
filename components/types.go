package components

// CreatureType enumerates the closed set of creature archetypes.
type CreatureType uint8

const (
	CreatureBeetle    CreatureType = iota // crawling
	CreatureButterfly                     // flying
	CreatureAnt                           // ground
)

// CreatureTypeCount is the number of creature archetypes.
const CreatureTypeCount = 3

// String returns the display name for a CreatureType.
func (t CreatureType) String() string {
	switch t {
	case CreatureBeetle:
		return "beetle"
	case CreatureButterfly:
		return "butterfly"
	case CreatureAnt:
		return "ant"
	default:
		return "unknown"
	}
}

// IsFlying reports whether the type moves through the air.
// Fliers get a sinusoidal drift on top of their velocity.
func (t CreatureType) IsFlying() bool {
	return t == CreatureButterfly
}

// creatureSpec holds per-type creation parameters.
type creatureSpec struct {
	baseSize   float32
	sizeJitter float32
	baseSpeed  float32
	palette    []Color
}

var creatureSpecs = [CreatureTypeCount]creatureSpec{
	CreatureBeetle: {
		baseSize:   5.0,
		sizeJitter: 1.2,
		baseSpeed:  0.6,
		palette: []Color{
			{40, 32, 28, 255},
			{62, 44, 30, 255},
			{30, 48, 34, 255},
		},
	},
	CreatureButterfly: {
		baseSize:   4.0,
		sizeJitter: 1.0,
		baseSpeed:  1.1,
		palette: []Color{
			{232, 150, 60, 255},
			{210, 110, 180, 255},
			{120, 150, 230, 255},
			{240, 220, 120, 255},
		},
	},
	CreatureAnt: {
		baseSize:   2.5,
		sizeJitter: 0.6,
		baseSpeed:  0.9,
		palette: []Color{
			{50, 30, 20, 255},
			{90, 40, 25, 255},
		},
	},
}

// BaseSize returns the type's base body size and its jitter half-range.
func (t CreatureType) BaseSize() (base, jitter float32) {
	s := &creatureSpecs[t]
	return s.baseSize, s.sizeJitter
}

// BaseSpeed returns the type's wander speed in units per tick.
func (t CreatureType) BaseSpeed() float32 {
	return creatureSpecs[t].baseSpeed
}

// Palette returns the fixed color palette for the type.
func (t CreatureType) Palette() []Color {
	return creatureSpecs[t].palette
}

// PlantType enumerates the closed set of plant archetypes.
type PlantType uint8

const (
	PlantGrass PlantType = iota
	PlantFlower
	PlantBush
)

// PlantTypeCount is the number of plant archetypes.
const PlantTypeCount = 3

// String returns the display name for a PlantType.
func (t PlantType) String() string {
	switch t {
	case PlantGrass:
		return "grass"
	case PlantFlower:
		return "flower"
	case PlantBush:
		return "bush"
	default:
		return "unknown"
	}
}

// plantSpec holds per-type creation parameters.
type plantSpec struct {
	baseMaxSize   float32
	maxSizeJitter float32
	palette       []Color
}

var plantSpecs = [PlantTypeCount]plantSpec{
	PlantGrass: {
		baseMaxSize:   4.0,
		maxSizeJitter: 1.5,
		palette: []Color{
			{70, 130, 50, 255},
			{86, 148, 62, 255},
			{58, 112, 44, 255},
		},
	},
	PlantFlower: {
		baseMaxSize:   5.5,
		maxSizeJitter: 1.5,
		palette: []Color{
			{220, 80, 120, 255},
			{240, 200, 70, 255},
			{180, 100, 220, 255},
			{250, 250, 245, 255},
		},
	},
	PlantBush: {
		baseMaxSize:   10.0,
		maxSizeJitter: 3.0,
		palette: []Color{
			{45, 95, 40, 255},
			{60, 110, 52, 255},
		},
	},
}

// BaseMaxSize returns the type's mature size and its jitter half-range.
func (t PlantType) BaseMaxSize() (base, jitter float32) {
	s := &plantSpecs[t]
	return s.baseMaxSize, s.maxSizeJitter
}

// Palette returns the fixed color palette for the type.
func (t PlantType) Palette() []Color {
	return plantSpecs[t].palette
}
