// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Population PopulationConfig `yaml:"population"`
	Creatures  CreatureConfig   `yaml:"creatures"`
	Plants     PlantConfig      `yaml:"plants"`
	Day        DayConfig        `yaml:"day"`
	Weather    WeatherConfig    `yaml:"weather"`
	Particles  ParticleConfig   `yaml:"particles"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings for the viewer.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds default simulation world dimensions.
// The viewer camera scales the world into the window.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PopulationConfig holds initial entity counts for world generation.
type PopulationConfig struct {
	Beetles          int     `yaml:"beetles"`
	Butterflies      int     `yaml:"butterflies"`
	Ants             int     `yaml:"ants"`
	GrassPatches     int     `yaml:"grass_patches"`
	GrassPerPatchMin int     `yaml:"grass_per_patch_min"`
	GrassPerPatchMax int     `yaml:"grass_per_patch_max"`
	PatchRadius      float64 `yaml:"patch_radius"` // scatter radius around a patch center
	Flowers          int     `yaml:"flowers"`
	Bushes           int     `yaml:"bushes"`
}

// CreatureConfig holds creature behavior parameters.
type CreatureConfig struct {
	Margin          float64 `yaml:"margin"`            // inset from world edges; bounce boundary
	EnergyDecay     float64 `yaml:"energy_decay"`      // energy drain per tick
	EatGain         float64 `yaml:"eat_gain"`          // energy gained per nibble
	EatSearchRadius float64 `yaml:"eat_search_radius"` // plant search distance on eat transition
	EatNibbleRadius float64 `yaml:"eat_nibble_radius"` // plant must be this close to nibble
	EatMinSize      float64 `yaml:"eat_min_size"`      // minimum plant size to target
	NibbleMinSize   float64 `yaml:"nibble_min_size"`   // minimum plant size to nibble
	NibbleDamage    float64 `yaml:"nibble_damage"`     // plant size removed per nibble
	FlightDrift     float64 `yaml:"flight_drift"`      // sinusoidal drift amplitude for fliers
}

// PlantConfig holds plant lifecycle parameters.
// Lifecycle selects the long-run population policy:
//   - "static": fixed plant count; grazed plants floor at min_size
//   - "reproductive": mature plants spawn seedlings; depleted plants are removed
type PlantConfig struct {
	Lifecycle       string  `yaml:"lifecycle"`
	Margin          float64 `yaml:"margin"` // inset from world edges for plant placement
	MinSize         float64 `yaml:"min_size"`
	GrowthRateMin   float64 `yaml:"growth_rate_min"`
	GrowthRateMax   float64 `yaml:"growth_rate_max"`
	RainGrowthBoost float64 `yaml:"rain_growth_boost"`
	MaxPlants       int     `yaml:"max_plants"`
	SpawnAge        int     `yaml:"spawn_age"`      // minimum age before reproduction
	SpawnMaturity   float64 `yaml:"spawn_maturity"` // size/maxSize ratio before reproduction
	SpawnChance     float64 `yaml:"spawn_chance"`   // per-tick reproduction probability
	SpawnOffset     float64 `yaml:"spawn_offset"`   // max seedling distance from parent
}

// DayConfig holds day-night cycle parameters.
type DayConfig struct {
	CycleEnabled  bool    `yaml:"cycle_enabled"`
	TicksPerCycle int     `yaml:"ticks_per_cycle"`
	InitialPhase  float64 `yaml:"initial_phase"` // 0 = midnight, 0.5 = noon
}

// WeatherConfig holds weather transition parameters.
// Each tick, with change_chance probability, weather is resampled from the
// weighted set; the process is memoryless.
type WeatherConfig struct {
	ChangeChance float64 `yaml:"change_chance"`
	ClearWeight  float64 `yaml:"clear_weight"`
	RainWeight   float64 `yaml:"rain_weight"`
	WindyWeight  float64 `yaml:"windy_weight"`
}

// ParticleConfig holds ambient particle parameters.
type ParticleConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MaxParticles int     `yaml:"max_particles"`
	RainRate     float64 `yaml:"rain_rate"`    // per-tick emission probability under rain
	AmbientRate  float64 `yaml:"ambient_rate"` // per-tick pollen emission probability when clear
	GustRate     float64 `yaml:"gust_rate"`    // per-tick dust emission probability when windy
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // window size in seconds at 60 ticks/sec
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Margin32      float32 // Creatures.Margin as float32
	PlantMargin32 float32 // Plants.Margin as float32
	DayIncrement  float32 // day-phase advance per tick
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects configurations the simulation cannot run with.
func (c *Config) validate() error {
	switch c.Plants.Lifecycle {
	case "static", "reproductive":
	default:
		return fmt.Errorf("plants.lifecycle must be \"static\" or \"reproductive\", got %q", c.Plants.Lifecycle)
	}
	if c.Day.TicksPerCycle <= 0 {
		return fmt.Errorf("day.ticks_per_cycle must be positive, got %d", c.Day.TicksPerCycle)
	}
	total := c.Weather.ClearWeight + c.Weather.RainWeight + c.Weather.WindyWeight
	if total <= 0 {
		return fmt.Errorf("weather weights must sum to a positive value, got %g", total)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.Margin32 = float32(c.Creatures.Margin)
	c.Derived.PlantMargin32 = float32(c.Plants.Margin)
	c.Derived.DayIncrement = float32(1.0 / float64(c.Day.TicksPerCycle))
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
