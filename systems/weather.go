package systems

import (
	"math"

	"github.com/pthm-cable/meadow/config"
)

// Weather enumerates the global weather states.
type Weather uint8

const (
	WeatherClear Weather = iota
	WeatherRain
	WeatherWindy
)

// String returns the display name for a Weather.
func (w Weather) String() string {
	switch w {
	case WeatherClear:
		return "clear"
	case WeatherRain:
		return "rain"
	case WeatherWindy:
		return "windy"
	default:
		return "unknown"
	}
}

// NextWeather advances the weather process by one tick. With a small fixed
// probability the weather is resampled from the weighted set; the transition
// is memoryless, not a cross-fade. The visual layer smooths transitions.
func NextWeather(current Weather, rng *LCG) Weather {
	cfg := config.Cfg().Weather

	if !rng.Chance(float32(cfg.ChangeChance)) {
		return current
	}
	return sampleWeather(rng)
}

// sampleWeather draws a weather value from the configured weights.
func sampleWeather(rng *LCG) Weather {
	cfg := config.Cfg().Weather
	total := float32(cfg.ClearWeight + cfg.RainWeight + cfg.WindyWeight)

	roll := rng.Next() * total
	if roll < float32(cfg.ClearWeight) {
		return WeatherClear
	}
	if roll < float32(cfg.ClearWeight+cfg.RainWeight) {
		return WeatherRain
	}
	return WeatherWindy
}

// AdvanceDayPhase advances the cyclic day-phase scalar by one tick, wrapping
// modulo 1. When the day cycle is disabled the phase is held fixed.
func AdvanceDayPhase(phase float32) float32 {
	cfg := config.Cfg()
	if !cfg.Day.CycleEnabled {
		return phase
	}

	phase += cfg.Derived.DayIncrement
	if phase >= 1 {
		phase -= 1
	}
	return phase
}

// DayGrowthMultiplier maps day-phase to a growth factor: zero at midnight,
// peaking at noon as a half-sine.
func DayGrowthMultiplier(phase float32) float32 {
	m := float32(math.Sin(float64(phase) * math.Pi))
	if m < 0 {
		m = 0
	}
	return m
}

// WeatherGrowthMultiplier maps weather to a growth factor. Rain boosts growth.
func WeatherGrowthMultiplier(w Weather) float32 {
	if w == WeatherRain {
		return float32(config.Cfg().Plants.RainGrowthBoost)
	}
	return 1
}
