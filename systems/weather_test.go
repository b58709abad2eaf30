package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/meadow/config"
)

func init() {
	// Initialize config for tests
	config.MustInit("")
}

func TestDayGrowthMultiplier(t *testing.T) {
	tests := []struct {
		name  string
		phase float32
		want  float64
	}{
		{"midnight", 0, 0},
		{"morning", 0.25, math.Sqrt2 / 2},
		{"noon", 0.5, 1},
		{"evening", 0.75, math.Sqrt2 / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := float64(DayGrowthMultiplier(tt.phase))
			if math.Abs(got-tt.want) > 1e-4 {
				t.Errorf("DayGrowthMultiplier(%v) = %v, want %v", tt.phase, got, tt.want)
			}
		})
	}
}

func TestAdvanceDayPhaseWraps(t *testing.T) {
	phase := float32(0.999)
	for i := 0; i < 100; i++ {
		phase = AdvanceDayPhase(phase)
		if phase < 0 || phase >= 1 {
			t.Fatalf("phase = %v, want [0, 1)", phase)
		}
	}
}

func TestAdvanceDayPhaseDisabled(t *testing.T) {
	cfg := config.Cfg()
	prev := cfg.Day.CycleEnabled
	cfg.Day.CycleEnabled = false
	defer func() { cfg.Day.CycleEnabled = prev }()

	phase := float32(0.5)
	for i := 0; i < 100; i++ {
		if got := AdvanceDayPhase(phase); got != phase {
			t.Fatalf("disabled cycle moved phase: %v -> %v", phase, got)
		}
	}
}

func TestWeatherGrowthMultiplier(t *testing.T) {
	if m := WeatherGrowthMultiplier(WeatherRain); m <= 1 {
		t.Errorf("rain multiplier = %v, want > 1", m)
	}
	if m := WeatherGrowthMultiplier(WeatherClear); m != 1 {
		t.Errorf("clear multiplier = %v, want 1", m)
	}
	if m := WeatherGrowthMultiplier(WeatherWindy); m != 1 {
		t.Errorf("windy multiplier = %v, want 1", m)
	}
}

func TestNextWeatherIsMemoryless(t *testing.T) {
	rng := NewLCG(1)

	// Force a resample every tick and count outcomes.
	cfg := config.Cfg()
	prev := cfg.Weather.ChangeChance
	cfg.Weather.ChangeChance = 1.0
	defer func() { cfg.Weather.ChangeChance = prev }()

	counts := map[Weather]int{}
	w := WeatherClear
	const n = 10000
	for i := 0; i < n; i++ {
		w = NextWeather(w, rng)
		counts[w]++
	}

	// Clear is heavily weighted; rain and windy are minority outcomes.
	if counts[WeatherClear] <= counts[WeatherRain] || counts[WeatherClear] <= counts[WeatherWindy] {
		t.Errorf("clear should dominate, got %v", counts)
	}
	for _, weather := range []Weather{WeatherClear, WeatherRain, WeatherWindy} {
		if counts[weather] == 0 {
			t.Errorf("weather %v never sampled over %d ticks", weather, n)
		}
	}
}

func TestNextWeatherHoldsWithoutTrigger(t *testing.T) {
	rng := NewLCG(1)

	cfg := config.Cfg()
	prev := cfg.Weather.ChangeChance
	cfg.Weather.ChangeChance = 0
	defer func() { cfg.Weather.ChangeChance = prev }()

	w := WeatherRain
	for i := 0; i < 1000; i++ {
		if got := NextWeather(w, rng); got != WeatherRain {
			t.Fatalf("weather changed with zero change chance: %v", got)
		}
	}
}
