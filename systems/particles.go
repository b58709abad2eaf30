package systems

import (
	"github.com/pthm-cable/meadow/components"
	"github.com/pthm-cable/meadow/config"
)

// ParticleKind identifies the type of ambient particle.
type ParticleKind uint8

const (
	ParticleRain ParticleKind = iota
	ParticlePollen
	ParticleDust
)

// Particle is an ephemeral environmental effect. It is removed once Life
// reaches zero or it leaves the world bounds.
type Particle struct {
	X, Y       float32
	VelX, VelY float32
	Life       int32
	MaxLife    int32
	Size       float32
	Color      components.Color
	Kind       ParticleKind
}

// ParticleSystem manages ambient weather particles.
// Emission is Poisson-like: a fixed per-tick probability per emitter, never
// batch scheduled.
type ParticleSystem struct {
	Particles []Particle

	bounds Bounds
	wind   *WindField
}

// NewParticleSystem creates a particle system for the given bounds.
func NewParticleSystem(bounds Bounds, wind *WindField) *ParticleSystem {
	return &ParticleSystem{
		Particles: make([]Particle, 0, 256),
		bounds:    bounds,
		wind:      wind,
	}
}

// Update integrates, prunes, and emits particles for one tick.
func (s *ParticleSystem) Update(weather Weather, tick int32, rng *LCG) {
	cfg := config.Cfg().Particles
	if !cfg.Enabled {
		return
	}

	windy := weather == WeatherWindy

	alive := 0
	for i := range s.Particles {
		p := &s.Particles[i]

		p.Life--
		if p.Life <= 0 {
			continue
		}

		if windy {
			gx, gy := s.wind.Sample(p.X, p.Y, tick)
			p.X += gx
			p.Y += gy
		}

		p.X += p.VelX
		p.Y += p.VelY

		// Rain spawns above the top edge, so allow headroom there.
		if p.X < 0 || p.X > s.bounds.Width || p.Y < -30 || p.Y > s.bounds.Height {
			continue
		}

		s.Particles[alive] = s.Particles[i]
		alive++
	}
	s.Particles = s.Particles[:alive]

	if len(s.Particles) >= cfg.MaxParticles {
		return
	}

	switch weather {
	case WeatherRain:
		if rng.Chance(float32(cfg.RainRate)) {
			s.emitRain(rng)
		}
	case WeatherClear:
		if rng.Chance(float32(cfg.AmbientRate)) {
			s.emitPollen(rng)
		}
	case WeatherWindy:
		if rng.Chance(float32(cfg.GustRate)) {
			s.emitDust(rng)
		}
	}
}

// emitRain spawns a falling droplet just above the top edge.
func (s *ParticleSystem) emitRain(rng *LCG) {
	life := int32(rng.IntRange(240, 420))
	s.Particles = append(s.Particles, Particle{
		X:       rng.Range(0, s.bounds.Width),
		Y:       -rng.Range(2, 20),
		VelX:    rng.Range(-0.2, 0.2),
		VelY:    rng.Range(2.5, 4.0),
		Life:    life,
		MaxLife: life,
		Size:    rng.Range(1.0, 2.0),
		Color:   components.Color{R: 150, G: 180, B: 230, A: 200},
		Kind:    ParticleRain,
	})
}

// emitPollen spawns a slow-rising ambient mote inside the world.
func (s *ParticleSystem) emitPollen(rng *LCG) {
	life := int32(rng.IntRange(200, 400))
	s.Particles = append(s.Particles, Particle{
		X:       rng.Range(0, s.bounds.Width),
		Y:       rng.Range(0, s.bounds.Height),
		VelX:    rng.Range(-0.1, 0.1),
		VelY:    -rng.Range(0.1, 0.3),
		Life:    life,
		MaxLife: life,
		Size:    rng.Range(0.8, 1.6),
		Color:   components.Color{R: 245, G: 235, B: 170, A: 160},
		Kind:    ParticlePollen,
	})
}

// emitDust spawns a wind-borne dust mote; the wind field does the steering.
func (s *ParticleSystem) emitDust(rng *LCG) {
	life := int32(rng.IntRange(150, 300))
	s.Particles = append(s.Particles, Particle{
		X:       rng.Range(0, s.bounds.Width),
		Y:       rng.Range(0, s.bounds.Height),
		VelX:    rng.Range(-0.1, 0.1),
		VelY:    rng.Range(-0.1, 0.1),
		Life:    life,
		MaxLife: life,
		Size:    rng.Range(0.6, 1.2),
		Color:   components.Color{R: 190, G: 175, B: 140, A: 140},
		Kind:    ParticleDust,
	})
}
