// Package renderer draws the world with raylib. It is a pure consumer of
// simulation state: it reads positions, sizes, colors, weather, and day-phase
// between ticks and never writes into the world.
package renderer

import (
	"fmt"
	"math"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/meadow/components"
	"github.com/pthm-cable/meadow/sim"
	"github.com/pthm-cable/meadow/systems"
)

// Viewer renders the world into a window and owns presentation-only state.
// RainOverlay is a visual override kept outside the simulation: toggling it
// draws rain without touching world.Weather.
type Viewer struct {
	screenW, screenH int32
	scaleX, scaleY   float32

	Paused      bool
	Speed       int
	RainOverlay bool

	overlayRng *rand.Rand
}

// NewViewer creates a viewer mapping the given world size onto the screen.
func NewViewer(screenW, screenH int32, worldW, worldH float32) *Viewer {
	return &Viewer{
		screenW:    screenW,
		screenH:    screenH,
		scaleX:     float32(screenW) / worldW,
		scaleY:     float32(screenH) / worldH,
		Speed:      1,
		overlayRng: rand.New(rand.NewSource(1)),
	}
}

// HandleInput processes keyboard shortcuts.
func (v *Viewer) HandleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		v.Paused = !v.Paused
	}
	if rl.IsKeyPressed(rl.KeyComma) && v.Speed > 1 {
		v.Speed--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && v.Speed < 10 {
		v.Speed++
	}
}

// Draw renders one frame.
func (v *Viewer) Draw(w *sim.World) {
	rl.BeginDrawing()
	rl.ClearBackground(v.backgroundColor(w))

	v.drawPlants(w)
	v.drawCreatures(w)
	v.drawParticles(w)

	if v.RainOverlay {
		v.drawRainOverlay()
	}

	v.drawHUD(w)
	v.drawControls()

	rl.EndDrawing()
}

// backgroundColor blends night and day by day-phase and tints by weather.
func (v *Viewer) backgroundColor(w *sim.World) rl.Color {
	daylight := float32(math.Sin(float64(w.DayPhase) * math.Pi))

	night := [3]float32{22, 26, 44}
	day := [3]float32{140, 185, 120}

	var c [3]float32
	for i := range c {
		c[i] = night[i] + (day[i]-night[i])*daylight
	}

	switch w.Weather {
	case systems.WeatherRain:
		c[0] *= 0.7
		c[1] *= 0.75
		c[2] *= 0.9
	case systems.WeatherWindy:
		c[0] *= 0.9
		c[1] *= 0.9
		c[2] *= 0.9
	}

	return rl.NewColor(uint8(c[0]), uint8(c[1]), uint8(c[2]), 255)
}

func (v *Viewer) drawPlants(w *sim.World) {
	for _, p := range w.Plants() {
		rl.DrawCircle(
			int32(p.X*v.scaleX),
			int32(p.Y*v.scaleY),
			p.Size*v.scaleX,
			toRaylib(p.Color),
		)
	}
}

func (v *Viewer) drawCreatures(w *sim.World) {
	w.EachCreature(func(pos components.Position, vel components.Velocity, body components.Body, cr components.Creature) {
		x := pos.X * v.scaleX
		y := pos.Y * v.scaleY
		size := body.Size * v.scaleX
		color := toRaylib(body.Color)

		// Resting or freshly spawned creatures have no heading to point.
		if vel.X*vel.X+vel.Y*vel.Y < 1e-6 {
			rl.DrawCircle(int32(x), int32(y), size, color)
			return
		}

		heading := float32(math.Atan2(float64(vel.Y), float64(vel.X)))
		drawOrientedTriangle(x, y, heading, size, color)
	})
}

func (v *Viewer) drawParticles(w *sim.World) {
	for _, p := range w.Particles() {
		c := toRaylib(p.Color)
		// Fade out over remaining life.
		c.A = uint8(float32(c.A) * float32(p.Life) / float32(p.MaxLife))
		rl.DrawCircleV(
			rl.Vector2{X: p.X * v.scaleX, Y: p.Y * v.scaleY},
			p.Size,
			c,
		)
	}
}

// drawRainOverlay draws presentation-only rain streaks.
func (v *Viewer) drawRainOverlay() {
	color := rl.NewColor(160, 190, 235, 120)
	for i := 0; i < 80; i++ {
		x := float32(v.overlayRng.Intn(int(v.screenW)))
		y := float32(v.overlayRng.Intn(int(v.screenH)))
		rl.DrawLineV(rl.Vector2{X: x, Y: y}, rl.Vector2{X: x - 2, Y: y + 10}, color)
	}
}

func (v *Viewer) drawHUD(w *sim.World) {
	rl.DrawText(fmt.Sprintf("Tick: %d", w.Time), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Creatures: %d  Plants: %d  Particles: %d",
		w.CreatureCount(), len(w.Plants()), len(w.Particles())), 10, 35, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Weather: %s  Phase: %.2f  Speed: %dx  [</>]",
		w.Weather, w.DayPhase, v.Speed), 10, 60, 20, rl.White)
	if v.Paused {
		rl.DrawText("PAUSED", 10, 85, 20, rl.Yellow)
	}
}

// drawControls renders the raygui control strip.
func (v *Viewer) drawControls() {
	y := float32(v.screenH) - 40

	pauseLabel := "Pause"
	if v.Paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.Rectangle{X: 10, Y: y, Width: 100, Height: 30}, pauseLabel) {
		v.Paused = !v.Paused
	}

	overlayLabel := "Rain FX: off"
	if v.RainOverlay {
		overlayLabel = "Rain FX: on"
	}
	if gui.Button(rl.Rectangle{X: 120, Y: y, Width: 120, Height: 30}, overlayLabel) {
		v.RainOverlay = !v.RainOverlay
	}

	speed := gui.SliderBar(
		rl.Rectangle{X: 300, Y: y, Width: 150, Height: 30},
		"1x", "10x", float32(v.Speed), 1, 10)
	v.Speed = int(speed + 0.5)
	if v.Speed < 1 {
		v.Speed = 1
	}
}

// drawOrientedTriangle draws a triangle pointing in the heading direction.
func drawOrientedTriangle(x, y, heading, radius float32, color rl.Color) {
	cos := float32(math.Cos(float64(heading)))
	sin := float32(math.Sin(float64(heading)))

	frontX := x + cos*radius*1.5
	frontY := y + sin*radius*1.5

	backAngle := heading + math.Pi*0.8
	backLeftX := x + float32(math.Cos(float64(backAngle)))*radius
	backLeftY := y + float32(math.Sin(float64(backAngle)))*radius

	backAngle = heading - math.Pi*0.8
	backRightX := x + float32(math.Cos(float64(backAngle)))*radius
	backRightY := y + float32(math.Sin(float64(backAngle)))*radius

	v1 := rl.Vector2{X: frontX, Y: frontY}
	v2 := rl.Vector2{X: backLeftX, Y: backLeftY}
	v3 := rl.Vector2{X: backRightX, Y: backRightY}

	// DrawTriangle requires counter-clockwise winding (v1, v3, v2)
	rl.DrawTriangle(v1, v3, v2, color)
}

// toRaylib converts a simulation color to a raylib color.
func toRaylib(c components.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
