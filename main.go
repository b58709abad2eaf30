package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/meadow/config"
	"github.com/pthm-cable/meadow/renderer"
	"github.com/pthm-cable/meadow/sim"
	"github.com/pthm-cable/meadow/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	width := flag.Int("width", 0, "World width in units (0 = use config)")
	height := flag.Int("height", 0, "World height in units (0 = use config)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster headless runs)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	worldW := cfg.World.Width
	if *width > 0 {
		worldW = *width
	}
	worldH := cfg.World.Height
	if *height > 0 {
		worldH = *height
	}

	world, err := sim.NewWorld(worldW, worldH)
	if err != nil {
		slog.Error("failed to create world", "error", err)
		os.Exit(1)
	}

	statsWindowSec := cfg.Telemetry.StatsWindow
	if *statsWindow > 0 {
		statsWindowSec = *statsWindow
	}
	collector := telemetry.NewCollector(statsWindowSec)

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		os.Exit(1)
	}
	defer output.Close()

	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	emitStats := func() {
		if !collector.WindowDone(world.Time) {
			return
		}
		stats := collector.Collect(world)
		if *logStats {
			stats.Log()
		}
		if err := output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
	}

	if *headless {
		slog.Info("starting headless simulation",
			"world_width", worldW,
			"world_height", worldH,
			"stats_window", statsWindowSec,
			"max_ticks", *maxTicks,
			"steps_per_update", *stepsPerUpdate,
		)

		for {
			for i := 0; i < *stepsPerUpdate; i++ {
				world.Update()
			}
			emitStats()

			if *maxTicks > 0 && int(world.Time) >= *maxTicks {
				slog.Info("max ticks reached", "tick", world.Time)
				return
			}
		}
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Meadow")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	viewer := renderer.NewViewer(
		int32(cfg.Screen.Width), int32(cfg.Screen.Height),
		world.Width, world.Height,
	)

	// Simulation cadence is decoupled from the display refresh: the viewer
	// may run several ticks per frame, or none at all while paused.
	for !rl.WindowShouldClose() {
		viewer.HandleInput()

		if !viewer.Paused {
			for i := 0; i < viewer.Speed; i++ {
				world.Update()
			}
			emitStats()
		}

		viewer.Draw(world)

		if *maxTicks > 0 && int(world.Time) >= *maxTicks {
			break
		}
	}
}
