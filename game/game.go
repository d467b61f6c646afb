// Package game owns the simulation loop and the raylib front end.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/drift/camera"
	"github.com/pthm-cable/drift/components"
	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/input"
	"github.com/pthm-cable/drift/systems"
	"github.com/pthm-cable/drift/telemetry"
)

// Options configures a game instance.
type Options struct {
	Seed       int64
	Headless   bool
	OutputDir  string // record the action log here (empty = disabled)
	ReplayPath string // re-run a recorded actions.csv (empty = live input)
}

// Game holds the complete prototype state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	// Entity mappers
	playerMapper *ecs.Map5[
		components.Position,
		components.Velocity,
		components.Hull,
		components.Actuation,
		components.Heat,
	]
	droneMapper *ecs.Map3[
		components.Position,
		components.Velocity,
		components.Hull,
	]

	// Individual component mappers for lookups
	posMap  *ecs.Map1[components.Position]
	velMap  *ecs.Map1[components.Velocity]
	heatMap *ecs.Map1[components.Heat]

	// Render filter over everything with a hull
	drawFilter *ecs.Filter2[components.Position, components.Hull]

	player ecs.Entity

	// Systems
	control   *systems.ControlSystem
	physics   *systems.PhysicsSystem
	particles *systems.ParticleSystem

	// Input
	decoder input.Decoder
	replay  *telemetry.Replay

	// Telemetry
	recorder *telemetry.Recorder
	stats    telemetry.SessionStats

	// Rendering
	cam *camera.Camera

	// State
	tick       int32
	paused     bool
	showTuning bool
	headless   bool
}

// NewGame creates a game instance.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	g := &Game{
		world:    world,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		headless: opts.Headless,
		playerMapper: ecs.NewMap5[
			components.Position,
			components.Velocity,
			components.Hull,
			components.Actuation,
			components.Heat,
		](world),
		droneMapper: ecs.NewMap3[
			components.Position,
			components.Velocity,
			components.Hull,
		](world),
		posMap:     ecs.NewMap1[components.Position](world),
		velMap:     ecs.NewMap1[components.Velocity](world),
		heatMap:    ecs.NewMap1[components.Heat](world),
		drawFilter: ecs.NewFilter2[components.Position, components.Hull](world),
	}

	g.control = systems.NewControlSystem(world)
	g.physics = systems.NewPhysicsSystem(world, systems.Arena{
		HalfWidth:   cfg.Derived.ArenaW32,
		HalfHeight:  cfg.Derived.ArenaH32,
		Restitution: float32(cfg.Arena.WallRestitution),
	})
	g.particles = systems.NewParticleSystem(
		cfg.Particles.MaxParticles,
		cfg.Particles.BurstCount,
		cfg.Particles.PuffCount,
		g.rng,
	)

	g.cam = camera.New(
		cfg.Derived.ScreenW32, cfg.Derived.ScreenH32,
		cfg.Derived.ArenaW32, cfg.Derived.ArenaH32,
		cfg.Derived.Scale32,
	)

	g.spawnHulls()

	if opts.ReplayPath != "" {
		replay, err := telemetry.LoadReplay(opts.ReplayPath)
		if err != nil {
			return nil, fmt.Errorf("loading replay: %w", err)
		}
		g.replay = replay
		slog.Info("replaying action log", "path", opts.ReplayPath, "last_tick", replay.LastTick())
	}

	recorder, err := telemetry.NewRecorder(opts.OutputDir, cfg.Telemetry.FlushInterval)
	if err != nil {
		return nil, fmt.Errorf("creating recorder: %w", err)
	}
	g.recorder = recorder
	if err := g.recorder.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("snapshotting config: %w", err)
	}

	return g, nil
}

// spawnHulls creates the player hull and the free drone hull.
func (g *Game) spawnHulls() {
	cfg := config.Cfg()
	radius := cfg.Derived.HullRadius

	pos := components.Position{}
	vel := components.Velocity{}
	hull := components.Hull{Radius: radius}
	act := components.Actuation{
		Damping:  float32(cfg.Control.DefaultDamping),
		Cooldown: components.NewCooldown(float32(cfg.Control.CooldownSeconds)),
	}
	heat := components.Heat{}
	g.player = g.playerMapper.NewEntity(&pos, &vel, &hull, &act, &heat)

	dronePos := components.Position{X: 0.5, Y: 0.5}
	droneVel := components.Velocity{}
	droneHull := components.Hull{Radius: radius}
	g.droneMapper.NewEntity(&dronePos, &droneVel, &droneHull)
}

// Update runs one frame in graphical mode: poll devices, decode, step.
func (g *Game) Update() {
	state := g.handleInput()

	if g.paused {
		g.decoder.Reset()
		return
	}

	events := g.decoder.Decode(state)
	g.simulationStep(events)
}

// UpdateHeadless runs one tick without device polling. Events come from
// the replay log when one is loaded, otherwise the hull just drifts.
func (g *Game) UpdateHeadless() error {
	var events []input.Event
	if g.replay != nil {
		var err error
		events, err = g.replay.EventsFor(g.tick)
		if err != nil {
			return err
		}
	}
	g.simulationStep(events)
	return nil
}

// simulationStep runs a single tick of the simulation.
func (g *Game) simulationStep(events []input.Event) {
	cfg := config.Cfg()
	dt := cfg.Derived.DT32

	g.physics.SetRestitution(float32(cfg.Arena.WallRestitution))
	g.control.Update(dt, events)
	contacts := g.physics.Update(dt)

	playerPos := g.posMap.Get(g.player)
	playerHeat := g.heatMap.Get(g.player)

	if !g.headless {
		g.particles.HandleEvents(events, playerPos.X, playerPos.Y, cfg.Derived.HullRadius)
		for _, c := range contacts {
			g.particles.EmitImpact(c.X, c.Y)
		}
		g.particles.Update(dt)
	}

	for _, ev := range events {
		g.recorder.Record(telemetry.NewActionRecord(g.tick, ev, playerHeat.Amount))
		g.stats.RecordAction(ev.Kind)
	}
	g.stats.SampleHeat(playerHeat.Amount)
	if err := g.recorder.EndTick(); err != nil {
		slog.Error("flushing action log", "error", err)
	}

	g.tick++
}

// Tick returns the current tick counter.
func (g *Game) Tick() int32 {
	return g.tick
}

// ReplayDone reports whether a loaded replay has been fully consumed.
func (g *Game) ReplayDone() bool {
	return g.replay != nil && g.replay.Done() && g.tick > g.replay.LastTick()
}

// PlayerHeat returns the player hull's current heat.
func (g *Game) PlayerHeat() float32 {
	return g.heatMap.Get(g.player).Amount
}

// Unload closes the recorder and logs the session summary.
func (g *Game) Unload() {
	if err := g.recorder.Close(); err != nil {
		slog.Error("closing action log", "error", err)
	}

	sum := g.stats.Summarize()
	slog.Info("session summary",
		"ticks", sum.TicksSampled,
		"impulses", sum.Impulses,
		"forces", sum.Forces,
		"stabilises", sum.Stabilises,
		"accelerates", sum.Accelerates,
		"heat_mean", sum.HeatMean,
		"heat_p50", sum.HeatP50,
		"heat_p90", sum.HeatP90,
		"heat_max", sum.HeatMax,
	)
}
