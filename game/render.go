package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/systems"
)

// Hull ellipse radii in arena units, matching the original prototype's
// slightly squashed ball.
const (
	hullEllipseH  = 0.35
	hullEllipseV  = 0.25
	wallThickness = 0.1
)

// Draw renders the frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.drawArena()
	g.drawHulls()
	g.drawParticles()
	g.drawHUD()

	if g.showTuning {
		g.drawTuningPanel()
	}

	rl.EndDrawing()
}

// drawArena renders the four border walls.
func (g *Game) drawArena() {
	cfg := config.Cfg()
	halfW := cfg.Derived.ArenaW32
	halfH := cfg.Derived.ArenaH32

	thickness := g.cam.Length(wallThickness * 2)
	width := g.cam.Length(halfW * 2)
	height := g.cam.Length(halfH * 2)

	left, top := g.cam.WorldToScreen(-halfW, halfH)

	// Horizontal walls
	rl.DrawRectangle(int32(left), int32(top-thickness), int32(width), int32(thickness), rl.White)
	rl.DrawRectangle(int32(left), int32(top+height), int32(width), int32(thickness), rl.White)
	// Vertical walls
	rl.DrawRectangle(int32(left-thickness), int32(top-thickness), int32(thickness), int32(height+2*thickness), rl.White)
	rl.DrawRectangle(int32(left+width), int32(top-thickness), int32(thickness), int32(height+2*thickness), rl.White)
}

// drawHulls renders the player and drone hulls. The player's tint runs
// from orange to white-hot with heat; the drone stays red.
func (g *Game) drawHulls() {
	query := g.drawFilter.Query()
	for query.Next() {
		pos, _ := query.Get()
		sx, sy := g.cam.WorldToScreen(pos.X, pos.Y)

		color := rl.Red
		if query.Entity() == g.player {
			color = heatColor(g.heatMap.Get(g.player).Amount)
		}

		rl.DrawEllipse(int32(sx), int32(sy), g.cam.Length(hullEllipseH), g.cam.Length(hullEllipseV), color)
	}
}

// heatColor maps heat in [0, 1] to the player tint: cool orange at zero,
// white-hot at full heat.
func heatColor(heat float32) rl.Color {
	return rl.Color{
		R: 255,
		G: uint8(161 + heat*(255-161)),
		B: uint8(heat * 255),
		A: 255,
	}
}

// drawParticles renders the effect particles, fading with remaining life.
func (g *Game) drawParticles() {
	for i := range g.particles.Particles {
		p := &g.particles.Particles[i]

		var color rl.Color
		switch p.Type {
		case systems.ParticleBurst:
			color = rl.Color{R: 255, G: 200, B: 0, A: 255}
		case systems.ParticlePuff:
			color = rl.Color{R: 180, G: 180, B: 180, A: 255}
		case systems.ParticleImpact:
			color = rl.White
		}
		if p.MaxLife > 0 {
			color.A = uint8(255 * p.Life / p.MaxLife)
		}

		sx, sy := g.cam.WorldToScreen(p.X, p.Y)
		rl.DrawCircle(int32(sx), int32(sy), p.Size, color)
	}
}

// drawHUD renders the tick counter, heat bar, and key hints.
func (g *Game) drawHUD() {
	rl.DrawText(fmt.Sprintf("Tick: %d", g.tick), 10, 10, 20, rl.White)

	// Heat bar
	heat := g.heatMap.Get(g.player).Amount
	rl.DrawText("Heat", 10, 38, 16, rl.Gray)
	rl.DrawRectangle(60, 38, 150, 16, rl.DarkGray)
	rl.DrawRectangle(60, 38, int32(150*heat), 16, heatColor(heat))
	rl.DrawRectangleLines(60, 38, 150, 16, rl.Gray)

	rl.DrawText("arrows: thrust  space: brake/charge  A: boost  Tab: tuning  P: pause", 10, int32(g.cam.ViewportH)-24, 14, rl.Gray)

	if g.paused {
		rl.DrawText("PAUSED", 10, 62, 20, rl.Yellow)
	}
}
