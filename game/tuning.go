package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/config"
)

// drawTuningPanel renders the live tuning sliders. Edits apply on the
// next tick; the cooldown duration of already-spawned hulls is fixed at
// spawn, so that slider only affects a restart.
func (g *Game) drawTuningPanel() {
	cfg := config.Cfg()

	panelX := float32(10)
	panelY := float32(90)
	panelW := float32(300)

	rl.DrawRectangle(int32(panelX)-5, int32(panelY)-5, int32(panelW)+10, 310, rl.Color{R: 0, G: 0, B: 0, A: 180})
	rl.DrawText("Tuning [Tab to close]", int32(panelX), int32(panelY), 16, rl.Yellow)
	panelY += 26

	slider := func(label string, value *float64, min, max float32) {
		rl.DrawText(label, int32(panelX), int32(panelY), 12, rl.Gray)
		panelY += 14
		next := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelW - 60, Height: 16},
			fmt.Sprintf("%.1f", min), fmt.Sprintf("%.1f", max),
			float32(*value), min, max,
		)
		rl.DrawText(fmt.Sprintf("%.2f", *value), int32(panelX+panelW-50), int32(panelY), 14, rl.White)
		*value = float64(next)
		panelY += 26
	}

	slider("Impulse magnitude", &cfg.Control.ImpulseMagnitude, 1, 40)
	slider("Force magnitude", &cfg.Control.ForceMagnitude, 1, 20)
	slider("Acceleration factor", &cfg.Control.AccelerationFactor, 0, 1)
	slider("Default damping", &cfg.Control.DefaultDamping, 0, 4)
	slider("Stabilisation damping", &cfg.Control.StabilisationDamping, 1, 12)
	slider("Cooldown (restart)", &cfg.Control.CooldownSeconds, 0, 5)
	slider("Wall restitution", &cfg.Arena.WallRestitution, 0, 1)
}
