package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/input"
)

// Analog stick deflection below this is ignored.
const gamepadDeadzone = 0.2

// handleInput polls the devices and returns this tick's raw snapshot.
// Keyboard and gamepad contributions are merged by vector sum, so the
// decoder sees a single combined direction.
func (g *Game) handleInput() input.State {
	if rl.IsWindowResized() {
		g.cam.Resize(
			float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()),
			config.Cfg().Derived.Scale32,
		)
	}

	if rl.IsKeyPressed(rl.KeyP) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.showTuning = !g.showTuning
	}

	var state input.State

	// Keyboard: arrows steer, space is the charge/brake gesture, A boosts.
	if rl.IsKeyDown(rl.KeyUp) {
		state.MoveY += 1
	}
	if rl.IsKeyDown(rl.KeyDown) {
		state.MoveY -= 1
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		state.MoveX -= 1
	}
	if rl.IsKeyDown(rl.KeyRight) {
		state.MoveX += 1
	}
	if rl.IsKeyDown(rl.KeySpace) {
		state.Charge = true
	}
	if rl.IsKeyDown(rl.KeyA) {
		state.Boost = true
	}

	// Gamepad: left stick steers, south button is the charge gesture,
	// east button boosts.
	if rl.IsGamepadAvailable(0) {
		x := rl.GetGamepadAxisMovement(0, rl.GamepadAxisLeftX)
		y := rl.GetGamepadAxisMovement(0, rl.GamepadAxisLeftY)
		if x > gamepadDeadzone || x < -gamepadDeadzone {
			state.MoveX += x
		}
		if y > gamepadDeadzone || y < -gamepadDeadzone {
			state.MoveY -= y // stick Y is inverted relative to arena Y
		}
		if rl.IsGamepadButtonDown(0, rl.GamepadButtonRightFaceDown) {
			state.Charge = true
		}
		if rl.IsGamepadButtonDown(0, rl.GamepadButtonRightFaceRight) {
			state.Boost = true
		}
	}

	return state
}
