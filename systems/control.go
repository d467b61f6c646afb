// Package systems contains the per-tick systems of the simulation.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/drift/components"
	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/input"
)

// ControlSystem maps this tick's input events onto actuation requests.
// Impulse and Accelerate share one cooldown per body; Force and
// Stabilise are never gated.
type ControlSystem struct {
	filter ecs.Filter3[components.Velocity, components.Actuation, components.Heat]
}

// NewControlSystem creates the control system for the given world.
func NewControlSystem(w *ecs.World) *ControlSystem {
	return &ControlSystem{
		filter: *ecs.NewFilter3[components.Velocity, components.Actuation, components.Heat](w),
	}
}

// Update runs one control step: clears stale forces, advances cooldowns
// by dt, then applies the events in emission order to every actuated
// body. Events gated by a cold cooldown are dropped silently, never
// queued.
func (s *ControlSystem) Update(dt float32, events []input.Event) {
	cfg := config.Cfg()
	impulseMag := float32(cfg.Control.ImpulseMagnitude)
	forceMag := float32(cfg.Control.ForceMagnitude)
	accelFactor := float32(cfg.Control.AccelerationFactor)
	defaultDamping := float32(cfg.Control.DefaultDamping)
	stabDamping := float32(cfg.Control.StabilisationDamping)
	impulseHeat := float32(cfg.Heat.ImpulseIncrement)
	forceHeat := float32(cfg.Heat.ForceIncrement)
	stabDrain := float32(cfg.Heat.StabiliseDrain)

	// Clear last tick's force requests and advance cooldowns before any
	// event is applied, so thrust never outlives the input that caused it.
	query := s.filter.Query()
	for query.Next() {
		_, act, _ := query.Get()
		act.ForceX, act.ForceY = 0, 0
		act.Cooldown.Tick(dt)
	}

	for _, ev := range events {
		query := s.filter.Query()
		for query.Next() {
			vel, act, heat := query.Get()

			switch ev.Kind {
			case input.KindImpulse:
				if !act.Cooldown.Ready() {
					continue
				}
				act.Cooldown.Start()
				act.Damping = defaultDamping
				act.ImpulseX = ev.Direction.X * impulseMag
				act.ImpulseY = ev.Direction.Y * impulseMag
				heat.Add(impulseHeat)

			case input.KindStabilise:
				// Always applies, regardless of cooldown state.
				act.Damping = stabDamping
				heat.Add(-stabDrain)

			case input.KindAccelerate:
				if !act.Cooldown.Ready() {
					continue
				}
				act.Cooldown.Start()
				// Self-reinforcing kick along the current heading.
				act.ImpulseX = vel.X * accelFactor
				act.ImpulseY = vel.Y * accelFactor
				heat.Add(impulseHeat)

			case input.KindForce:
				act.Damping = defaultDamping
				act.ForceX = ev.Direction.X * forceMag
				act.ForceY = ev.Direction.Y * forceMag
				heat.Add(forceHeat)
			}
		}
	}
}
