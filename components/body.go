package components

// Hull holds the physical properties of a body in the arena.
type Hull struct {
	Radius float32 // collision radius, arena units
}

// Actuation is the per-body mailbox written by the control step and
// consumed by the physics integrator each tick.
//
// ImpulseX/Y is a one-shot request: the integrator applies it once and
// zeroes it. ForceX/Y persists for the tick it was requested and is
// cleared by the control step at the start of the next tick, so thrust
// stops the moment its input does.
type Actuation struct {
	Damping            float32 // linear damping coefficient
	ImpulseX, ImpulseY float32 // one-shot impulse request
	ForceX, ForceY     float32 // persistent force request
	Cooldown           Cooldown
}
