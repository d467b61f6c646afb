package components

// Cooldown is a restartable countdown gating a repeatable action.
//
// A freshly constructed cooldown reports ready, so the gated action is
// available immediately at spawn without an initial charge tick.
type Cooldown struct {
	Duration float32 // seconds
	Elapsed  float32 // seconds since last Start, saturates at Duration
}

// NewCooldown returns a cooldown with the given duration, already ready.
func NewCooldown(seconds float32) Cooldown {
	return Cooldown{Duration: seconds, Elapsed: seconds}
}

// Start begins (or restarts) the countdown.
func (c *Cooldown) Start() {
	c.Elapsed = 0
}

// Tick advances the countdown by dt and returns the updated readiness.
// Elapsed saturates at Duration; ticking a finished cooldown is a no-op.
func (c *Cooldown) Tick(dt float32) bool {
	c.Elapsed += dt
	if c.Elapsed > c.Duration {
		c.Elapsed = c.Duration
	}
	return c.Ready()
}

// Ready reports whether the countdown has run out.
func (c *Cooldown) Ready() bool {
	return c.Elapsed >= c.Duration
}
