package components

// Heat tracks recent control-input intensity as a scalar in [0, 1].
// It only rises through energetic actions and only falls through
// stabilisation, so it is a pure function of the action stream.
type Heat struct {
	Amount float32
}

// Add shifts the heat by delta, clamping the result to [0, 1].
// Negative deltas decay heat.
func (h *Heat) Add(delta float32) {
	h.Amount += delta
	if h.Amount > 1 {
		h.Amount = 1
	}
	if h.Amount < 0 {
		h.Amount = 0
	}
}
