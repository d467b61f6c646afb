package input

// State is the raw device snapshot for one tick, merged across keyboard
// and gamepad by the host before decoding. MoveX/MoveY are the vector
// sum of all held directional inputs (keyboard contributes +-1 per axis,
// an analog stick contributes its deflection), so opposing keys cancel
// to zero before normalisation.
type State struct {
	MoveX, MoveY float32
	Charge       bool // charge gesture held (space / south button)
	Boost        bool // boost trigger held
}

// Direction returns the normalised movement direction, or zero when no
// net direction is held.
func (s State) Direction() Vec {
	return Vec{X: s.MoveX, Y: s.MoveY}.Normalize()
}

// Decoder turns consecutive raw snapshots into the per-tick event
// sequence. It is pure edge-comparison logic: press and release edges
// come from the previous snapshot, continuous thrust from the current
// one. The host calls Decode exactly once per tick.
type Decoder struct {
	prev State
}

// Decode produces this tick's events, in emission order:
//
//  1. Accelerate on boost press.
//  2. Stabilise on charge press.
//  3. Impulse on charge release, aimed at the direction held at release;
//     suppressed when no direction is held.
//  4. Force every tick a direction is held outside the charge gesture;
//     suppressed when opposing inputs cancel out.
func (d *Decoder) Decode(curr State) []Event {
	var events []Event

	if curr.Boost && !d.prev.Boost {
		events = append(events, Event{Kind: KindAccelerate})
	}
	if curr.Charge && !d.prev.Charge {
		events = append(events, Event{Kind: KindStabilise})
	}
	if !curr.Charge && d.prev.Charge {
		if dir := curr.Direction(); !dir.IsZero() {
			events = append(events, Event{Kind: KindImpulse, Direction: dir})
		}
	}
	if !curr.Charge {
		if dir := curr.Direction(); !dir.IsZero() {
			events = append(events, Event{Kind: KindForce, Direction: dir})
		}
	}

	d.prev = curr
	return events
}

// Reset clears the remembered snapshot, e.g. when input focus is lost,
// so stale held state cannot produce phantom release edges.
func (d *Decoder) Reset() {
	d.prev = State{}
}
