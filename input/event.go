// Package input defines the semantic action events the control step
// consumes, and the decoder that produces them from raw device state.
package input

import "math"

// Kind identifies a semantic input action.
type Kind uint8

const (
	KindImpulse Kind = iota
	KindForce
	KindStabilise
	KindAccelerate
)

// String returns the action name for logs and telemetry.
func (k Kind) String() string {
	switch k {
	case KindImpulse:
		return "impulse"
	case KindForce:
		return "force"
	case KindStabilise:
		return "stabilise"
	case KindAccelerate:
		return "accelerate"
	}
	return "unknown"
}

// Vec is a 2D direction vector.
type Vec struct {
	X, Y float32
}

// IsZero reports whether the vector is exactly zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector in the same direction.
// The zero vector stays zero.
func (v Vec) Normalize() Vec {
	mag := float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
	if mag == 0 {
		return Vec{}
	}
	return Vec{X: v.X / mag, Y: v.Y / mag}
}

// Event is one decoded action for the current tick. Events are transient:
// produced once per tick, consumed exactly once by the control step.
// Direction is a unit vector and is only meaningful for KindImpulse and
// KindForce; the producer never emits either with a zero direction.
type Event struct {
	Kind      Kind
	Direction Vec
}
