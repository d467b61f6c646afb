package components

// Position represents an entity's world position, in arena units.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's linear velocity, in arena units per second.
type Velocity struct {
	X, Y float32
}
