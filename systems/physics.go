package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/drift/components"
)

// Contact describes a collision resolved this tick, for the VFX layer.
type Contact struct {
	X, Y float32
}

// Arena is the closed rectangle the hulls bounce around in, centered on
// the origin.
type Arena struct {
	HalfWidth   float32
	HalfHeight  float32
	Restitution float32
}

// PhysicsSystem integrates actuation requests into motion and resolves
// arena collisions. It is the stand-in for a full rigid-body engine: the
// control step only writes the Actuation mailbox and never touches
// velocity or position directly.
type PhysicsSystem struct {
	filter  ecs.Filter3[components.Position, components.Velocity, components.Hull]
	actMap  *ecs.Map1[components.Actuation]
	posMap  *ecs.Map1[components.Position]
	velMap  *ecs.Map1[components.Velocity]
	hullMap *ecs.Map1[components.Hull]
	arena   Arena

	entities []ecs.Entity // scratch for pairwise collision pass
	contacts []Contact
}

// NewPhysicsSystem creates a physics system for the given world and arena.
func NewPhysicsSystem(w *ecs.World, arena Arena) *PhysicsSystem {
	return &PhysicsSystem{
		filter:  *ecs.NewFilter3[components.Position, components.Velocity, components.Hull](w),
		actMap:  ecs.NewMap1[components.Actuation](w),
		posMap:  ecs.NewMap1[components.Position](w),
		velMap:  ecs.NewMap1[components.Velocity](w),
		hullMap: ecs.NewMap1[components.Hull](w),
		arena:   arena,
	}
}

// SetRestitution updates the bounce factor, for live tuning.
func (s *PhysicsSystem) SetRestitution(e float32) {
	s.arena.Restitution = e
}

// Update advances every hull by dt and returns the contacts resolved
// this tick. The one-shot impulse request is consumed here: applied to
// velocity once, then zeroed.
func (s *PhysicsSystem) Update(dt float32) []Contact {
	s.entities = s.entities[:0]
	s.contacts = s.contacts[:0]

	query := s.filter.Query()
	for query.Next() {
		entity := query.Entity()
		pos, vel, hull := query.Get()

		if s.actMap.HasAll(entity) {
			act := s.actMap.Get(entity)
			// Consume the one-shot impulse (unit mass).
			vel.X += act.ImpulseX
			vel.Y += act.ImpulseY
			act.ImpulseX, act.ImpulseY = 0, 0

			// Integrate the persistent force for this tick.
			vel.X += act.ForceX * dt
			vel.Y += act.ForceY * dt

			// Linear damping, rapier-style.
			if act.Damping > 0 {
				factor := 1 / (1 + dt*act.Damping)
				vel.X *= factor
				vel.Y *= factor
			}
		}

		pos.X += vel.X * dt
		pos.Y += vel.Y * dt

		s.bounceOffWalls(pos, vel, hull.Radius)
		s.entities = append(s.entities, entity)
	}

	s.resolveHullContacts()

	return s.contacts
}

// bounceOffWalls reflects a hull off the arena borders with restitution.
func (s *PhysicsSystem) bounceOffWalls(pos *components.Position, vel *components.Velocity, radius float32) {
	e := s.arena.Restitution
	maxX := s.arena.HalfWidth - radius
	maxY := s.arena.HalfHeight - radius

	if pos.X < -maxX {
		pos.X = -maxX
		if vel.X < 0 {
			vel.X *= -e
			s.contacts = append(s.contacts, Contact{X: -s.arena.HalfWidth, Y: pos.Y})
		}
	}
	if pos.X > maxX {
		pos.X = maxX
		if vel.X > 0 {
			vel.X *= -e
			s.contacts = append(s.contacts, Contact{X: s.arena.HalfWidth, Y: pos.Y})
		}
	}
	if pos.Y < -maxY {
		pos.Y = -maxY
		if vel.Y < 0 {
			vel.Y *= -e
			s.contacts = append(s.contacts, Contact{X: pos.X, Y: -s.arena.HalfHeight})
		}
	}
	if pos.Y > maxY {
		pos.Y = maxY
		if vel.Y > 0 {
			vel.Y *= -e
			s.contacts = append(s.contacts, Contact{X: pos.X, Y: s.arena.HalfHeight})
		}
	}
}

// resolveHullContacts handles hull-vs-hull circle collisions with an
// equal-mass elastic response. The entity count is tiny, so the O(n^2)
// pass is fine.
func (s *PhysicsSystem) resolveHullContacts() {
	e := s.arena.Restitution

	for i := 0; i < len(s.entities); i++ {
		for j := i + 1; j < len(s.entities); j++ {
			posA := s.posMap.Get(s.entities[i])
			posB := s.posMap.Get(s.entities[j])
			velA := s.velMap.Get(s.entities[i])
			velB := s.velMap.Get(s.entities[j])
			radiusSum := s.hullMap.Get(s.entities[i]).Radius + s.hullMap.Get(s.entities[j]).Radius

			dx := posB.X - posA.X
			dy := posB.Y - posA.Y
			distSq := dx*dx + dy*dy
			if distSq >= radiusSum*radiusSum || distSq == 0 {
				continue
			}

			dist := float32(math.Sqrt(float64(distSq)))
			nx, ny := dx/dist, dy/dist

			// Separate overlapping hulls evenly along the normal.
			overlap := radiusSum - dist
			posA.X -= nx * overlap / 2
			posA.Y -= ny * overlap / 2
			posB.X += nx * overlap / 2
			posB.Y += ny * overlap / 2

			// Relative velocity along the normal; skip if already parting.
			rv := (velB.X-velA.X)*nx + (velB.Y-velA.Y)*ny
			if rv >= 0 {
				continue
			}

			// Equal-mass elastic impulse with restitution.
			impulse := -(1 + e) * rv / 2
			velA.X -= impulse * nx
			velA.Y -= impulse * ny
			velB.X += impulse * nx
			velB.Y += impulse * ny

			s.contacts = append(s.contacts, Contact{
				X: posA.X + nx*(dist/2),
				Y: posA.Y + ny*(dist/2),
			})
		}
	}
}
