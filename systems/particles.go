package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/drift/input"
)

// ParticleType identifies the type of effect particle.
type ParticleType uint8

const (
	ParticleBurst  ParticleType = iota // impulse / boost exhaust
	ParticlePuff                       // sustained thrust exhaust
	ParticleImpact                     // wall or hull contact
)

// EffectParticle represents one visual feedback particle, in arena units.
type EffectParticle struct {
	X, Y       float32
	VelX, VelY float32
	Life       int32
	MaxLife    int32
	Type       ParticleType
	Size       float32
}

// ParticleSystem manages the cosmetic effect particles. It is driven by
// the same event stream as the control step plus the physics contacts,
// and has no influence on the simulation.
type ParticleSystem struct {
	Particles    []EffectParticle
	maxParticles int
	burstCount   int
	puffCount    int
	rng          *rand.Rand
}

// NewParticleSystem creates a particle system with the given pool limits.
func NewParticleSystem(maxParticles, burstCount, puffCount int, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		Particles:    make([]EffectParticle, 0, maxParticles),
		maxParticles: maxParticles,
		burstCount:   burstCount,
		puffCount:    puffCount,
		rng:          rng,
	}
}

// HandleEvents emits the one-shot effects for this tick's events, at the
// player hull's position. Exhaust spawns behind the hull, opposite the
// commanded direction.
func (s *ParticleSystem) HandleEvents(events []input.Event, x, y, radius float32) {
	for _, ev := range events {
		switch ev.Kind {
		case input.KindImpulse:
			s.emitBurst(x-ev.Direction.X*radius, y-ev.Direction.Y*radius, ev.Direction)
		case input.KindAccelerate:
			s.emitBurst(x, y, input.Vec{})
		case input.KindForce:
			s.emitPuffs(x-ev.Direction.X*radius, y-ev.Direction.Y*radius, ev.Direction)
		}
	}
}

// EmitImpact emits an impact flash at a contact point.
func (s *ParticleSystem) EmitImpact(x, y float32) {
	for i := 0; i < s.puffCount*2; i++ {
		angle := s.rng.Float32() * 2 * math.Pi
		speed := 0.5 + s.rng.Float32()*1.5
		s.emit(EffectParticle{
			X: x, Y: y,
			VelX: float32(math.Cos(float64(angle))) * speed,
			VelY: float32(math.Sin(float64(angle))) * speed,
			Life: 10 + s.rng.Int31n(10),
			Type: ParticleImpact,
			Size: 1.5 + s.rng.Float32(),
		})
	}
}

// Update advances all particles by one tick.
func (s *ParticleSystem) Update(dt float32) {
	alive := 0
	for i := range s.Particles {
		p := &s.Particles[i]

		p.Life--
		if p.Life <= 0 {
			continue
		}

		// Drag
		p.VelX *= 0.92
		p.VelY *= 0.92

		p.X += p.VelX * dt
		p.Y += p.VelY * dt

		s.Particles[alive] = s.Particles[i]
		alive++
	}
	s.Particles = s.Particles[:alive]
}

// emitBurst spawns a radial burst, biased away from dir when non-zero.
func (s *ParticleSystem) emitBurst(x, y float32, dir input.Vec) {
	for i := 0; i < s.burstCount; i++ {
		angle := s.rng.Float32() * 2 * math.Pi
		speed := 1.0 + s.rng.Float32()*2.0
		velX := float32(math.Cos(float64(angle))) * speed
		velY := float32(math.Sin(float64(angle))) * speed
		velX -= dir.X * speed * 0.5
		velY -= dir.Y * speed * 0.5

		s.emit(EffectParticle{
			X: x, Y: y,
			VelX: velX, VelY: velY,
			Life: 20 + s.rng.Int31n(15),
			Type: ParticleBurst,
			Size: 2 + s.rng.Float32()*2,
		})
	}
}

// emitPuffs spawns a few thruster particles drifting against dir.
func (s *ParticleSystem) emitPuffs(x, y float32, dir input.Vec) {
	for i := 0; i < s.puffCount; i++ {
		jitterX := (s.rng.Float32() - 0.5) * 0.6
		jitterY := (s.rng.Float32() - 0.5) * 0.6
		s.emit(EffectParticle{
			X: x, Y: y,
			VelX: -dir.X*1.2 + jitterX,
			VelY: -dir.Y*1.2 + jitterY,
			Life: 12 + s.rng.Int31n(10),
			Type: ParticlePuff,
			Size: 1 + s.rng.Float32(),
		})
	}
}

func (s *ParticleSystem) emit(p EffectParticle) {
	if len(s.Particles) >= s.maxParticles {
		return
	}
	p.MaxLife = p.Life
	s.Particles = append(s.Particles, p)
}
