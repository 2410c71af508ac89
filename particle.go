package leipae

import "math/rand/v2"

// Particle motion constants.
const (
	// LeipaeGravity is the constant vertical acceleration.
	LeipaeGravity = -0.25
	// LeipaeFloor is the height below which a particle is recycled.
	LeipaeFloor = -2.5
	// LeipaeCeiling is the height a recycled particle restarts from.
	LeipaeCeiling = 15.0
)

// DefaultLeipaeCount is the particle count of the stock show. It must match
// the uniform array length the renderer declares.
const DefaultLeipaeCount = 10

// Particle is one falling leipä. X, Z and Scale never change after
// construction; Y and V are integrated every frame.
type Particle struct {
	X, Y, Z float64
	V       float64 // vertical velocity
	Scale   float64
}

// ParticleSystem integrates a fixed population of particles and recycles
// them in place. Particles are never created or destroyed after
// construction.
type ParticleSystem struct {
	particles []Particle
	// persistent uniform buffer, refilled by Uniforms
	uniforms [][4]float32
}

// NewParticleSystem builds the population described by spec. When spec
// carries seeds they are used verbatim; otherwise positions are drawn from
// the spawn ranges and scales cycle through 1..5.
func NewParticleSystem(spec LeipaeSpec, rng *rand.Rand) *ParticleSystem {
	n := spec.Count
	if n <= 0 {
		n = DefaultLeipaeCount
	}
	ps := &ParticleSystem{
		particles: make([]Particle, n),
		uniforms:  make([][4]float32, n),
	}
	for i := range ps.particles {
		p := &ps.particles[i]
		if i < len(spec.Seeds) {
			*p = spec.Seeds[i]
			p.V = 0
			continue
		}
		p.X = spec.X.Random(rng)
		p.Y = spec.Y.Random(rng)
		p.Z = spec.Z.Random(rng)
		p.Scale = float64(i%5 + 1)
	}
	return ps
}

// Len returns the fixed particle count.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// At returns a copy of particle i.
func (ps *ParticleSystem) At(i int) Particle {
	return ps.particles[i]
}

// Update advances every particle by dt seconds under constant gravity.
// A particle that would fall below LeipaeFloor restarts at LeipaeCeiling
// at rest. Negative dt is treated as zero; a zero step still recycles
// particles already below the floor.
func (ps *ParticleSystem) Update(dt float64) {
	dt = max(dt, 0)
	const a = LeipaeGravity
	for i := range ps.particles {
		p := &ps.particles[i]
		y := p.Y + p.V*dt + 0.5*a*dt*dt
		if y < LeipaeFloor {
			p.Y = LeipaeCeiling
			p.V = 0
			continue
		}
		p.Y = y
		p.V += a * dt
	}
}

// Uniforms returns the (x, y, z, scale) tuples in particle order. The slice
// is reused and is valid until the next call.
func (ps *ParticleSystem) Uniforms() [][4]float32 {
	for i, p := range ps.particles {
		ps.uniforms[i] = [4]float32{float32(p.X), float32(p.Y), float32(p.Z), float32(p.Scale)}
	}
	return ps.uniforms
}

// AppendFlat appends the uniform tuples to dst as a flat float32 list, the
// layout a vec4 array uniform expects.
func (ps *ParticleSystem) AppendFlat(dst []float32) []float32 {
	for _, p := range ps.particles {
		dst = append(dst, float32(p.X), float32(p.Y), float32(p.Z), float32(p.Scale))
	}
	return dst
}
