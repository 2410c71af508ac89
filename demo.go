package leipae

import (
	"fmt"
	"math/rand/v2"
)

// Demo owns the whole show state: scene sequencing, timing, camera and
// target, and the particle population. It is driven from a single goroutine
// by calling Update once per frame; commands are issued from the same
// goroutine.
type Demo struct {
	clock  Clock
	rng    *rand.Rand
	script *Script

	scene    Scene
	sceneIdx int // -1 until the first transition when the order omits Init
	clk      clockState

	camera Vec3
	target Vec3
	leipae *ParticleSystem

	paused bool
	exit   bool

	// transitions since the last FlushEvents
	events []SceneEvent
}

// Option configures a Demo at construction.
type Option func(*Demo)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(d *Demo) { d.clock = c }
}

// WithRand sets the source used to place particles.
func WithRand(r *rand.Rand) Option {
	return func(d *Demo) { d.rng = r }
}

// NewDemo creates a show positioned on the Init scene with the clock epoch
// at the current instant. A nil script uses DefaultScript. The first Update
// leaves Init for the first playable scene; an order that does not start
// with Init begins on its first entry as if Init preceded it.
func NewDemo(script *Script, opts ...Option) (*Demo, error) {
	if script == nil {
		script = DefaultScript()
	}
	if err := script.Validate(); err != nil {
		return nil, fmt.Errorf("new demo: %w", err)
	}
	d := &Demo{
		clock:  SystemClock{},
		script: script,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.scene = SceneInit
	if script.Order[0] != SceneInit {
		d.sceneIdx = -1
	}
	d.leipae = NewParticleSystem(script.Leipae, d.rng)
	d.clk = newClockState(d.clock.Now())
	return d, nil
}

// Update advances the show by one frame: the clock moves to now, an
// expired scene hands over to the next one, the camera and target programs
// run at the scene-local time and the particles integrate by the frame
// delta. Update is a no-op while paused and after the show has ended.
func (d *Demo) Update() {
	if d.paused || d.exit {
		return
	}
	now := d.clock.Now()
	d.clk.tick(now)

	if d.clk.expired() {
		d.advance(now, CauseExpired)
		if d.exit {
			return
		}
	}

	d.camera = Camera(d.scene, d.camera, d.clk.time)
	d.target = Target(d.scene, d.target, d.clk.time)
	d.leipae.Update(d.clk.dt)
}

// Camera returns the current view position.
func (d *Demo) Camera() Vec3 { return d.camera }

// Target returns the current look-at position.
func (d *Demo) Target() Vec3 { return d.target }

// Leipae returns the particle uniform tuples (x, y, z, scale). The slice is
// reused across calls.
func (d *Demo) Leipae() [][4]float32 { return d.leipae.Uniforms() }

// Particles returns the particle system for read access.
func (d *Demo) Particles() *ParticleSystem { return d.leipae }

// DayTime returns the cumulative show time in seconds.
func (d *Demo) DayTime() float64 { return d.clk.dayTime }

// Time returns the elapsed time in the current scene in seconds.
func (d *Demo) Time() float64 { return d.clk.time }

// Duration returns the budget of the current scene in seconds.
func (d *Demo) Duration() float64 { return d.clk.end }

// FrameDelta returns the delta of the last Update in seconds. It reads zero
// while paused.
func (d *Demo) FrameDelta() float64 {
	if d.paused {
		return 0
	}
	return d.clk.dt
}

// Scene returns the current scene.
func (d *Demo) Scene() Scene { return d.scene }

// SceneIndex returns the position of the current scene in the order.
func (d *Demo) SceneIndex() int { return max(d.sceneIdx, 0) }

// Script returns the script the show runs.
func (d *Demo) Script() *Script { return d.script }

// ShouldExit reports whether the show reached its terminal scene.
func (d *Demo) ShouldExit() bool { return d.exit }

// IsPaused reports whether the show is paused.
func (d *Demo) IsPaused() bool { return d.paused }

// FlushEvents hands every transition queued since the last flush to sink
// in order. A nil sink discards them.
func (d *Demo) FlushEvents(sink EventSink) {
	if sink != nil {
		for _, e := range d.events {
			sink.EmitEvent(e)
		}
	}
	d.events = d.events[:0]
}
