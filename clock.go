package leipae

import "time"

// Clock is the single source of wall-clock time for a Demo.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host's monotonic wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// FakeClock is a manually driven Clock for tests and offline rendering.
// The zero value starts at the zero time.
type FakeClock struct {
	now time.Time
}

// NewFakeClock returns a FakeClock reading t.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

// Now returns the current fake instant.
func (c *FakeClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// AdvanceSeconds moves the clock forward by s seconds.
func (c *FakeClock) AdvanceSeconds(s float64) {
	c.Advance(time.Duration(s * float64(time.Second)))
}

// Set moves the clock to t.
func (c *FakeClock) Set(t time.Time) { c.now = t }

// clockState holds the time references of a running show. All derived
// values are in seconds.
type clockState struct {
	epoch    time.Time // reference for dayTime
	start    time.Time // reference for time
	lastTick time.Time // reference for dt

	end     float64 // duration budget of the current scene
	time    float64 // scene-local elapsed
	dayTime float64 // elapsed since epoch, survives scene changes
	dt      float64 // last frame delta
}

func newClockState(now time.Time) clockState {
	return clockState{epoch: now, start: now, lastTick: now}
}

// tick advances every derived value to now.
func (c *clockState) tick(now time.Time) {
	c.dt = seconds(now.Sub(c.lastTick))
	c.lastTick = now
	c.time = seconds(now.Sub(c.start))
	c.dayTime = seconds(now.Sub(c.epoch))
}

// expired reports whether the scene has used up its budget.
func (c *clockState) expired() bool {
	return c.time >= c.end
}

// remaining is the unspent part of the scene budget, never negative.
func (c *clockState) remaining() float64 {
	return max(c.end-c.time, 0)
}

// rebaseScene restarts the scene-local timer at now.
func (c *clockState) rebaseScene(now time.Time) {
	c.start = now
	c.time = 0
}

// thaw shifts the references so that elapsed values continue from where
// they froze instead of jumping by the paused interval.
func (c *clockState) thaw(now time.Time) {
	c.start = now.Add(-duration(c.time))
	c.epoch = now.Add(-duration(c.dayTime))
	c.lastTick = now
	c.dt = 0
}

// skipAhead moves the epoch back by s seconds so dayTime counts them as
// elapsed.
func (c *clockState) skipAhead(s float64) {
	c.epoch = c.epoch.Add(-duration(s))
	c.dayTime += s
}

// seconds converts d to seconds, clamping clock steps backwards to zero.
func seconds(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	return d.Seconds()
}

func duration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
