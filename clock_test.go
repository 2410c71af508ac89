package leipae

import (
	"testing"
	"time"
)

func TestFakeClockAdvance(t *testing.T) {
	base := time.Unix(100, 0)
	c := NewFakeClock(base)
	c.Advance(2 * time.Second)
	c.AdvanceSeconds(0.5)
	if got := c.Now().Sub(base); got != 2500*time.Millisecond {
		t.Errorf("elapsed = %v, want 2.5s", got)
	}
	c.Set(base)
	if !c.Now().Equal(base) {
		t.Errorf("Now() = %v, want %v", c.Now(), base)
	}
}

func TestClockStateTick(t *testing.T) {
	base := time.Unix(100, 0)
	c := newClockState(base)
	c.end = 10

	c.tick(base.Add(3 * time.Second))
	if c.time != 3 || c.dayTime != 3 || c.dt != 3 {
		t.Errorf("after tick: time=%v dayTime=%v dt=%v, want 3 3 3", c.time, c.dayTime, c.dt)
	}
	c.tick(base.Add(4 * time.Second))
	if c.dt != 1 {
		t.Errorf("dt = %v, want 1", c.dt)
	}
	if c.expired() {
		t.Error("expired at 4 of 10")
	}
	if got := c.remaining(); got != 6 {
		t.Errorf("remaining = %v, want 6", got)
	}
}

func TestClockStateBackwardsStepClamps(t *testing.T) {
	base := time.Unix(100, 0)
	c := newClockState(base)
	c.tick(base.Add(-time.Second))
	if c.dt != 0 || c.time != 0 || c.dayTime != 0 {
		t.Errorf("backwards step: time=%v dayTime=%v dt=%v, want zeros", c.time, c.dayTime, c.dt)
	}
}

func TestClockStateRebaseKeepsDayTime(t *testing.T) {
	base := time.Unix(100, 0)
	c := newClockState(base)
	c.tick(base.Add(5 * time.Second))
	c.rebaseScene(base.Add(5 * time.Second))
	c.tick(base.Add(7 * time.Second))
	if c.time != 2 {
		t.Errorf("time = %v, want 2", c.time)
	}
	if c.dayTime != 7 {
		t.Errorf("dayTime = %v, want 7", c.dayTime)
	}
}

func TestClockStateThaw(t *testing.T) {
	base := time.Unix(100, 0)
	c := newClockState(base)
	c.tick(base.Add(5 * time.Second))

	// Frozen for 60 seconds.
	resume := base.Add(65 * time.Second)
	c.thaw(resume)
	c.tick(resume.Add(time.Second))
	if c.time != 6 || c.dayTime != 6 {
		t.Errorf("after thaw: time=%v dayTime=%v, want 6 6", c.time, c.dayTime)
	}
	if c.dt != 1 {
		t.Errorf("dt = %v, want 1", c.dt)
	}
}

func TestClockStateSkipAhead(t *testing.T) {
	base := time.Unix(100, 0)
	c := newClockState(base)
	c.end = 10
	c.tick(base.Add(4 * time.Second))
	c.skipAhead(c.remaining())
	if c.dayTime != 10 {
		t.Errorf("dayTime = %v, want 10", c.dayTime)
	}
	c.tick(base.Add(5 * time.Second))
	if c.dayTime != 11 {
		t.Errorf("dayTime after tick = %v, want 11", c.dayTime)
	}
}

func TestRemainingNeverNegative(t *testing.T) {
	c := clockState{end: 5, time: 7}
	if got := c.remaining(); got != 0 {
		t.Errorf("remaining = %v, want 0", got)
	}
}
