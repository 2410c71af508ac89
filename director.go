package leipae

import "time"

// advance moves to the next scene in the order and runs its entry action.
// Init passes straight through to the scene after it.
func (d *Demo) advance(now time.Time, cause Cause) {
	from := d.scene
	for {
		d.sceneIdx = (d.sceneIdx + 1) % len(d.script.Order)
		d.scene = d.script.Order[d.sceneIdx]
		if !d.enter(now) {
			break
		}
	}
	d.events = append(d.events, SceneEvent{
		From:    from,
		To:      d.scene,
		Index:   d.sceneIdx,
		DayTime: d.clk.dayTime,
		Cause:   cause,
	})
}

// enter runs the entry action of the current scene. It reports true when
// the scene is a pass-through and the director must advance again.
// Validate guarantees a playable scene in the order, so the chain ends.
func (d *Demo) enter(now time.Time) (passThrough bool) {
	d.clk.rebaseScene(now)
	switch d.scene {
	case SceneInit:
		d.clk.end = 0
		return true
	case SceneEnding:
		d.clk.end = 0
		d.exit = true
		return false
	}
	spec := d.script.Scenes[d.scene]
	d.clk.end = spec.Duration
	if spec.Target != nil {
		d.target = *spec.Target
	}
	return false
}

// Pause freezes the show. Update does nothing until Resume.
func (d *Demo) Pause() {
	d.paused = true
}

// Resume continues a paused show from the instant it froze: neither the
// scene-local time nor the day time jumps by the paused interval.
func (d *Demo) Resume() {
	if !d.paused {
		return
	}
	d.paused = false
	d.clk.thaw(d.clock.Now())
}

// TogglePause pauses a running show and resumes a paused one.
func (d *Demo) TogglePause() {
	if d.paused {
		d.Resume()
	} else {
		d.Pause()
	}
}

// Reset restarts the current scene's timeline. The scene, its index and
// the day time are kept.
func (d *Demo) Reset() {
	if d.exit {
		return
	}
	d.clk.rebaseScene(d.clock.Now())
}

// SkipToNext ends the current scene immediately. The unplayed remainder of
// the scene is added to the day time first, so the show's total length is
// the same as if the scene had played out.
func (d *Demo) SkipToNext() {
	if d.exit {
		return
	}
	now := d.clock.Now()
	if !d.paused {
		// Count the time since the last frame as played, not skipped.
		d.clk.time = seconds(now.Sub(d.clk.start))
		d.clk.dayTime = seconds(now.Sub(d.clk.epoch))
	}
	d.clk.skipAhead(d.clk.remaining())
	d.advance(now, CauseSkipped)
}
