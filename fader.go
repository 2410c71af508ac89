package leipae

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultFadeDuration is the fade-in length after a scene change, in
// seconds.
const DefaultFadeDuration = 0.75

// SceneFader produces a 0→1 brightness ramp that restarts whenever the
// show enters a new scene. The renderer multiplies its output by Value.
//
// There is no global animation manager; call Update once per frame after
// Demo.Update.
type SceneFader struct {
	tween    *gween.Tween
	duration float32
	easeFn   ease.TweenFunc
	lastIdx  int
	value    float64
}

// NewSceneFader creates a fader with the given ramp length in seconds and
// easing function. A nil easeFn uses ease.OutQuad; a non-positive duration
// disables fading.
func NewSceneFader(duration float32, easeFn ease.TweenFunc) *SceneFader {
	if easeFn == nil {
		easeFn = ease.OutQuad
	}
	return &SceneFader{
		duration: duration,
		easeFn:   easeFn,
		lastIdx:  -1,
		value:    1,
	}
}

// Update restarts the ramp on a scene change and advances it by the
// demo's frame delta. It returns the current value.
func (f *SceneFader) Update(d *Demo) float64 {
	if f.duration <= 0 {
		f.value = 1
		return f.value
	}
	if idx := d.SceneIndex(); idx != f.lastIdx {
		f.lastIdx = idx
		f.tween = gween.New(0, 1, f.duration, f.easeFn)
		f.value = 0
	}
	if f.tween == nil {
		return f.value
	}
	val, done := f.tween.Update(float32(d.FrameDelta()))
	f.value = float64(val)
	if done {
		f.tween = nil
		f.value = 1
	}
	return f.value
}

// Value returns the last computed fade value in [0, 1].
func (f *SceneFader) Value() float64 {
	return f.value
}
