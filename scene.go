package leipae

import (
	"fmt"
	"strings"
)

// Scene identifies a timed segment of the show.
type Scene uint8

const (
	SceneInit            Scene = iota // pass-through entry state, zero duration
	SceneIntro                        // wide orbit around the origin
	SceneCloseup                      // slow orbit close to the origin
	SceneMovingForward                // dolly forward along -Z
	SceneTopToForward                 // descend while looking forward
	SceneForwardToTop                 // rise while looking forward
	SceneMovingUp                     // crane straight up
	SceneBackwardsCircle              // reverse arc with a tracking target
	SceneEnding                       // terminal; sets the exit flag

	sceneCount
)

var sceneNames = [sceneCount]string{
	SceneInit:            "init",
	SceneIntro:           "intro",
	SceneCloseup:         "closeup",
	SceneMovingForward:   "moving-forward",
	SceneTopToForward:    "top-to-forward",
	SceneForwardToTop:    "forward-to-top",
	SceneMovingUp:        "moving-up",
	SceneBackwardsCircle: "backwards-circle",
	SceneEnding:          "ending",
}

// String returns the script name of the scene.
func (s Scene) String() string {
	if s < sceneCount {
		return sceneNames[s]
	}
	return fmt.Sprintf("scene(%d)", uint8(s))
}

// Playable reports whether the scene has a duration and motion program.
func (s Scene) Playable() bool {
	return s > SceneInit && s < SceneEnding
}

// ParseScene returns the Scene with the given script name. Matching ignores
// case and accepts underscores in place of dashes.
func ParseScene(name string) (Scene, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, sn := range sceneNames {
		if sn == n {
			return Scene(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// Scenes returns every scene tag in declaration order.
func Scenes() []Scene {
	out := make([]Scene, sceneCount)
	for i := range out {
		out[i] = Scene(i)
	}
	return out
}

// Cause records why a scene transition happened.
type Cause uint8

const (
	CauseExpired Cause = iota // the scene used up its duration
	CauseSkipped              // SkipToNext was called
)

func (c Cause) String() string {
	switch c {
	case CauseExpired:
		return "expired"
	case CauseSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("cause(%d)", uint8(c))
	}
}

// SceneEvent describes one completed transition.
type SceneEvent struct {
	From    Scene
	To      Scene
	Index   int     // position of To in the scene order
	DayTime float64 // cumulative show time at the transition
	Cause   Cause
}

// EventSink receives scene events flushed from a Demo.
type EventSink interface {
	EmitEvent(event SceneEvent)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(SceneEvent)

// EmitEvent calls f(event).
func (f EventSinkFunc) EmitEvent(event SceneEvent) { f(event) }
