package player

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a host command bound to a key.
type Action uint8

const (
	ActionNone        Action = iota
	ActionQuit               // stop the host loop
	ActionTogglePause        // pause a running show, resume a paused one
	ActionPause              // pause the show
	ActionResume             // resume the show
	ActionReset              // restart the current scene's timeline
	ActionSkip               // jump to the next scene
	ActionReload             // recompile the shader from disk
	ActionFullscreen         // toggle borderless fullscreen
	ActionScreenshot         // save the next frame as PNG
	ActionOverlay            // toggle the debug overlay

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:        "none",
	ActionQuit:        "quit",
	ActionTogglePause: "toggle-pause",
	ActionPause:       "pause",
	ActionResume:      "resume",
	ActionReset:       "reset",
	ActionSkip:        "skip",
	ActionReload:      "reload",
	ActionFullscreen:  "fullscreen",
	ActionScreenshot:  "screenshot",
	ActionOverlay:     "overlay",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// KeyMap binds keys to actions.
type KeyMap map[ebiten.Key]Action

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ebiten.KeyEscape:     ActionQuit,
		ebiten.KeySpace:      ActionTogglePause,
		ebiten.KeyP:          ActionPause,
		ebiten.KeyC:          ActionResume,
		ebiten.KeyR:          ActionReset,
		ebiten.KeyN:          ActionSkip,
		ebiten.KeyArrowRight: ActionSkip,
		ebiten.KeyL:          ActionReload,
		ebiten.KeyF:          ActionFullscreen,
		ebiten.KeyF12:        ActionScreenshot,
		ebiten.KeyF3:         ActionOverlay,
	}
}

// pressed appends the actions whose keys went down this tick. Actions come
// out in declaration order whatever the key order, and an action bound to
// several keys is reported once.
func (m KeyMap) pressed(dst []Action) []Action {
	return m.collect(dst, inpututil.IsKeyJustPressed)
}

func (m KeyMap) collect(dst []Action, down func(ebiten.Key) bool) []Action {
	var hit [actionCount]bool
	for key, action := range m {
		if action < actionCount && down(key) {
			hit[action] = true
		}
	}
	for a := ActionNone + 1; a < actionCount; a++ {
		if hit[a] {
			dst = append(dst, a)
		}
	}
	return dst
}
