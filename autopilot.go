package leipae

import (
	"encoding/json"
	"fmt"
)

// autopilotStep is a single command in an autopilot script.
type autopilotStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// autopilotScript is the top-level JSON structure of an autopilot script.
type autopilotScript struct {
	Steps []autopilotStep `json:"steps"`
}

var autopilotActions = map[string]bool{
	"pause":      true,
	"resume":     true,
	"toggle":     true,
	"reset":      true,
	"skip":       true,
	"screenshot": true,
	"wait":       true,
}

// Autopilot issues show commands across frames from a script, so a show
// can be driven unattended for recording or visual checks.
type Autopilot struct {
	steps     []autopilotStep
	cursor    int
	waitCount int
	done      bool
}

// LoadAutopilot parses a JSON autopilot script:
//
//	{"steps": [
//		{"action": "wait", "frames": 120},
//		{"action": "screenshot", "label": "intro"},
//		{"action": "skip"}
//	]}
func LoadAutopilot(jsonData []byte) (*Autopilot, error) {
	var script autopilotScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse autopilot: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse autopilot: no steps")
	}
	for i, st := range script.Steps {
		if !autopilotActions[st.Action] {
			return nil, fmt.Errorf("parse autopilot: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Autopilot{steps: script.Steps}, nil
}

// Done reports whether every step has been executed.
func (a *Autopilot) Done() bool {
	return a.done
}

// Step executes at most one command against d. Call it once per frame
// before Demo.Update. A screenshot step returns its label; the caller owns
// capturing the frame.
func (a *Autopilot) Step(d *Demo) (screenshot string) {
	if a.done {
		return ""
	}
	if a.waitCount > 0 {
		a.waitCount--
		return ""
	}
	if a.cursor >= len(a.steps) {
		a.done = true
		return ""
	}

	st := a.steps[a.cursor]
	a.cursor++

	switch st.Action {
	case "pause":
		d.Pause()
	case "resume":
		d.Resume()
	case "toggle":
		d.TogglePause()
	case "reset":
		d.Reset()
	case "skip":
		d.SkipToNext()
	case "screenshot":
		screenshot = st.Label
		if screenshot == "" {
			screenshot = d.Scene().String()
		}
	case "wait":
		if st.Frames > 0 {
			a.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if a.cursor >= len(a.steps) && a.waitCount == 0 {
		a.done = true
	}
	return screenshot
}
