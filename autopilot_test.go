package leipae

import "testing"

func TestLoadAutopilot(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "skip"},
			{"action": "wait", "frames": 3},
			{"action": "pause"}
		]
	}`)

	pilot, err := LoadAutopilot(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pilot.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(pilot.steps))
	}
	if pilot.steps[0].Action != "screenshot" || pilot.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if pilot.steps[2].Action != "wait" || pilot.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadAutopilot_Invalid(t *testing.T) {
	_, err := LoadAutopilot([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadAutopilot_Empty(t *testing.T) {
	_, err := LoadAutopilot([]byte(`{"steps": []}`))
	if err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadAutopilot_UnknownAction(t *testing.T) {
	_, err := LoadAutopilot([]byte(`{"steps": [{"action": "click"}]}`))
	if err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestAutopilotStep_Commands(t *testing.T) {
	d, clock := newTestDemo(t, nil)
	d.Update()
	clock.AdvanceSeconds(2)
	d.Update()

	pilot, err := LoadAutopilot([]byte(`{"steps": [
		{"action": "pause"},
		{"action": "resume"},
		{"action": "toggle"},
		{"action": "toggle"},
		{"action": "skip"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	pilot.Step(d)
	if !d.IsPaused() {
		t.Error("pause step should pause")
	}
	pilot.Step(d)
	if d.IsPaused() {
		t.Error("resume step should resume")
	}
	pilot.Step(d)
	if !d.IsPaused() {
		t.Error("first toggle should pause")
	}
	pilot.Step(d)
	if d.IsPaused() {
		t.Error("second toggle should resume")
	}
	pilot.Step(d)
	if d.Scene() != SceneForwardToTop {
		t.Errorf("skip step: scene = %v, want forward-to-top", d.Scene())
	}
	if !pilot.Done() {
		t.Error("pilot should be done after the last step")
	}
}

func TestAutopilotStep_Screenshot(t *testing.T) {
	d, _ := newTestDemo(t, nil)
	d.Update()

	pilot, err := LoadAutopilot([]byte(`{"steps": [
		{"action": "screenshot", "label": "first"},
		{"action": "screenshot"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := pilot.Step(d); got != "first" {
		t.Errorf("label = %q, want %q", got, "first")
	}
	if got := pilot.Step(d); got != "moving-forward" {
		t.Errorf("label = %q, want scene name", got)
	}
}

func TestAutopilotStep_Wait(t *testing.T) {
	d, _ := newTestDemo(t, nil)
	pilot, err := LoadAutopilot([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "skip"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	// Frame 1 starts the wait, frames 2 and 3 are consumed.
	for i := 0; i < 3; i++ {
		pilot.Step(d)
		if d.Scene() != SceneInit {
			t.Fatalf("frame %d: skipped during wait", i+1)
		}
	}
	pilot.Step(d)
	if d.Scene() != SceneMovingForward {
		t.Errorf("scene = %v after wait, want moving-forward", d.Scene())
	}
}

func TestAutopilotDone(t *testing.T) {
	d, _ := newTestDemo(t, nil)
	pilot, err := LoadAutopilot([]byte(`{"steps": [{"action": "wait", "frames": 2}]}`))
	if err != nil {
		t.Fatal(err)
	}
	pilot.Step(d)
	if pilot.Done() {
		t.Error("pilot should not be done while waiting")
	}
	pilot.Step(d)
	pilot.Step(d)
	if !pilot.Done() {
		t.Error("pilot should be done after the wait ends")
	}
	if got := pilot.Step(d); got != "" {
		t.Errorf("done pilot returned %q", got)
	}
}
