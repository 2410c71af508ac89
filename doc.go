// Package leipae is the core of a timed shader show: a fixed sequence of
// scenes, each with a duration and a camera/target motion program, and a
// population of falling particles ("leipae") fed to a fragment shader.
//
// The core owns no window, GPU or input state. A host loop constructs a
// [Demo], calls [Demo.Update] once per frame and reads the renderer inputs:
//
//	demo, err := leipae.NewDemo(leipae.DefaultScript())
//	if err != nil {
//		log.Fatal(err)
//	}
//	for !demo.ShouldExit() {
//		demo.Update()
//		render(demo.Camera(), demo.Target(), demo.Leipae(), demo.DayTime())
//	}
//
// The ebiten host lives in the player package; cmd/leipae wires it up.
//
// # Scenes
//
// A [Script] lists the scene order and per-scene durations. [SceneInit]
// passes straight through to the first playable scene; [SceneEnding] sets
// the exit flag and freezes camera and target. The order wraps when it has
// no Ending.
//
// # Time
//
// All timing is wall-clock based through an injected [Clock]. Three
// readings matter to callers: [Demo.Time] (scene-local elapsed),
// [Demo.DayTime] (cumulative show time, the shader's animation time) and
// [Demo.FrameDelta]. Pause, Resume, Reset and SkipToNext keep these
// continuous: a skip adds the unplayed remainder of the scene to the day
// time so the show's total length never changes.
//
// # Events
//
// Update performs no I/O. Transitions are queued as [SceneEvent] values and
// handed to an [EventSink] by [Demo.FlushEvents]; the ecs module adapts
// them onto a Donburi world.
package leipae
