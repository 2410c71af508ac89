package leipae

import "math"

// Camera returns the camera position of scene s after t seconds in the
// scene. prev is the position from the previous frame; scenes without a
// camera program return it unchanged.
func Camera(s Scene, prev Vec3, t float64) Vec3 {
	switch s {
	case SceneIntro:
		return Vec3{-20 * math.Cos(t/20), 2, 30 * math.Sin(t/20)}
	case SceneCloseup:
		return Vec3{5 * math.Cos(t/40), 2, 4 * math.Sin(t/40)}
	case SceneTopToForward:
		return Vec3{0, 3 - t/10, -t / 10}
	case SceneForwardToTop:
		return Vec3{0, 1.5 + t/10, -2 + t/10}
	case SceneMovingForward:
		return Vec3{3, 1.1, -20 * (t / 15)}
	case SceneMovingUp:
		return Vec3{3, 0.9 + t/10, 0}
	case SceneBackwardsCircle:
		return Vec3{10 - 10*math.Sin(t/20), 2, -10 * math.Cos(t/20)}
	default: // Init, Ending
		return prev
	}
}

// Target returns the look-at position of scene s after t seconds in the
// scene. Scenes whose target is fixed at entry return prev.
func Target(s Scene, prev Vec3, t float64) Vec3 {
	switch s {
	case SceneIntro:
		return Vec3{0, 2 * math.Sin(t/10), 0}
	case SceneTopToForward:
		return Vec3{0, 0, -1 - t}
	case SceneForwardToTop:
		return Vec3{0, 0, -20 + t}
	case SceneBackwardsCircle:
		return Vec3{-10 + t, 2, -100}
	case SceneCloseup, SceneMovingForward, SceneMovingUp:
		// fixed at scene entry
		return prev
	default: // Init, Ending
		return prev
	}
}
