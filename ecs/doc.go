// Package ecs bridges a leipae show into a [Donburi] world.
//
// [NewDonburiSink] publishes scene transitions as typed events; subscribe to
// [SceneEventType] in your ECS systems to receive them. [Mirror] copies the
// show's per-frame state onto a singleton entity so systems can query it
// like any other component.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	mirror := ecs.NewMirror(world)
//	// each frame:
//	demo.Update()
//	demo.FlushEvents(sink)
//	mirror.Sync(demo)
//	ecs.SceneEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
