package ecs

import (
	"github.com/Cadiac/leipae"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventType is the Donburi event type for leipae scene transitions.
var SceneEventType = events.NewEventType[leipae.SceneEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to SceneEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) leipae.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event leipae.SceneEvent) {
	SceneEventType.Publish(s.world, event)
}

// ShowState is the per-frame snapshot Mirror writes.
type ShowState struct {
	Scene      leipae.Scene
	SceneIndex int
	Time       float64
	DayTime    float64
	Camera     leipae.Vec3
	Target     leipae.Vec3
	Paused     bool
	Exit       bool
}

// ShowStateComponent holds the ShowState of the mirrored show.
var ShowStateComponent = donburi.NewComponentType[ShowState]()

// Mirror keeps a singleton entity's ShowState in step with a Demo.
type Mirror struct {
	world  donburi.World
	entity donburi.Entity
}

// NewMirror creates the singleton entity in world.
func NewMirror(world donburi.World) *Mirror {
	return &Mirror{
		world:  world,
		entity: world.Create(ShowStateComponent),
	}
}

// Entity returns the mirrored entity.
func (m *Mirror) Entity() donburi.Entity {
	return m.entity
}

// Sync copies d's current state onto the entity.
func (m *Mirror) Sync(d *leipae.Demo) {
	entry := m.world.Entry(m.entity)
	ShowStateComponent.SetValue(entry, ShowState{
		Scene:      d.Scene(),
		SceneIndex: d.SceneIndex(),
		Time:       d.Time(),
		DayTime:    d.DayTime(),
		Camera:     d.Camera(),
		Target:     d.Target(),
		Paused:     d.IsPaused(),
		Exit:       d.ShouldExit(),
	})
}
