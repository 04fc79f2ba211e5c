package ecs

import (
	"github.com/phanxgames/thumbstick"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StickEventType is the Donburi event type for thumbstick events.
var StickEventType = events.NewEventType[thumbstick.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on StickEventType and delivered by ProcessEvents, so ECS systems see
// them on their own schedule rather than inside Stick.Update.
func NewDonburiSink(world donburi.World) thumbstick.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event thumbstick.Event) {
	StickEventType.Publish(s.world, event)
}
