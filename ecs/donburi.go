// Package ecs provides ECS adapters for dragbox.
package ecs

import (
	"github.com/tidegames/dragbox"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for dragbox interaction
// events. Subscribe to this in your ECS systems to receive selection and
// drag transitions.
var InteractionEventType = events.NewEventType[dragbox.InteractionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Interaction
// events are published to InteractionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) dragbox.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event dragbox.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
