package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/sparkle"
)

// LifecycleEventType is the Donburi event type for sparkle lifecycle events.
// Subscribe to this in your ECS systems to learn when particles and emitters
// join or leave a System.
var LifecycleEventType = events.NewEventType[sparkle.LifecycleEvent]()

type donburiObserver struct {
	world donburi.World
}

// NewDonburiObserver creates an Observer backed by a Donburi world.
// Lifecycle events are published to LifecycleEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiObserver(world donburi.World) sparkle.Observer {
	return &donburiObserver{world: world}
}

func (o *donburiObserver) EmitEvent(event sparkle.LifecycleEvent) {
	LifecycleEventType.Publish(o.world, event)
}
