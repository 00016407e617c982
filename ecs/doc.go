// Package ecs provides ECS adapters for sparkle's lifecycle events.
//
// The primary adapter is [NewDonburiObserver], which forwards entity
// membership changes (added, removed, pruned) into a [Donburi] world as
// typed events. Subscribe to [LifecycleEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	observer := ecs.NewDonburiObserver(world)
//	sys.SetObserver(observer)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
