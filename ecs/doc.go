// Package ecs provides ECS adapters for dragbox's interaction event system.
//
// The primary adapter is [NewDonburiSink], which bridges dragbox interaction
// events (selection, drag start/move/end, collision) into a [Donburi] world
// as typed events. Subscribe to [InteractionEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	surface.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
