// Package ecs bridges thumbstick events into an ECS world.
//
// [NewDonburiSink] publishes every engage, move, and disengage event of a
// [thumbstick.Stick] into a [Donburi] world as a typed event. Subscribe to
// [StickEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	stick.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
