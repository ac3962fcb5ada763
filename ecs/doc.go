// Package ecs provides ECS adapters for affine animations.
//
// The primary adapter targets [Donburi]: attach an [affine.Animation] to an
// entity with [AddAnimation] and advance every animated entity once per tick
// with [UpdateAnimations]. Each update publishes a [FrameEvent] (or a
// [FailureEvent] when the frame had to be held) that systems consume with
// events.Subscribe and ProcessEvents.
//
// Usage:
//
//	world := donburi.NewWorld()
//	ecs.AddAnimation(world, affine.NewAnimation(&from, &to, 1, ease.OutBack))
//
//	// each tick
//	ecs.UpdateAnimations(world, dt)
//	ecs.FrameEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
