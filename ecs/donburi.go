package ecs

import (
	"github.com/phanxgames/affine"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// AnimationData is the component payload of an animated entity.
type AnimationData struct {
	Animation *affine.Animation
	// Frame is the operation produced by the most recent update.
	Frame affine.Operation
}

// Animation is the Donburi component type holding an entity's animation.
var Animation = donburi.NewComponentType[AnimationData]()

// FrameEvent is published for every entity whose animation produced a frame.
type FrameEvent struct {
	Entity donburi.Entity
	Frame  affine.Operation
	Done   bool
}

// FailureEvent is published when an entity's animation could not interpolate
// and is holding its previous frame.
type FailureEvent struct {
	Entity donburi.Entity
	Name   string
	Err    error
}

// FrameEventType is the Donburi event type for animation frames.
var FrameEventType = events.NewEventType[FrameEvent]()

// FailureEventType is the Donburi event type for held animation frames.
var FailureEventType = events.NewEventType[FailureEvent]()

var animationQuery = donburi.NewQuery(filter.Contains(Animation))

// AddAnimation creates an entity carrying a and returns it.
func AddAnimation(world donburi.World, a *affine.Animation) donburi.Entity {
	entity := world.Create(Animation)
	Animation.SetValue(world.Entry(entity), AnimationData{
		Animation: a,
		Frame:     a.Current(),
	})
	return entity
}

// UpdateAnimations advances every unfinished animation in world by dt seconds
// and publishes one FrameEvent or FailureEvent per advanced entity. Finished
// animations are left untouched; remove their entities when no longer needed.
func UpdateAnimations(world donburi.World, dt float32) {
	animationQuery.Each(world, func(entry *donburi.Entry) {
		data := Animation.Get(entry)
		if data.Animation == nil || data.Animation.Done {
			return
		}
		data.Animation.Update(dt)
		data.Frame = data.Animation.Current()

		if err := data.Animation.Err(); err != nil {
			FailureEventType.Publish(world, FailureEvent{
				Entity: entry.Entity(),
				Name:   data.Animation.Name,
				Err:    err,
			})
			return
		}
		FrameEventType.Publish(world, FrameEvent{
			Entity: entry.Entity(),
			Frame:  data.Frame,
			Done:   data.Animation.Done,
		})
	})
}
