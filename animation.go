package affine

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation blends between two operations over time. A gween tween drives the
// progress from 0 to 1 with the given easing; each Update interpolates the
// endpoints at that progress. Easing functions that overshoot (elastic, back)
// extrapolate past the endpoints rather than being clamped.
//
// If interpolation fails (an endpoint matrix cannot be decomposed) the
// animation holds its last valid frame, records the error in Err and keeps
// advancing its clock, so Done still becomes true after the duration.
//
// There is no global animation manager: users call Update themselves.
type Animation struct {
	Name string
	// Debug enables an [affine] warning on stderr when the animation starts
	// holding a frame. A run of failing frames warns once.
	Debug bool
	Done  bool

	from, to *Operation
	tween    *gween.Tween
	current  Operation
	err      error
	warned   bool
}

// NewAnimation creates an animation from from to to over duration seconds.
// Either endpoint may be nil (identity). The first frame (progress 0) is
// computed immediately.
func NewAnimation(from, to *Operation, duration float32, fn ease.TweenFunc) *Animation {
	a := &Animation{
		from:  cloneOperation(from),
		to:    cloneOperation(to),
		tween: gween.New(0, 1, duration, fn),
	}
	a.apply(0)
	return a
}

// Update advances the animation by dt seconds and recomputes the current frame.
func (a *Animation) Update(dt float32) {
	if a.Done {
		return
	}
	progress, finished := a.tween.Update(dt)
	a.apply(float64(progress))
	a.Done = finished
}

// Seek jumps to t seconds from the start and recomputes the current frame.
func (a *Animation) Seek(t float32) {
	progress, finished := a.tween.Set(t)
	a.apply(float64(progress))
	a.Done = finished
}

// Reset rewinds the animation to its first frame.
func (a *Animation) Reset() {
	a.tween.Reset()
	a.Done = false
	a.err = nil
	a.warned = false
	a.current = Operation{}
	a.apply(0)
}

// Current returns the most recent successfully interpolated operation.
func (a *Animation) Current() Operation {
	return a.current
}

// Err returns the interpolation error of the most recent frame, or nil.
func (a *Animation) Err() error {
	return a.err
}

// From returns the start operation, or nil when it is absent.
func (a *Animation) From() *Operation {
	return cloneOperation(a.from)
}

// To returns the end operation, or nil when it is absent.
func (a *Animation) To() *Operation {
	return cloneOperation(a.to)
}

func (a *Animation) apply(progress float64) {
	op, err := TryInterpolate(a.from, a.to, progress)
	if err != nil {
		a.err = err
		a.debugHold(err)
		return
	}
	a.current = op
	a.err = nil
	a.warned = false
}

func cloneOperation(op *Operation) *Operation {
	if op == nil {
		return nil
	}
	c := *op
	return &c
}
