// Package affine models elementary 2D transform operations and animates
// between them.
//
// An [Operation] is one translate, rotate, scale, skew, raw [Matrix] or
// identity transform. Operations are immutable values whose matrix is baked at
// construction:
//
//	op := affine.NewRotate(math.Pi / 4)
//	m := op.Matrix()
//	opts := &ebiten.DrawImageOptions{GeoM: op.GeoM()}
//
// # Interpolation
//
// [TryInterpolate] blends two operations at a progress fraction. Either side
// may be nil, meaning "no transform":
//
//	from := affine.NewScale(2, 2)
//	frame, err := affine.TryInterpolate(&from, nil, 0.5) // scale(1.5, 1.5)
//
// Operations of the same kind blend their parameters directly. Mixed kinds
// and raw matrices fall back to decomposing both matrices into translation,
// rotation, scale and skew ([TryDecompose]), blending those
// ([InterpolateDecomposed]) and recomposing ([Compose]). That path is the only
// one that can fail: a singular matrix yields a [*DecompositionError].
//
// Progress is never clamped; values outside [0, 1] extrapolate.
//
// # Animations
//
// [Animation] drives interpolation from a [gween] tween, so any gween easing
// function can shape the progress. Animations can also be declared in YAML and
// loaded with [LoadAnimations]:
//
//	animations:
//	  - name: spin-in
//	    from: {rotate: -90deg}
//	    to: {rotate: 0}
//	    duration: 0.8
//	    ease: outBack
//
// For ECS integration see the [Donburi] adapter in affine/ecs.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package affine
