package affine

import "math"

// Decomposed holds the components of an affine matrix. Recomposing them with
// Compose applies Scale first, then Skew, then Rotation, then Translation.
type Decomposed struct {
	Translation Vec2
	Rotation    float64 // radians
	Scale       Vec2
	Skew        Vec2 // radians
}

// decomposeTolerance bounds how close to parallel a matrix's columns may be.
// It is compared against |det| / (|col0| * |col1|), the sine of the angle
// between them, so uniformly tiny or huge matrices still decompose.
const decomposeTolerance = 1e-12

// TryDecompose splits m into translation, rotation, scale and skew. It returns
// false when m is degenerate (its columns are parallel or zero), contains NaN
// or infinite elements, or is so large that its components overflow; no
// partial result is produced in that case.
//
// The decomposition is canonical: Scale.X is always positive, a reflection is
// carried by a negative Scale.Y, and the whole shear ends up in Skew.X with
// Skew.Y = 0.
func TryDecompose(m Matrix) (Decomposed, bool) {
	if !m.isFinite() {
		return Decomposed{}, false
	}
	det := m.Determinant()
	sx := math.Hypot(m[0], m[1])
	if math.IsInf(det, 0) || math.Abs(det) <= decomposeTolerance*sx*math.Hypot(m[2], m[3]) {
		return Decomposed{}, false
	}

	// First column is Scale.X along the rotated X axis.
	angle := math.Atan2(m[1], m[0])
	sin, cos := math.Sincos(angle)

	// Second column is Scale.Y * (tan(skew) * u + u⊥) where u = (cos, sin).
	sy := det / sx
	shear := (m[2]*cos + m[3]*sin) / sy
	if !finite(sx) || !finite(sy) || !finite(shear) {
		return Decomposed{}, false
	}

	return Decomposed{
		Translation: Vec2{X: m[4], Y: m[5]},
		Rotation:    angle,
		Scale:       Vec2{X: sx, Y: sy},
		Skew:        Vec2{X: math.Atan(shear)},
	}, true
}

// Compose rebuilds a matrix from its components:
//
//	Translate -> Rotate -> Skew -> Scale
//
// read right to left as applied to a point.
func Compose(d Decomposed) Matrix {
	return TranslationMatrix(d.Translation.X, d.Translation.Y).
		Multiply(RotationMatrix(d.Rotation)).
		Multiply(SkewMatrix(d.Skew.X, d.Skew.Y)).
		Multiply(ScaleMatrix(d.Scale.X, d.Scale.Y))
}

// InterpolateDecomposed blends two component sets. Translation, scale and
// skew are interpolated linearly; rotation follows the shortest arc between
// the two angles. progress is not clamped.
func InterpolateDecomposed(from, to Decomposed, progress float64) Decomposed {
	return Decomposed{
		Translation: lerpVec2(from.Translation, to.Translation, progress),
		Rotation:    lerpAngle(from.Rotation, to.Rotation, progress),
		Scale:       lerpVec2(from.Scale, to.Scale, progress),
		Skew:        lerpVec2(from.Skew, to.Skew, progress),
	}
}

// lerp returns from + (to-from)*progress.
func lerp(from, to, progress float64) float64 {
	return from + (to-from)*progress
}

func lerpVec2(from, to Vec2, progress float64) Vec2 {
	return Vec2{X: lerp(from.X, to.X, progress), Y: lerp(from.Y, to.Y, progress)}
}

// lerpAngle interpolates along the shorter arc. The delta is wrapped into
// [-π, π]; exactly opposite angles turn in the positive direction.
func lerpAngle(from, to, progress float64) float64 {
	delta := math.Remainder(to-from, 2*math.Pi)
	if delta == -math.Pi {
		delta = math.Pi
	}
	return from + delta*progress
}
