package affine

import (
	"errors"
	"fmt"
)

// ErrDecomposition is matched (via errors.Is) by every *DecompositionError.
var ErrDecomposition = errors.New("affine: matrix cannot be decomposed")

// DecompositionError reports that an interpolation endpoint's matrix is
// singular or non-finite and so cannot be split into translation, rotation,
// scale and skew. Side is "result" when both endpoints decomposed but the
// blended components overflowed.
type DecompositionError struct {
	Side   string // "from", "to" or "result"
	Matrix Matrix
}

func (e *DecompositionError) Error() string {
	return fmt.Sprintf("affine: cannot decompose %s matrix %v", e.Side, [6]float64(e.Matrix))
}

func (e *DecompositionError) Unwrap() error {
	return ErrDecomposition
}

// TryInterpolate blends from and to at progress and returns a new baked
// operation. Either side may be nil, which counts as identity. progress is not
// clamped: values outside [0, 1] extrapolate.
//
// The result kind follows to, or from when to is identity. Operations of the
// same parametric kind blend their scalars directly, with identity sides
// contributing 0 (translate, rotate, skew) or 1 (scale). Matrix operations,
// and pairs whose kinds differ, blend through matrix decomposition and
// produce a Matrix-kind result; that path fails with a *DecompositionError
// when either matrix is singular or the blend overflows, so a nil error always
// comes with a finite matrix.
//
// Neither input is modified.
func TryInterpolate(from, to *Operation, progress float64) (Operation, error) {
	fromIdentity := IsOperationIdentity(from)
	toIdentity := IsOperationIdentity(to)

	if fromIdentity && toIdentity {
		return NewIdentity(), nil
	}

	var fromValue, toValue Operation
	if !fromIdentity {
		fromValue = *from
	}
	if !toIdentity {
		toValue = *to
	}

	kind := toValue.kind
	if toIdentity {
		kind = fromValue.kind
	}
	if !fromIdentity && !toIdentity && fromValue.kind != toValue.kind {
		kind = OperationMatrix
	}

	switch kind {
	case OperationTranslate:
		f := neutralVec(fromValue, fromIdentity, 0)
		t := neutralVec(toValue, toIdentity, 0)
		v := lerpVec2(f, t, progress)
		return NewTranslate(v.X, v.Y), nil

	case OperationRotate:
		var f, t float64
		if !fromIdentity {
			f = fromValue.angle
		}
		if !toIdentity {
			t = toValue.angle
		}
		return NewRotate(lerp(f, t, progress)), nil

	case OperationScale:
		f := neutralVec(fromValue, fromIdentity, 1)
		t := neutralVec(toValue, toIdentity, 1)
		v := lerpVec2(f, t, progress)
		return NewScale(v.X, v.Y), nil

	case OperationSkew:
		f := neutralVec(fromValue, fromIdentity, 0)
		t := neutralVec(toValue, toIdentity, 0)
		v := lerpVec2(f, t, progress)
		return NewSkew(v.X, v.Y), nil

	case OperationMatrix:
		return interpolateMatrices(fromValue.Matrix(), toValue.Matrix(), progress)
	}

	return NewIdentity(), nil
}

// neutralVec returns op's vector payload, or (n, n) for an identity side.
func neutralVec(op Operation, identity bool, n float64) Vec2 {
	if identity {
		return Vec2{X: n, Y: n}
	}
	return op.vec
}

// interpolateMatrices blends two matrices through their decomposed components.
func interpolateMatrices(from, to Matrix, progress float64) (Operation, error) {
	fromDecomposed, ok := TryDecompose(from)
	if !ok {
		return Operation{}, &DecompositionError{Side: "from", Matrix: from}
	}
	toDecomposed, ok := TryDecompose(to)
	if !ok {
		return Operation{}, &DecompositionError{Side: "to", Matrix: to}
	}
	blended := Compose(InterpolateDecomposed(fromDecomposed, toDecomposed, progress))
	if !blended.isFinite() {
		return Operation{}, &DecompositionError{Side: "result", Matrix: blended}
	}
	return NewMatrix(blended), nil
}
