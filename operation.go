package affine

import "fmt"

// Operation is one elementary 2D transform: a translate, rotate, scale, skew,
// raw matrix or identity. It is an immutable value whose matrix is baked at
// construction, so Matrix never returns a stale result.
//
// The zero value is the identity operation. Use the New* constructors for
// everything else.
type Operation struct {
	kind OperationKind

	// vec is the offset (translate), factors (scale) or angles (skew).
	vec Vec2
	// angle is the rotation in radians (rotate).
	angle float64

	matrix Matrix
}

// NewIdentity returns an operation with no geometric effect.
func NewIdentity() Operation {
	return Operation{matrix: identityMatrix}
}

// NewTranslate returns an operation that offsets by (x, y).
func NewTranslate(x, y float64) Operation {
	return Operation{kind: OperationTranslate, vec: Vec2{X: x, Y: y}}.Bake()
}

// NewRotate returns an operation that rotates by angle radians.
func NewRotate(angle float64) Operation {
	return Operation{kind: OperationRotate, angle: angle}.Bake()
}

// NewScale returns an operation that scales by (x, y).
func NewScale(x, y float64) Operation {
	return Operation{kind: OperationScale, vec: Vec2{X: x, Y: y}}.Bake()
}

// NewSkew returns an operation that shears by the angles (x, y) in radians.
func NewSkew(x, y float64) Operation {
	return Operation{kind: OperationSkew, vec: Vec2{X: x, Y: y}}.Bake()
}

// NewMatrix returns an operation that applies m as-is.
func NewMatrix(m Matrix) Operation {
	return Operation{kind: OperationMatrix, matrix: m}
}

// Bake returns a copy of o whose matrix is recomputed from its kind and
// payload. Identity always bakes to the identity matrix and a Matrix-kind
// operation keeps its matrix unchanged.
func (o Operation) Bake() Operation {
	switch o.kind {
	case OperationTranslate:
		o.matrix = TranslationMatrix(o.vec.X, o.vec.Y)
	case OperationRotate:
		o.matrix = RotationMatrix(o.angle)
	case OperationScale:
		o.matrix = ScaleMatrix(o.vec.X, o.vec.Y)
	case OperationSkew:
		o.matrix = SkewMatrix(o.vec.X, o.vec.Y)
	case OperationMatrix:
	default:
		o.matrix = identityMatrix
	}
	return o
}

// Kind returns the operation's kind.
func (o Operation) Kind() OperationKind {
	return o.kind
}

// Matrix returns the baked affine matrix.
func (o Operation) Matrix() Matrix {
	if o.kind == OperationIdentity {
		return identityMatrix
	}
	return o.matrix
}

// IsIdentity reports whether the baked matrix is exactly the identity matrix.
func (o Operation) IsIdentity() bool {
	return o.Matrix().IsIdentity()
}

// Translation returns the offset of a translate operation.
func (o Operation) Translation() (Vec2, bool) {
	return o.vec, o.kind == OperationTranslate
}

// Rotation returns the angle of a rotate operation.
func (o Operation) Rotation() (float64, bool) {
	return o.angle, o.kind == OperationRotate
}

// Scale returns the factors of a scale operation.
func (o Operation) Scale() (Vec2, bool) {
	return o.vec, o.kind == OperationScale
}

// Skew returns the angles of a skew operation.
func (o Operation) Skew() (Vec2, bool) {
	return o.vec, o.kind == OperationSkew
}

// String formats the operation in the same shape the YAML encoding uses.
func (o Operation) String() string {
	switch o.kind {
	case OperationTranslate, OperationScale, OperationSkew:
		return fmt.Sprintf("%s(%g, %g)", o.kind, o.vec.X, o.vec.Y)
	case OperationRotate:
		return fmt.Sprintf("rotate(%g)", o.angle)
	case OperationMatrix:
		m := o.matrix
		return fmt.Sprintf("matrix(%g, %g, %g, %g, %g, %g)", m[0], m[1], m[2], m[3], m[4], m[5])
	default:
		return "identity"
	}
}

// IsOperationIdentity reports whether op contributes no transform. An absent
// (nil) operation is always identity.
func IsOperationIdentity(op *Operation) bool {
	return op == nil || op.IsIdentity()
}
