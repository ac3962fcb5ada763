package affine

import "math"

// Matrix is a 2D affine transform stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// A point (x, y) maps to (a*x + c*y + tx, b*x + d*y + ty). Matrix is a plain
// value; every method returns a new matrix.
type Matrix [6]float64

// identityMatrix is the identity affine matrix.
var identityMatrix = Matrix{1, 0, 0, 1, 0, 0}

// singularThreshold is the determinant magnitude below which Invert treats a
// matrix as singular.
const singularThreshold = 1e-12

// Identity returns the identity matrix.
func Identity() Matrix {
	return identityMatrix
}

// TranslationMatrix returns a matrix that offsets points by (x, y).
func TranslationMatrix(x, y float64) Matrix {
	return Matrix{1, 0, 0, 1, x, y}
}

// RotationMatrix returns a matrix that rotates points by angle radians.
// Positive angles rotate from the +X axis towards the +Y axis, which appears
// clockwise on a Y-down screen.
func RotationMatrix(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// ScaleMatrix returns a matrix that scales points by (x, y).
func ScaleMatrix(x, y float64) Matrix {
	return Matrix{x, 0, 0, y, 0, 0}
}

// SkewMatrix returns a matrix that shears points by the angles x and y (radians).
// x shears along the X axis (c = tan x), y along the Y axis (b = tan y).
func SkewMatrix(x, y float64) Matrix {
	var tanX, tanY float64
	if x != 0 {
		tanX = math.Tan(x)
	}
	if y != 0 {
		tanY = math.Tan(y)
	}
	return Matrix{1, tanY, tanX, 1, 0, 0}
}

// Multiply returns m * child: child is applied first, then m.
func (m Matrix) Multiply(child Matrix) Matrix {
	return Matrix{
		m[0]*child[0] + m[2]*child[1],
		m[1]*child[0] + m[3]*child[1],
		m[0]*child[2] + m[2]*child[3],
		m[1]*child[2] + m[3]*child[3],
		m[0]*child[4] + m[2]*child[5] + m[4],
		m[1]*child[4] + m[3]*child[5] + m[5],
	}
}

// Determinant returns the determinant of the linear part of m.
func (m Matrix) Determinant() float64 {
	return m[0]*m[3] - m[2]*m[1]
}

// Invert returns the inverse of m and true, or the identity matrix and false
// when m is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if math.Abs(det) < singularThreshold {
		return identityMatrix, false
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}, true
}

// Apply transforms the point (x, y) by m.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// IsIdentity reports whether m is exactly the identity matrix. No tolerance
// is applied, so matrices produced by floating-point round trips may not
// qualify even when they are visually indistinguishable from identity.
func (m Matrix) IsIdentity() bool {
	return m == identityMatrix
}

// isFinite reports whether every element of m is a finite number.
func (m Matrix) isFinite() bool {
	for _, v := range m {
		if !finite(v) {
			return false
		}
	}
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
