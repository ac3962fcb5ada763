package affine

// Vec2 is a 2D vector used for offsets, scale factors and skew angles
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// OperationKind selects which elementary transform an Operation performs.
type OperationKind uint8

const (
	OperationIdentity  OperationKind = iota // no transform; the zero value
	OperationTranslate                      // offset by (X, Y)
	OperationRotate                         // rotate by an angle in radians
	OperationScale                          // scale by (X, Y)
	OperationSkew                           // shear by the angles (X, Y) in radians
	OperationMatrix                         // arbitrary affine matrix
)

var operationKindNames = [...]string{
	OperationIdentity:  "identity",
	OperationTranslate: "translate",
	OperationRotate:    "rotate",
	OperationScale:     "scale",
	OperationSkew:      "skew",
	OperationMatrix:    "matrix",
}

// String returns the lower-case name of the kind, as used in YAML scripts.
func (k OperationKind) String() string {
	if int(k) < len(operationKindNames) {
		return operationKindNames[k]
	}
	return "unknown"
}

// parseOperationKind is the inverse of OperationKind.String.
func parseOperationKind(name string) (OperationKind, bool) {
	for k, n := range operationKindNames {
		if n == name {
			return OperationKind(k), true
		}
	}
	return OperationIdentity, false
}
