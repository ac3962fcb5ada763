package affine

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Matrix) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- constructors ---

func TestIdentity(t *testing.T) {
	if Identity() != (Matrix{1, 0, 0, 1, 0, 0}) {
		t.Errorf("Identity() = %v", Identity())
	}
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
}

func TestTranslationMatrix(t *testing.T) {
	assertMatrix(t, "translation", TranslationMatrix(10, 20), Matrix{1, 0, 0, 1, 10, 20})
}

func TestScaleMatrix(t *testing.T) {
	assertMatrix(t, "scale", ScaleMatrix(2, 3), Matrix{2, 0, 0, 3, 0, 0})
}

func TestRotationMatrix90(t *testing.T) {
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", RotationMatrix(math.Pi/2), Matrix{0, 1, -1, 0, 0, 0})
}

func TestSkewMatrix(t *testing.T) {
	// tan(π/4) = 1
	assertMatrix(t, "skewX", SkewMatrix(math.Pi/4, 0), Matrix{1, 0, 1, 1, 0, 0})
	assertMatrix(t, "skewY", SkewMatrix(0, math.Pi/4), Matrix{1, 1, 0, 1, 0, 0})
}

func TestZeroParametersAreExactIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"translation", TranslationMatrix(0, 0)},
		{"rotation", RotationMatrix(0)},
		{"scale", ScaleMatrix(1, 1)},
		{"skew", SkewMatrix(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.m.IsIdentity() {
				t.Errorf("%v.IsIdentity() = false", tt.m)
			}
		})
	}
}

// --- Multiply ---

func TestMultiplyIdentity(t *testing.T) {
	m := Matrix{2, 1, 3, 4, 5, 6}
	assertMatrix(t, "id*m", Identity().Multiply(m), m)
	assertMatrix(t, "m*id", m.Multiply(Identity()), m)
}

func TestMultiplyTranslations(t *testing.T) {
	got := TranslationMatrix(10, 20).Multiply(TranslationMatrix(5, 3))
	assertMatrix(t, "translations", got, Matrix{1, 0, 0, 1, 15, 23})
}

func TestMultiplyOrder(t *testing.T) {
	// Scale first, then translate: the offset is not scaled.
	got := TranslationMatrix(10, 0).Multiply(ScaleMatrix(2, 2))
	x, y := got.Apply(1, 1)
	assertNear(t, "x", x, 12)
	assertNear(t, "y", y, 2)

	// Translate first, then scale: the offset is scaled.
	got = ScaleMatrix(2, 2).Multiply(TranslationMatrix(10, 0))
	x, y = got.Apply(1, 1)
	assertNear(t, "x", x, 22)
	assertNear(t, "y", y, 2)
}

// --- Invert ---

func TestInvert(t *testing.T) {
	m := Matrix{2, 0, 0, 3, 10, 20}
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert reported singular")
	}
	assertMatrix(t, "m*inv=id", m.Multiply(inv), Identity())
}

func TestInvertComplex(t *testing.T) {
	m := TranslationMatrix(5, -7).Multiply(RotationMatrix(math.Pi / 3)).Multiply(ScaleMatrix(2, 1))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert reported singular")
	}
	assertMatrix(t, "m*inv=id", m.Multiply(inv), Identity())
	assertMatrix(t, "inv*m=id", inv.Multiply(m), Identity())
}

func TestInvertSingular(t *testing.T) {
	inv, ok := ScaleMatrix(0, 1).Invert()
	if ok {
		t.Error("expected singular matrix to report !ok")
	}
	if inv != Identity() {
		t.Errorf("singular inverse = %v, want identity", inv)
	}
}

// --- Apply / Determinant ---

func TestApplyRotation(t *testing.T) {
	x, y := RotationMatrix(math.Pi/2).Apply(1, 0)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, 1)
}

func TestDeterminant(t *testing.T) {
	assertNear(t, "scale", ScaleMatrix(2, 3).Determinant(), 6)
	assertNear(t, "rotation", RotationMatrix(1.234).Determinant(), 1)
	assertNear(t, "reflection", ScaleMatrix(-1, 1).Determinant(), -1)
}

func TestIsIdentityExact(t *testing.T) {
	// A full turn is geometrically identity but sin(2π) is not exactly zero.
	if RotationMatrix(2 * math.Pi).IsIdentity() {
		t.Error("full rotation unexpectedly compared exactly equal to identity")
	}
	if (Matrix{1, 0, 0, 1, 1e-300, 0}).IsIdentity() {
		t.Error("tiny translation compared equal to identity")
	}
}

func TestIsFinite(t *testing.T) {
	if !RotationMatrix(1).isFinite() {
		t.Error("rotation should be finite")
	}
	if (Matrix{math.NaN(), 0, 0, 1, 0, 0}).isFinite() {
		t.Error("NaN matrix should not be finite")
	}
	if (Matrix{1, 0, 0, 1, math.Inf(1), 0}).isFinite() {
		t.Error("Inf matrix should not be finite")
	}
}
