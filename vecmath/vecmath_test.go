package vecmath

import (
	"math"
	"testing"
)

func approxEqual(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestRotationRoundTrip(t *testing.T) {
	v := NewPoint(3, -2, 5)
	r := Rotation(V3{X: 12, Y: 34, Z: -56})
	// Rotation applies X, then Y, then Z, so its inverse undoes Z, then
	// Y, then X: the single-axis rotations by the negated angles, composed
	// in reverse order. Negating all three angles in one Rotation call is
	// not an inverse once more than one angle is nonzero.
	rInv := Rotation(V3{X: -12}).Mul(Rotation(V3{Y: -34})).Mul(Rotation(V3{Z: 56}))

	got := rInv.MulV4(r.MulV4(v))
	if !approxEqual(got.X, v.X, 1e-3) || !approxEqual(got.Y, v.Y, 1e-3) || !approxEqual(got.Z, v.Z, 1e-3) {
		t.Fatalf("rotation round trip: got %+v want %+v", got, v)
	}
}

func TestTranslationRoundTrip(t *testing.T) {
	v := NewPoint(1, 2, 3)
	offset := V3{X: 10, Y: -4, Z: 7}
	got := Translation(offset.Neg()).MulV4(Translation(offset).MulV4(v))
	if !approxEqual(got.X, v.X, 1e-4) || !approxEqual(got.Y, v.Y, 1e-4) || !approxEqual(got.Z, v.Z, 1e-4) {
		t.Fatalf("translation round trip: got %+v want %+v", got, v)
	}
}

func TestPerspectiveDivideLeavesWUntouched(t *testing.T) {
	v := V4{X: 4, Y: 6, Z: 8, W: 2}
	got := v.PerspectiveDivide()
	if got.X != 2 || got.Y != 3 || got.Z != 4 || got.W != 2 {
		t.Fatalf("perspective divide: got %+v", got)
	}
}

func TestPerspectiveNearFarMapping(t *testing.T) {
	zNear, zFar := float32(0.5), float32(10.0)
	p := Perspective(60, 1, zNear, zFar)

	near := p.MulV4(NewPoint(0, 0, zNear)).PerspectiveDivide()
	if !approxEqual(near.Z, 0, 1e-4) {
		t.Fatalf("near plane z: got %v want ~0", near.Z)
	}

	far := p.MulV4(NewPoint(0, 0, zFar)).PerspectiveDivide()
	if !approxEqual(far.Z, 1, 1e-4) {
		t.Fatalf("far plane z: got %v want ~1", far.Z)
	}
}

func TestCrossLen2D(t *testing.T) {
	a := V4{X: 1, Y: 0}
	b := V4{X: 0, Y: 1}
	if got := CrossLen2D(a, b); got != 1 {
		t.Fatalf("CrossLen2D(1,0 x 0,1) = %v, want 1", got)
	}
}

func TestNormalizeZeroVectorIsSafe(t *testing.T) {
	v := V3{}
	got := v.Normalize()
	if math.IsNaN(float64(got.X)) || math.IsNaN(float64(got.Y)) || math.IsNaN(float64(got.Z)) {
		t.Fatalf("normalize of zero vector produced NaN: %+v", got)
	}
}

func BenchmarkMat4MulV4(b *testing.B) {
	m := Rotation(V3{X: 12, Y: 34, Z: 56}).Mul(Translation(V3{X: 1, Y: 2, Z: 3}))
	v := NewPoint(10, 20, 30)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v = m.MulV4(v)
	}
}
