// Package vecmath provides the vector and matrix primitives the rest of
// the rasterizer is built on: 3/4-component vectors, row-major 3x3/4x4
// matrices, and the transform builders (rotation, translation,
// perspective) used by the clipper and the render driver.
package vecmath

import "math"

// V3 is a plain 3-component vector: Euler angles, directions, and
// positions that never need homogeneous treatment.
type V3 struct {
	X, Y, Z float32
}

// V4 is a homogeneous 4-component vector. Points constructed from 3D
// components get W=1; directions get W=0.
type V4 struct {
	X, Y, Z, W float32
}

// NewPoint builds a V4 "point" from 3D components, setting W=1.
func NewPoint(x, y, z float32) V4 {
	return V4{X: x, Y: y, Z: z, W: 1}
}

// PointFromV3 is NewPoint taking a V3.
func PointFromV3(v V3) V4 {
	return V4{X: v.X, Y: v.Y, Z: v.Z, W: 1}
}

// NewDirection builds a V4 direction (W=0).
func NewDirection(x, y, z float32) V4 {
	return V4{X: x, Y: y, Z: z, W: 0}
}

// XYZ drops the homogeneous component.
func (v V4) XYZ() V3 {
	return V3{X: v.X, Y: v.Y, Z: v.Z}
}

// PerspectiveDivide divides x, y, z by w when w is nonzero; w itself is
// left untouched so callers can tell a divide happened.
func (v V4) PerspectiveDivide() V4 {
	if v.W == 0 {
		return v
	}
	return V4{X: v.X / v.W, Y: v.Y / v.W, Z: v.Z / v.W, W: v.W}
}

// Dot is the 3D dot product; it ignores W.
func (v V4) Dot(o V4) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Sub subtracts componentwise, including W.
func (v V4) Sub(o V4) V4 {
	return V4{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z, W: v.W - o.W}
}

// Lerp linearly interpolates between v and o (all four components).
func (v V4) Lerp(o V4, t float32) V4 {
	return V4{
		X: v.X + t*(o.X-v.X),
		Y: v.Y + t*(o.Y-v.Y),
		Z: v.Z + t*(o.Z-v.Z),
		W: v.W + t*(o.W-v.W),
	}
}

// CrossLen2D is the z-component of the 3D cross product of the
// xy-projection of a and b: a.x*b.y - b.x*a.y. Used for edge functions
// and signed 2D triangle area in the rasterizer.
func CrossLen2D(a, b V4) float32 {
	return a.X*b.Y - b.X*a.Y
}

// Dot3 computes the 3D dot product of v against the xyz of a V4.
func (v V3) Dot3(o V4) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Dot is the dot product of two V3.
func (v V3) Dot(o V3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross is the 3D cross product.
func (v V3) Cross(o V3) V3 {
	return V3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Sub subtracts componentwise.
func (v V3) Sub(o V3) V3 {
	return V3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Add adds componentwise.
func (v V3) Add(o V3) V3 {
	return V3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale multiplies by a scalar.
func (v V3) Scale(s float32) V3 {
	return V3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg negates v.
func (v V3) Neg() V3 {
	return V3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Length returns the Euclidean length of v.
func (v V3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize returns v scaled to unit length. A near-zero vector is
// returned unchanged rather than producing NaNs.
func (v V3) Normalize() V3 {
	l := v.Length()
	if l < 1e-10 {
		return v
	}
	return v.Scale(1 / l)
}

// Clamp constrains value to [lo, hi].
func Clamp(value, lo, hi float32) float32 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * float32(math.Pi) / 180
}
