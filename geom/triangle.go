// Package geom holds the triangle/mesh types and the view-frustum
// clipper: plane construction, point-inside tests, segment-plane
// intersection, and triangle-against-plane clipping.
package geom

import "github.com/kestrelgfx/rastercore/vecmath"

// Triangle is an ordered (P1, P2, P3) of homogeneous points, plus an
// optional cached world-space unit normal. Once set, Normal refers to
// the triangle's orientation in world space (after the object
// transform, before the camera transform) and survives clipping.
type Triangle struct {
	P1, P2, P3 vecmath.V4
	Normal     vecmath.V3
	HasNormal  bool
}

// NewTriangle builds a triangle with no cached normal.
func NewTriangle(p1, p2, p3 vecmath.V4) Triangle {
	return Triangle{P1: p1, P2: p2, P3: p3}
}

// WithNormal returns a copy of t carrying the given world-space normal.
func (t Triangle) WithNormal(n vecmath.V3) Triangle {
	t.Normal = n
	t.HasNormal = true
	return t
}

// Vertices returns the three vertices as an array, in order.
func (t Triangle) Vertices() [3]vecmath.V4 {
	return [3]vecmath.V4{t.P1, t.P2, t.P3}
}

// TriangleFromVertices rebuilds a triangle from a 3-vertex array,
// preserving the source's cached normal.
func TriangleFromVertices(v [3]vecmath.V4, source Triangle) Triangle {
	t := Triangle{P1: v[0], P2: v[1], P3: v[2]}
	if source.HasNormal {
		t = t.WithNormal(source.Normal)
	}
	return t
}

// Transform applies m to all three vertices.
func (t Triangle) Transform(m vecmath.Mat4) Triangle {
	out := Triangle{
		P1: m.MulV4(t.P1),
		P2: m.MulV4(t.P2),
		P3: m.MulV4(t.P3),
	}
	if t.HasNormal {
		out = out.WithNormal(t.Normal)
	}
	return out
}

// WorldNormal computes the unit normal of (P2-P1) x (P3-P1), the world
// -space winding used for Lambert shading. It does not consult any
// cached normal; callers decide when to (re)compute it.
func (t Triangle) WorldNormal() vecmath.V3 {
	u := t.P2.Sub(t.P1).XYZ()
	v := t.P3.Sub(t.P1).XYZ()
	return u.Cross(v).Normalize()
}
