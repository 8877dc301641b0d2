package geom

import "github.com/kestrelgfx/rastercore/vecmath"

// Plane is stored in plane-equation form: (x,y,z) is the normal
// (caller-supplied, not forced to unit length) and w = -(point . normal).
type Plane struct {
	Normal vecmath.V3
	W      float32
}

// NewPlane builds a plane through point with the given normal.
func NewPlane(point, normal vecmath.V3) Plane {
	return Plane{Normal: normal, W: -point.Dot(normal)}
}

// IsPointInside reports whether q lies on the positive side of the
// plane: normal.q + w >= 0.
func (p Plane) IsPointInside(q vecmath.V4) bool {
	return p.Normal.Dot3(q)+p.W >= 0
}

// IntersectSegment returns the point where segment (p1,p2) crosses the
// plane. The caller guarantees the segment actually crosses it.
func (p Plane) IntersectSegment(p1, p2 vecmath.V4) vecmath.V4 {
	dir := p2.Sub(p1)
	denom := p.Normal.Dot3(dir)
	t := (-p.W - p.Normal.Dot3(p1)) / denom
	return p1.Lerp(p2, t)
}
