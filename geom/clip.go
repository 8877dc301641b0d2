package geom

import "github.com/kestrelgfx/rastercore/vecmath"

// ClipTriangleAgainstPlane partitions t's vertices against p and
// returns 0, 1, or 2 triangles per the fill/discard policy: 0 inside
// discards, 3 inside passes through unchanged, 1 inside emits a single
// shrunk triangle, 2 inside emits two triangles covering the kept
// quad. All outputs inherit t's cached world normal.
func ClipTriangleAgainstPlane(t Triangle, p Plane) []Triangle {
	v := t.Vertices()
	var inside [3]bool
	insideCount := 0
	for i, vertex := range v {
		inside[i] = p.IsPointInside(vertex)
		if inside[i] {
			insideCount++
		}
	}

	switch insideCount {
	case 0:
		return nil
	case 3:
		return []Triangle{t}
	case 1:
		var ii int
		for i, in := range inside {
			if in {
				ii = i
				break
			}
		}
		i0 := v[ii]
		o1 := v[(ii+1)%3]
		o2 := v[(ii+2)%3]
		x1 := p.IntersectSegment(i0, o1)
		x2 := p.IntersectSegment(i0, o2)
		return []Triangle{TriangleFromVertices([3]vecmath.V4{i0, x1, x2}, t)}
	case 2:
		var oo int
		for i, in := range inside {
			if !in {
				oo = i
				break
			}
		}
		o := v[oo]
		i1 := v[(oo+1)%3]
		i2 := v[(oo+2)%3]
		x1 := p.IntersectSegment(i1, o)
		x2 := p.IntersectSegment(i2, o)
		return []Triangle{
			TriangleFromVertices([3]vecmath.V4{i1, i2, x1}, t),
			TriangleFromVertices([3]vecmath.V4{i2, x1, x2}, t),
		}
	default:
		return nil
	}
}

// ClipAgainstFrustum runs the full triangle list through each of the
// six planes in order, the output of one pass feeding the next.
func ClipAgainstFrustum(triangles []Triangle, planes [6]Plane) []Triangle {
	current := triangles
	for _, p := range planes {
		next := make([]Triangle, 0, len(current))
		for _, t := range current {
			next = append(next, ClipTriangleAgainstPlane(t, p)...)
		}
		current = next
	}
	return current
}
