package geom

import (
	"testing"

	"github.com/kestrelgfx/rastercore/vecmath"
)

func TestPlaneSelfIntersection(t *testing.T) {
	p := vecmath.V3{X: 1, Y: 2, Z: 3}
	n := vecmath.V3{X: 0, Y: 1, Z: 0}
	plane := NewPlane(p, n)
	got := plane.IntersectSegment(vecmath.PointFromV3(p), vecmath.PointFromV3(p.Add(n)))
	if !approxEqualV4(got, vecmath.PointFromV3(p), 1e-5) {
		t.Fatalf("self intersection: got %+v want %+v", got, p)
	}
}

func TestIntersectionLiesOnPlane(t *testing.T) {
	plane := NewPlane(vecmath.V3{}, vecmath.V3{Y: 1})
	a := vecmath.NewPoint(0, -5, 0)
	b := vecmath.NewPoint(0, 5, 0)
	x := plane.IntersectSegment(a, b)
	if !plane.IsPointInside(x) {
		t.Fatalf("intersection point not on plane: %+v", x)
	}
}

func TestClipThreeInsidePassesThrough(t *testing.T) {
	tri := NewTriangle(
		vecmath.NewPoint(0, 0, 5),
		vecmath.NewPoint(1, 0, 5),
		vecmath.NewPoint(0, 1, 5),
	)
	plane := NewPlane(vecmath.V3{Z: 1}, vecmath.V3{Z: 1})
	out := ClipTriangleAgainstPlane(tri, plane)
	if len(out) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(out))
	}
	if out[0] != tri {
		t.Fatalf("3-inside clip mutated triangle: got %+v want %+v", out[0], tri)
	}
}

func TestClipZeroInsideDiscards(t *testing.T) {
	tri := NewTriangle(
		vecmath.NewPoint(0, 0, -5),
		vecmath.NewPoint(1, 0, -5),
		vecmath.NewPoint(0, 1, -5),
	)
	plane := NewPlane(vecmath.V3{Z: 1}, vecmath.V3{Z: 1})
	out := ClipTriangleAgainstPlane(tri, plane)
	if len(out) != 0 {
		t.Fatalf("expected discard, got %d triangles", len(out))
	}
}

func TestClipKeepsVerticesInsidePlane(t *testing.T) {
	tri := NewTriangle(
		vecmath.NewPoint(0, 0, -1),
		vecmath.NewPoint(1, 0, 1),
		vecmath.NewPoint(-1, 0, 1),
	)
	plane := NewPlane(vecmath.V3{Z: 0.5}, vecmath.V3{Z: 1})
	out := ClipTriangleAgainstPlane(tri, plane)
	for _, o := range out {
		for _, vert := range o.Vertices() {
			if !plane.IsPointInside(vert) {
				eps := plane.Normal.Dot3(vert) + plane.W
				if eps < -1e-4 {
					t.Fatalf("clipped vertex outside plane by %v: %+v", eps, vert)
				}
			}
		}
	}
}

// Two of the three vertices lie in front of the near plane, so the clip
// takes the 2-inside path and splits the kept quad into two triangles.
func TestClipNearPlaneTwoInsideEmitsTwoTriangles(t *testing.T) {
	tri := NewTriangle(
		vecmath.NewPoint(0, 0, -1),
		vecmath.NewPoint(1, 0, 1),
		vecmath.NewPoint(-1, 0, 1),
	)
	near := NewPlane(vecmath.V3{Z: 0.5}, vecmath.V3{Z: 1})
	out := ClipTriangleAgainstPlane(tri, near)
	if len(out) != 2 {
		t.Fatalf("expected exactly two triangles after near-plane clip, got %d", len(out))
	}
	for _, o := range out {
		for _, vert := range o.Vertices() {
			if vert.Z < 0.5-1e-4 {
				t.Fatalf("vertex still behind near plane: z=%v", vert.Z)
			}
		}
	}
}

func TestClipIdempotent(t *testing.T) {
	tri := NewTriangle(
		vecmath.NewPoint(0, 0, -1),
		vecmath.NewPoint(1, 0, 1),
		vecmath.NewPoint(-1, 0, 1),
	)
	plane := NewPlane(vecmath.V3{Z: 0.5}, vecmath.V3{Z: 1})
	once := ClipTriangleAgainstPlane(tri, plane)
	var twice []Triangle
	for _, t1 := range once {
		twice = append(twice, ClipTriangleAgainstPlane(t1, plane)...)
	}
	if len(twice) != len(once) {
		t.Fatalf("clip not idempotent: once=%d twice=%d", len(once), len(twice))
	}
}

func TestClipAgainstFrustumDropsBehindCamera(t *testing.T) {
	planes := BuildFrustumPlanes(60, 1, 0.1, 100)
	tri := NewTriangle(
		vecmath.NewPoint(0, 0, -5),
		vecmath.NewPoint(1, 0, -5),
		vecmath.NewPoint(0, 1, -5),
	)
	out := ClipAgainstFrustum([]Triangle{tri}, planes)
	if len(out) != 0 {
		t.Fatalf("expected triangle entirely behind camera to be discarded, got %d", len(out))
	}
}

func TestClipAgainstFrustumKeepsVisibleTriangle(t *testing.T) {
	planes := BuildFrustumPlanes(60, 1, 0.1, 100)
	tri := NewTriangle(
		vecmath.NewPoint(-0.1, -0.1, 5),
		vecmath.NewPoint(0.1, -0.1, 5),
		vecmath.NewPoint(0, 0.1, 5),
	)
	out := ClipAgainstFrustum([]Triangle{tri}, planes)
	if len(out) == 0 {
		t.Fatalf("expected visible triangle to survive frustum clip")
	}
}

func approxEqualV4(a, b vecmath.V4, eps float32) bool {
	d := func(x, y float32) float32 {
		v := x - y
		if v < 0 {
			v = -v
		}
		return v
	}
	return d(a.X, b.X) <= eps && d(a.Y, b.Y) <= eps && d(a.Z, b.Z) <= eps
}
