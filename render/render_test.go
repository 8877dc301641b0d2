package render

import (
	"testing"

	"github.com/kestrelgfx/rastercore/geom"
	"github.com/kestrelgfx/rastercore/raster"
	"github.com/kestrelgfx/rastercore/scene"
	"github.com/kestrelgfx/rastercore/vecmath"
)

func defaultCamera(fov, zNear, zFar float32) scene.Camera {
	return scene.Camera{VerticalFovDeg: fov, ZNear: zNear, ZFar: zFar}
}

func TestRenderEmptySceneIsAllBackground(t *testing.T) {
	s := scene.Scene{Camera: defaultCamera(60, 0.1, 100)}
	bmp := Render(raster.ScreenSize{Width: 10, Height: 10}, s)
	if len(bmp.Pixels) != 100 {
		t.Fatalf("pixel count = %d, want 100", len(bmp.Pixels))
	}
	for i, p := range bmp.Pixels {
		if p != Background {
			t.Fatalf("pixel %d = %+v, want background %+v", i, p, Background)
		}
	}
}

func TestRenderZeroDimensionScreenIsEmpty(t *testing.T) {
	s := scene.Scene{Camera: defaultCamera(60, 0.1, 100)}
	bmp := Render(raster.ScreenSize{Width: 0, Height: 0}, s)
	if len(bmp.Pixels) != 0 {
		t.Fatalf("expected empty bitmap, got %d pixels", len(bmp.Pixels))
	}
}

func TestRenderFullViewportTriangle(t *testing.T) {
	mesh := geom.NewMesh([]geom.Triangle{
		geom.NewTriangle(
			vecmath.NewPoint(-1, -1, 1),
			vecmath.NewPoint(3, -1, 1),
			vecmath.NewPoint(-1, 3, 1),
		),
	})
	s := scene.Scene{
		Camera:  defaultCamera(90, 0.5, 2),
		Objects: []scene.Object{{Mesh: mesh}},
	}
	bmp := Render(raster.ScreenSize{Width: 4, Height: 4}, s)
	centerIdx := 2*4 + 2
	if bmp.Pixels[centerIdx] == Background {
		t.Fatalf("interior pixel of a full-viewport triangle is still background")
	}
}

func cubeMesh() *geom.Mesh {
	v := func(x, y, z float32) vecmath.V4 { return vecmath.NewPoint(x, y, z) }
	// 8 corners of a unit cube centered at the origin.
	c := [8]vecmath.V4{
		v(-0.5, -0.5, -0.5), v(0.5, -0.5, -0.5), v(0.5, 0.5, -0.5), v(-0.5, 0.5, -0.5),
		v(-0.5, -0.5, 0.5), v(0.5, -0.5, 0.5), v(0.5, 0.5, 0.5), v(-0.5, 0.5, 0.5),
	}
	quad := func(a, b, c2, d int) []geom.Triangle {
		return []geom.Triangle{
			geom.NewTriangle(c[a], c[b], c[c2]),
			geom.NewTriangle(c[a], c[c2], c[d]),
		}
	}
	var tris []geom.Triangle
	tris = append(tris, quad(0, 1, 2, 3)...) // back
	tris = append(tris, quad(5, 4, 7, 6)...) // front
	tris = append(tris, quad(4, 0, 3, 7)...) // left
	tris = append(tris, quad(1, 5, 6, 2)...) // right
	tris = append(tris, quad(3, 2, 6, 7)...) // top
	tris = append(tris, quad(4, 5, 1, 0)...) // bottom
	return geom.NewMesh(tris)
}

func TestRenderCenteredCube(t *testing.T) {
	s := scene.Scene{
		Camera:  scene.Camera{Position: vecmath.V3{Z: -2}, VerticalFovDeg: 60, ZNear: 0.1, ZFar: 100},
		Objects: []scene.Object{{Mesh: cubeMesh()}},
	}
	bmp := Render(raster.ScreenSize{Width: 100, Height: 100}, s)

	corners := []int{0, 99, 9900, 9999}
	for _, idx := range corners {
		if bmp.Pixels[idx] != Background {
			t.Fatalf("corner %d = %+v, want background", idx, bmp.Pixels[idx])
		}
	}

	centerIdx := 50*100 + 50
	if bmp.Pixels[centerIdx] == Background {
		t.Fatalf("center of a centered cube is still background")
	}
}

// TestRenderDepthTieBreakLastWriteWins pits two coplanar triangles
// against each other at identical depth: triA's winding faces the
// light (full Model color), triB is the same triangle with reversed
// winding, so its flipped normal faces away from the light (clamped
// to Black). Because both sit at exactly the same z, the depth
// buffer's <= rule means whichever is drawn second must win. The
// screen is large enough that the vertex splats drawn after each fill
// do not reach the center pixel.
func TestRenderDepthTieBreakLastWriteWins(t *testing.T) {
	p1 := vecmath.NewPoint(-0.9, -0.9, 1)
	p2 := vecmath.NewPoint(0.9, -0.9, 1)
	p3 := vecmath.NewPoint(0, 0.9, 1)
	triA := geom.NewTriangle(p1, p2, p3)
	triB := geom.NewTriangle(p1, p3, p2)

	buildScene := func(objects []scene.Object) scene.Scene {
		return scene.Scene{Camera: defaultCamera(90, 0.5, 2), Objects: objects}
	}

	aThenB := buildScene([]scene.Object{
		{Mesh: geom.NewMesh([]geom.Triangle{triA})},
		{Mesh: geom.NewMesh([]geom.Triangle{triB})},
	})
	bThenA := buildScene([]scene.Object{
		{Mesh: geom.NewMesh([]geom.Triangle{triB})},
		{Mesh: geom.NewMesh([]geom.Triangle{triA})},
	})

	bmp1 := Render(raster.ScreenSize{Width: 40, Height: 40}, aThenB)
	bmp2 := Render(raster.ScreenSize{Width: 40, Height: 40}, bThenA)

	centerIdx := 20*40 + 20
	if bmp1.Pixels[centerIdx] != Black {
		t.Fatalf("aThenB center = %+v, want Black (triB drawn last)", bmp1.Pixels[centerIdx])
	}
	if bmp2.Pixels[centerIdx] != Model {
		t.Fatalf("bThenA center = %+v, want Model (triA drawn last)", bmp2.Pixels[centerIdx])
	}
}

func TestRenderWireframeDominatesEdges(t *testing.T) {
	mesh := geom.NewMesh([]geom.Triangle{
		geom.NewTriangle(
			vecmath.NewPoint(-0.9, -0.9, 1),
			vecmath.NewPoint(0.9, -0.9, 1),
			vecmath.NewPoint(0, 0.9, 1),
		),
	})
	s := scene.Scene{
		Camera:  defaultCamera(90, 0.5, 2),
		Objects: []scene.Object{{Mesh: mesh}},
	}
	bmp := Render(raster.ScreenSize{Width: 40, Height: 40}, s)

	found := false
	for _, p := range bmp.Pixels {
		if p == WireframeLine {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected at least one pixel to carry the wireframe line color")
	}
}
