package main

import (
	"github.com/kestrelgfx/rastercore/geom"
	"github.com/kestrelgfx/rastercore/scene"
	"github.com/kestrelgfx/rastercore/vecmath"
)

// demoScene builds a small built-in scene (a static cube over a
// flat ground plane) for when the host isn't given a -scene path. It
// exists purely so the demo commands have something to render; scene
// authoring is out of the rasterizer core's scope.
func demoScene() scene.Scene {
	return scene.Scene{
		Camera: scene.Camera{
			Position:       vecmath.V3{X: 0, Y: 2, Z: -6},
			Rotation:       vecmath.V3{X: 10},
			VerticalFovDeg: 60,
			ZNear:          0.1,
			ZFar:           100,
		},
		DirectionalLightRot: vecmath.V3{X: 45, Y: 45},
		Objects: []scene.Object{
			{Mesh: cubeMesh(), Position: vecmath.V3{Y: 0.5}},
			{Mesh: groundMesh(), Position: vecmath.V3{Y: -0.5}},
		},
	}
}

// cubeMesh builds an axis-aligned unit cube centered at the origin,
// wound so each face's two triangles share a consistent winding.
func cubeMesh() *geom.Mesh {
	v := vecmath.NewPoint
	c := [8]vecmath.V4{
		v(-0.5, -0.5, -0.5), v(0.5, -0.5, -0.5), v(0.5, 0.5, -0.5), v(-0.5, 0.5, -0.5),
		v(-0.5, -0.5, 0.5), v(0.5, -0.5, 0.5), v(0.5, 0.5, 0.5), v(-0.5, 0.5, 0.5),
	}
	quad := func(a, b, cc, d int) []geom.Triangle {
		return []geom.Triangle{
			geom.NewTriangle(c[a], c[b], c[cc]),
			geom.NewTriangle(c[a], c[cc], c[d]),
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

// groundMesh builds a flat square, large relative to the cube, so the
// demo scene has a floor to catch the directional light.
func groundMesh() *geom.Mesh {
	v := vecmath.NewPoint
	a, b, cc, d := v(-10, 0, -10), v(10, 0, -10), v(10, 0, 10), v(-10, 0, 10)
	return geom.NewMesh([]geom.Triangle{
		geom.NewTriangle(a, b, cc),
		geom.NewTriangle(a, cc, d),
	})
}
