// Package render implements the render driver: the per-frame
// pipeline that turns a scene snapshot into a color bitmap by
// transforming, clipping, projecting, shading, filling, and
// outlining every triangle in the scene.
package render

import (
	"github.com/kestrelgfx/rastercore/geom"
	"github.com/kestrelgfx/rastercore/raster"
	"github.com/kestrelgfx/rastercore/scene"
	"github.com/kestrelgfx/rastercore/vecmath"
)

// Color constants, RGBA8 with alpha always 0.
var (
	Background     = raster.Color{R: 200, G: 50, B: 0}
	Model          = raster.Color{R: 200, G: 200, B: 0}
	WireframeLine  = raster.Color{R: 50, G: 50, B: 50}
	WireframePoint = raster.Color{R: 50, G: 50, B: 50}
	Black          = raster.Color{R: 0, G: 0, B: 0}
)

const wireframePointRadius = 3

// Render turns one scene snapshot into a color bitmap. It never
// fails: a zero-dimension screen yields an empty bitmap, and
// degenerate geometry silently contributes no pixels.
func Render(screenSize raster.ScreenSize, s scene.Scene) raster.Bitmap {
	if screenSize.Width <= 0 || screenSize.Height <= 0 {
		return raster.Bitmap{Width: screenSize.Width, Height: screenSize.Height}
	}

	depthBuf := raster.NewDepthBuffer(screenSize, Background)

	aspect := float32(screenSize.Width) / float32(screenSize.Height)
	proj := vecmath.Perspective(s.Camera.VerticalFovDeg, aspect, s.Camera.ZNear, s.Camera.ZFar)

	objRot := func(o scene.Object) vecmath.Mat4 { return vecmath.Rotation(o.Rotation) }
	camToWorld := vecmath.Translation(s.Camera.Position.Neg())
	camRot := vecmath.Rotation(s.Camera.Rotation.Neg())

	triangles := make([]geom.Triangle, 0)
	for _, obj := range s.Objects {
		if obj.Mesh == nil {
			continue
		}
		rot := objRot(obj)
		translate := vecmath.Translation(obj.Position)
		for _, tri := range obj.Mesh.Triangles {
			t := tri.Transform(rot)
			t = t.Transform(translate)
			n := t.WorldNormal()
			t = t.WithNormal(n)
			t = t.Transform(camToWorld)
			t = t.Transform(camRot)
			triangles = append(triangles, t)
		}
	}

	frustum := geom.BuildFrustumPlanes(s.Camera.VerticalFovDeg, aspect, s.Camera.ZNear, s.Camera.ZFar)
	triangles = geom.ClipAgainstFrustum(triangles, frustum)

	light := vecmath.Rotation3(s.DirectionalLightRot).MulV3(vecmath.V3{Z: 1})

	for _, t := range triangles {
		alpha := vecmath.Clamp(light.Dot(t.Normal), 0, 1)
		color := raster.Lerp(Black, Model, alpha)

		p1 := proj.MulV4(t.P1).PerspectiveDivide()
		p2 := proj.MulV4(t.P2).PerspectiveDivide()
		p3 := proj.MulV4(t.P3).PerspectiveDivide()

		raster.FillTriangle(depthBuf, p1, p2, p3, color)
		raster.WireframeLine(depthBuf, p1, p2, WireframeLine)
		raster.WireframeLine(depthBuf, p2, p3, WireframeLine)
		raster.WireframeLine(depthBuf, p3, p1, WireframeLine)
		raster.WireframePoint(depthBuf, p1, WireframePoint, wireframePointRadius)
		raster.WireframePoint(depthBuf, p2, WireframePoint, wireframePointRadius)
		raster.WireframePoint(depthBuf, p3, WireframePoint, wireframePointRadius)
	}

	return depthBuf.Bitmap()
}
