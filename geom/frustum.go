package geom

import (
	"math"

	"github.com/kestrelgfx/rastercore/vecmath"
)

// ClipOrder is the fixed plane sequence multi-plane clipping runs
// against, one pass per plane, output feeding the next.
var ClipOrder = []string{"near", "far", "left", "right", "bottom", "top"}

// BuildFrustumPlanes returns the six camera-space view-frustum planes
// in ClipOrder: near, far, left, right, bottom, top.
func BuildFrustumPlanes(verticalFovDeg, aspect, zNear, zFar float32) [6]Plane {
	tanHalfVFov := math.Tan(float64(vecmath.DegToRad(verticalFovDeg)) / 2)
	halfHorizontalFov := float32(math.Atan(tanHalfVFov*float64(aspect))) * 180 / float32(math.Pi)
	forward := vecmath.V3{Z: 1}
	origin := vecmath.V3{}

	left := vecmath.Rotation3(vecmath.V3{Y: 90 - halfHorizontalFov}).MulV3(forward)
	right := vecmath.Rotation3(vecmath.V3{Y: -(90 - halfHorizontalFov)}).MulV3(forward)
	bottom := vecmath.Rotation3(vecmath.V3{X: -(90 - verticalFovDeg/2)}).MulV3(forward)
	top := vecmath.Rotation3(vecmath.V3{X: 90 - verticalFovDeg/2}).MulV3(forward)

	return [6]Plane{
		NewPlane(vecmath.V3{Z: zNear}, vecmath.V3{Z: 1}),
		NewPlane(vecmath.V3{Z: zFar}, vecmath.V3{Z: -1}),
		NewPlane(origin, left),
		NewPlane(origin, right),
		NewPlane(origin, bottom),
		NewPlane(origin, top),
	}
}
