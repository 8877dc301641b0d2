// Package scene defines the read-only per-frame snapshot the render
// driver consumes: camera, directional light, and the list of objects
// to draw. Nothing in this package mutates; the driver borrows a
// Scene for the duration of one frame.
package scene

import (
	"github.com/kestrelgfx/rastercore/geom"
	"github.com/kestrelgfx/rastercore/vecmath"
)

// Camera is the viewpoint: position and Euler rotation (degrees) in
// world space, plus the perspective parameters.
type Camera struct {
	Position       vecmath.V3
	Rotation       vecmath.V3
	VerticalFovDeg float32
	ZNear, ZFar    float32
}

// Object is a mesh instance placed in world space.
type Object struct {
	Mesh     *geom.Mesh
	Position vecmath.V3
	Rotation vecmath.V3
}

// Scene is the read-only snapshot handed to the render driver once
// per frame.
type Scene struct {
	Camera              Camera
	DirectionalLightRot vecmath.V3
	Objects             []Object
}
