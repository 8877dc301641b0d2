// Package raster holds the depth buffer and the per-pixel drawing
// primitives: triangle fill, wireframe line walk, and point splat. It
// works entirely in normalized device coordinates after projection.
package raster

import "github.com/kestrelgfx/rastercore/vecmath"

// Color is an RGBA8 pixel; the alpha channel is carried but never read
// by the core (always written as 0).
type Color struct {
	R, G, B, A uint8
}

// Lerp blends a toward b by alpha in [0,1], per channel, saturating.
func Lerp(a, b Color, alpha float32) Color {
	alpha = vecmath.Clamp(alpha, 0, 1)
	return Color{
		R: lerpChannel(a.R, b.R, alpha),
		G: lerpChannel(a.G, b.G, alpha),
		B: lerpChannel(a.B, b.B, alpha),
		A: lerpChannel(a.A, b.A, alpha),
	}
}

func lerpChannel(a, b uint8, alpha float32) uint8 {
	v := float32(a)*(1-alpha) + float32(b)*alpha
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v + 0.5)
}
