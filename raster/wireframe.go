package raster

import "github.com/kestrelgfx/rastercore/vecmath"

// WireframeLine walks from p1 to p2 (NDC) with a DDA (not Bresenham)
// incremental walk, dispatching into one of four octants by the sign
// of dy and the dominance of |dx| vs |dy| in pixel space, and emits an
// NDC write with the interpolated (x,y,z) at every step. No depth
// bias is applied; lines beat fills purely because the filler biases
// its own depth away from the camera.
func WireframeLine(d *DepthBuffer, p1, p2 vecmath.V4, color Color) {
	if p1.X > p2.X {
		p1, p2 = p2, p1
	}

	ix1, iy1 := ndcToPixelX(p1.X, d.width), ndcToPixelY(p1.Y, d.height)
	ix2, iy2 := ndcToPixelX(p2.X, d.width), ndcToPixelY(p2.Y, d.height)
	dx, dy := ix2-ix1, iy2-iy1

	ndx, ndy, ndz := p2.X-p1.X, p2.Y-p1.Y, p2.Z-p1.Z

	var steps int
	switch {
	case dy >= 0 && dx >= dy:
		steps = dx
	case dy < 0 && dx >= -dy:
		steps = dx
	case dy >= 0 && dx < dy:
		steps = dy
	default:
		steps = iy1 - iy2
	}

	if steps <= 0 {
		d.SetNDCPixel(p1.X, p1.Y, DepthCell{Color: color, Depth: p1.Z})
		return
	}

	xInc := ndx / float32(steps)
	yInc := ndy / float32(steps)
	zInc := ndz / float32(steps)

	x, y, z := p1.X, p1.Y, p1.Z
	for i := 0; i <= steps; i++ {
		d.SetNDCPixel(x, y, DepthCell{Color: color, Depth: z})
		x += xInc
		y += yInc
		z += zInc
	}
}

// WireframePoint splats a (2r+1)x(2r+1) block of color around v's
// pixel position, clamped to the buffer, using v's NDC z as depth.
func WireframePoint(d *DepthBuffer, v vecmath.V4, color Color, r int) {
	cx := ndcToPixelX(v.X, d.width)
	cy := ndcToPixelY(v.Y, d.height)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d.SetPixel(cx+dx, cy+dy, DepthCell{Color: color, Depth: v.Z})
		}
	}
}
