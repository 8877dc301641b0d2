package raster

import "github.com/kestrelgfx/rastercore/vecmath"

// FillTriangle rasterizes a single NDC-space triangle (x,y in
// [-1,+1], z in [0,1]) into d, applying a small depth bias so a
// wireframe drawn afterward at the true z always wins the Z-test.
func FillTriangle(d *DepthBuffer, p1, p2, p3 vecmath.V4, color Color) {
	e12 := p2.Sub(p1)
	e13 := p3.Sub(p1)
	if vecmath.CrossLen2D(e12, e13) > 0 {
		p1, p2 = p2, p1
	}

	xMin, xMax := minMax3(p1.X, p2.X, p3.X)
	yMin, yMax := minMax3(p1.Y, p2.Y, p3.Y)

	pxMin := ndcToPixelX(xMin, d.width)
	pxMax := ndcToPixelX(xMax, d.width)
	pyMin := ndcToPixelY(yMin, d.height)
	pyMax := ndcToPixelY(yMax, d.height)

	if pxMax == pxMin || pyMax == pyMin {
		return
	}

	trArea := vecmath.CrossLen2D(p2.Sub(p1), p3.Sub(p2))
	if trArea == 0 {
		return
	}

	xStep := (xMax - xMin) / float32(pxMax-pxMin)
	yStep := (yMax - yMin) / float32(pyMax-pyMin)

	y := yMin
	for py := pyMin; py <= pyMax; py++ {
		x := xMin
		for px := pxMin; px <= pxMax; px++ {
			q := vecmath.V4{X: x, Y: y}
			t3 := vecmath.CrossLen2D(p2.Sub(p1), q.Sub(p1)) / trArea
			t1 := vecmath.CrossLen2D(p3.Sub(p2), q.Sub(p2)) / trArea
			t2 := vecmath.CrossLen2D(p1.Sub(p3), q.Sub(p3)) / trArea
			if t1 >= 0 && t2 >= 0 && t3 >= 0 {
				// t1*p1.Z + t2*p2.Z + t3*p3.Z, taken relative to p1 so a
				// constant-depth triangle yields exactly p1.Z whatever its
				// vertex order, keeping equal-depth ties exact.
				z := p1.Z + t2*(p2.Z-p1.Z) + t3*(p3.Z-p1.Z)
				z += 0.01*(1-z) + 1e-6
				d.SetNDCPixel(x, y, DepthCell{Color: color, Depth: z})
			}
			x += xStep
		}
		y += yStep
	}
}

func minMax3(a, b, c float32) (float32, float32) {
	lo, hi := a, a
	for _, v := range [2]float32{b, c} {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func ndcToPixelX(nx float32, width int) int {
	return roundHalfAwayFromZero((nx + 1) / 2 * float32(width))
}

func ndcToPixelY(ny float32, height int) int {
	return roundHalfAwayFromZero((ny + 1) / 2 * float32(height))
}
