package vecmath

import "math"

// Translation builds a 4x4 translation matrix for offset.
func Translation(offset V3) Mat4 {
	m := Identity4()
	m.M[0][3] = offset.X
	m.M[1][3] = offset.Y
	m.M[2][3] = offset.Z
	return m
}

// Rotation builds the 4x4 XYZ Euler rotation matrix for eulerDeg
// (degrees, converted to radians internally). Element formulas follow
// the engine's fixed X-then-Y-then-Z composition.
func Rotation(eulerDeg V3) Mat4 {
	r3 := Rotation3(eulerDeg)
	m := Mat4{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.M[i][j] = r3.M[i][j]
		}
	}
	m.M[3][3] = 1
	return m
}

// Rotation3 is Rotation's 3x3 form, used to rotate plain direction
// vectors (light direction, frustum plane normals) without carrying a
// homogeneous row.
func Rotation3(eulerDeg V3) Mat3 {
	x := float64(DegToRad(eulerDeg.X))
	y := float64(DegToRad(eulerDeg.Y))
	z := float64(DegToRad(eulerDeg.Z))

	sinX, cosX := math.Sincos(x)
	sinY, cosY := math.Sincos(y)
	sinZ, cosZ := math.Sincos(z)

	var m Mat3
	m.M[0][0] = float32(cosY * cosZ)
	m.M[0][1] = float32(sinX*sinY*cosZ - cosX*sinZ)
	m.M[0][2] = float32(cosX*sinY*cosZ + sinX*sinZ)

	m.M[1][0] = float32(cosY * sinZ)
	m.M[1][1] = float32(sinX*sinY*sinZ + cosX*cosZ)
	m.M[1][2] = float32(cosX*sinY*sinZ - sinX*cosZ)

	m.M[2][0] = float32(-sinY)
	m.M[2][1] = float32(sinX * cosY)
	m.M[2][2] = float32(cosX * cosY)

	return m
}

// Perspective builds a z-forward (left-handed) projection matrix
// mapping [zNear, zFar] to post-divide z in [0,1], with post-multiply
// w = z_camera (row 3 is (0,0,1,0)).
func Perspective(verticalFovDeg, aspect, zNear, zFar float32) Mat4 {
	halfFov := float64(DegToRad(verticalFovDeg)) / 2
	tanHalfFov := float32(math.Tan(halfFov))

	var m Mat4
	m.M[0][0] = 1 / (tanHalfFov * aspect)
	m.M[1][1] = 1 / tanHalfFov
	m.M[2][2] = zFar / (zFar - zNear)
	m.M[2][3] = -zFar * zNear / (zFar - zNear)
	m.M[3][2] = 1
	return m
}
