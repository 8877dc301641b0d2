package vecmath

// Mat3 is a row-major 3x3 matrix, used for rotating plain V3 directions
// (Euler rotation of the light, the camera's Euler angles) where a
// homogeneous row isn't needed.
type Mat3 struct {
	M [3][3]float32
}

// Mat4 is a row-major 4x4 matrix. Multiplication is the standard
// triple-loop definition; matrix * V4 applies the full row including W.
type Mat4 struct {
	M [4][4]float32
}

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{M: [3][3]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{M: [4][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// Mul multiplies two Mat3.
func (a Mat3) Mul(b Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += a.M[i][k] * b.M[k][j]
			}
			r.M[i][j] = sum
		}
	}
	return r
}

// MulV3 transforms a V3 by a, ignoring translation (there is none in a
// Mat3).
func (a Mat3) MulV3(v V3) V3 {
	return V3{
		X: a.M[0][0]*v.X + a.M[0][1]*v.Y + a.M[0][2]*v.Z,
		Y: a.M[1][0]*v.X + a.M[1][1]*v.Y + a.M[1][2]*v.Z,
		Z: a.M[2][0]*v.X + a.M[2][1]*v.Y + a.M[2][2]*v.Z,
	}
}

// Mul multiplies two Mat4 using the standard triple-loop definition.
func (a Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a.M[i][k] * b.M[k][j]
			}
			r.M[i][j] = sum
		}
	}
	return r
}

// MulV4 applies the full 4x4 (including the w row) and returns a V4.
func (a Mat4) MulV4(v V4) V4 {
	return V4{
		X: a.M[0][0]*v.X + a.M[0][1]*v.Y + a.M[0][2]*v.Z + a.M[0][3]*v.W,
		Y: a.M[1][0]*v.X + a.M[1][1]*v.Y + a.M[1][2]*v.Z + a.M[1][3]*v.W,
		Z: a.M[2][0]*v.X + a.M[2][1]*v.Y + a.M[2][2]*v.Z + a.M[2][3]*v.W,
		W: a.M[3][0]*v.X + a.M[3][1]*v.Y + a.M[3][2]*v.Z + a.M[3][3]*v.W,
	}
}

// MulDirection applies only the 3x3 rotation/scale block of a, treating
// v as a direction (w=0, translation has no effect).
func (a Mat4) MulDirection(v V3) V3 {
	return V3{
		X: a.M[0][0]*v.X + a.M[0][1]*v.Y + a.M[0][2]*v.Z,
		Y: a.M[1][0]*v.X + a.M[1][1]*v.Y + a.M[1][2]*v.Z,
		Z: a.M[2][0]*v.X + a.M[2][1]*v.Y + a.M[2][2]*v.Z,
	}
}
