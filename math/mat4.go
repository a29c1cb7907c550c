package math

import "math"

// Mat4 is row-major and composes left to right: a point p is transformed
// as p * M, so Scale.Mul(Rotation).Mul(Translation) scales first.
// The array is uploaded to GL as-is (transpose = false).
type Mat4 [4][4]float32

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[i][k] * other[k][j]
			}
			result[i][j] = sum
		}
	}
	return result
}

// TransformPoint applies m to p with w = 1.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return p.ToVec4(1).MulMat(m).ToVec3()
}

// TransformDirection applies m to d with w = 0.
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return d.ToVec4(0).MulMat(m).ToVec3()
}

// Translation returns the translation row.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[3][0], m[3][1], m[3][2]}
}

// Ptr returns the address of the first element for gl.UniformMatrix4fv.
func (m *Mat4) Ptr() *float32 {
	return &m[0][0]
}

func Mat4Translation(translation Vec3) Mat4 {
	m := Mat4Identity()
	m[3][0] = translation.X
	m[3][1] = translation.Y
	m[3][2] = translation.Z
	return m
}

func Mat4Scale(scale Vec3) Mat4 {
	m := Mat4Identity()
	m[0][0] = scale.X
	m[1][1] = scale.Y
	m[2][2] = scale.Z
	return m
}

func Mat4RotationX(angle float32) Mat4 {
	c, s := Cos(angle), Sin(angle)
	return Mat4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationY(angle float32) Mat4 {
	c, s := Cos(angle), Sin(angle)
	return Mat4{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// Mat4Compose builds scale, then rotation, then translation.
func Mat4Compose(position Vec3, rotation Quaternion, scale Vec3) Mat4 {
	return Mat4Scale(scale).Mul(rotation.ToMat4()).Mul(Mat4Translation(position))
}

// Mat4Perspective maps camera space (looking down -Z) to GL clip space.
func Mat4Perspective(fovY, aspect, near, far float32) Mat4 {
	f := float32(1 / math.Tan(float64(fovY)/2))
	var m Mat4
	m[0][0] = f / aspect
	m[1][1] = f
	m[2][2] = -(far + near) / (far - near)
	m[2][3] = -1
	m[3][2] = -(2 * far * near) / (far - near)
	return m
}

// Upper3x3 returns the rotation/scale block padded to a Mat4, used for normals
// when the model matrix carries no non-uniform scale.
func (m Mat4) Upper3x3() Mat4 {
	r := Mat4Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][j]
		}
	}
	return r
}
