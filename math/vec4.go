package math

type Vec4 struct {
	X, Y, Z, W float32
}

// MulMat treats v as a row vector: v * m.
func (v Vec4) MulMat(m Mat4) Vec4 {
	var out [4]float32
	in := [4]float32{v.X, v.Y, v.Z, v.W}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col] += in[row] * m[row][col]
		}
	}
	return Vec4{X: out[0], Y: out[1], Z: out[2], W: out[3]}
}

func (v Vec4) ToVec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}
