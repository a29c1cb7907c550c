package math

import (
	"math"
	"testing"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	result = v1.AddScaled(v2, 2)
	expected = NewVec3(9, 12, 15)
	if result != expected {
		t.Errorf("AddScaled: expected %v, got %v", expected, result)
	}

	dot := v1.Dot(v2)
	if dot != 32 {
		t.Errorf("Dot: expected 32, got %v", dot)
	}

	// Right x Up = Front in a right-handed system
	cross := Vec3Right.Cross(Vec3Up)
	if cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}
}

func TestVec2Normalize(t *testing.T) {
	n := NewVec2(3, 4).Normalize()
	if math.Abs(float64(n.Length()-1)) > 1e-6 {
		t.Errorf("Normalize: expected unit length, got %v", n.Length())
	}
	if z := Vec2Zero.Normalize(); z != Vec2Zero {
		t.Errorf("Normalize: zero vector must stay zero, got %v", z)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float32
	}{
		{0, -1, 1, 0},
		{-5, -1, 1, -1},
		{5, -1, 1, 1},
		{1, -1, 1, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v): expected %v, got %v", tt.v, tt.lo, tt.hi, tt.want, got)
		}
	}
}

func TestFract(t *testing.T) {
	if got := Fract(2.25); got != 0.25 {
		t.Errorf("Fract(2.25): expected 0.25, got %v", got)
	}
	if got := Fract(-0.25); got != 0.75 {
		t.Errorf("Fract(-0.25): expected 0.75, got %v", got)
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if m[i][j] != expected {
				t.Errorf("Identity: expected [%d][%d] = %v, got %v", i, j, expected, m[i][j])
			}
		}
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	if m.Translation() != translation {
		t.Errorf("Translation: expected %v, got %v", translation, m.Translation())
	}
	if got := m.TransformPoint(Vec3Zero); got != translation {
		t.Errorf("TransformPoint: expected %v, got %v", translation, got)
	}
	if got := m.TransformDirection(Vec3Up); got != Vec3Up {
		t.Errorf("TransformDirection: translation must not move directions, got %v", got)
	}
}

func TestMat4ComposeOrder(t *testing.T) {
	// Scale, then rotate +90 degrees about Y, then translate.
	m := Mat4Compose(NewVec3(10, 0, 0), QuaternionFromAxisAngle(Vec3Up, Pi/2), NewVec3(2, 2, 2))
	got := m.TransformPoint(Vec3Right)
	expected := NewVec3(10, 0, -2)
	if !got.ApproxEqual(expected, 1e-5) {
		t.Errorf("Compose: expected %v, got %v", expected, got)
	}
}

func TestQuaternionMatchesMatrix(t *testing.T) {
	angles := []float32{-Pi / 2, Pi / 2, 0.3, 2.5}
	for _, a := range angles {
		q := QuaternionFromAxisAngle(Vec3Right, a)
		viaQuat := q.RotateVector(NewVec3(0, 0, 1))
		viaMat := Mat4RotationX(a).TransformDirection(NewVec3(0, 0, 1))
		if !viaQuat.ApproxEqual(viaMat, 1e-5) {
			t.Errorf("angle %v: quaternion %v, matrix %v", a, viaQuat, viaMat)
		}
		viaToMat := q.ToMat4().TransformDirection(NewVec3(0, 0, 1))
		if !viaToMat.ApproxEqual(viaMat, 1e-5) {
			t.Errorf("angle %v: ToMat4 %v, matrix %v", a, viaToMat, viaMat)
		}
	}
}

func TestQuaternionRotation(t *testing.T) {
	// +90 degrees about Y takes +X to -Z.
	q := QuaternionFromAxisAngle(Vec3Up, Pi/2)
	result := q.RotateVector(Vec3Right)
	if !result.ApproxEqual(NewVec3(0, 0, -1), 1e-3) {
		t.Errorf("Quaternion rotation: expected approximately (0,0,-1), got %v", result)
	}
}

func TestQuaternionFromYawPitch(t *testing.T) {
	// Looking up 45 degrees after turning left 90 degrees.
	q := QuaternionFromYawPitch(Pi/2, Pi/4)
	look := q.RotateVector(Vec3Forward)
	s := float32(math.Sqrt2 / 2)
	expected := NewVec3(-s, s, 0)
	if !look.ApproxEqual(expected, 1e-5) {
		t.Errorf("YawPitch: expected %v, got %v", expected, look)
	}
}

func TestMat4Perspective(t *testing.T) {
	m := Mat4Perspective(Pi/2, 2, 1, 10)

	near := NewVec3(0, 0, -1).ToVec4(1).MulMat(m)
	if d := near.Z / near.W; math.Abs(float64(d+1)) > 1e-5 {
		t.Errorf("Perspective: near plane should map to -1, got %v", d)
	}
	far := NewVec3(0, 0, -10).ToVec4(1).MulMat(m)
	if d := far.Z / far.W; math.Abs(float64(d-1)) > 1e-5 {
		t.Errorf("Perspective: far plane should map to 1, got %v", d)
	}
	if m[0][0] != m[1][1]/2 {
		t.Errorf("Perspective: aspect not applied, got %v and %v", m[0][0], m[1][1])
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4RotationX(0.5)
	m2 := Mat4RotationY(0.25)
	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}
