package math

import "math"

// Vec2 doubles as a planar XZ vector for ground movement.
type Vec2 struct {
	X, Y float32
}

var Vec2Zero = Vec2{0, 0}

func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vec2) Mul(scalar float32) Vec2 {
	return Vec2{X: v.X * scalar, Y: v.Y * scalar}
}

func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

func (v Vec2) Normalize() Vec2 {
	if l := v.Length(); l > 0 {
		return v.Mul(1 / l)
	}
	return v
}

func (v Vec2) Floor() Vec2 {
	return Vec2{X: float32(math.Floor(float64(v.X))), Y: float32(math.Floor(float64(v.Y)))}
}

func (v Vec2) AddScalar(s float32) Vec2 {
	return Vec2{X: v.X + s, Y: v.Y + s}
}
