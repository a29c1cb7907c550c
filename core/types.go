package core

import (
	"glitch-corridor/math"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// Hex builds an opaque color from a 0xRRGGBB value.
func Hex(rgb uint32) Color {
	return Color{
		R: float32((rgb>>16)&0xff) / 255,
		G: float32((rgb>>8)&0xff) / 255,
		B: float32(rgb&0xff) / 255,
		A: 1,
	}
}

// Hex returns the 0xRRGGBB value of c, rounding each channel.
func (c Color) Hex() uint32 {
	ch := func(v float32) uint32 {
		return uint32(math.Clamp(v, 0, 1)*255 + 0.5)
	}
	return ch(c.R)<<16 | ch(c.G)<<8 | ch(c.B)
}

func (c Color) Scale(s float32) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
}

type Transform struct {
	Position math.Vec3
	Rotation math.Quaternion
	Scale    math.Vec3
}

func NewTransform() Transform {
	return Transform{
		Position: math.Vec3Zero,
		Rotation: math.QuaternionIdentity(),
		Scale:    math.Vec3One,
	}
}

func (t Transform) GetMatrix() math.Mat4 {
	return math.Mat4Compose(t.Position, t.Rotation, t.Scale)
}

func (t Transform) GetRight() math.Vec3 {
	return t.Rotation.RotateVector(math.Vec3Right)
}
