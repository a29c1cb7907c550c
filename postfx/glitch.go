// Package postfx holds the CPU side of full-screen effects: uniform sets
// and reference implementations of the fragment programs.
package postfx

import (
	stdmath "math"

	"glitch-corridor/core"
	"glitch-corridor/math"
)

// GlitchUniforms mirrors the glitch fragment program's uniforms.
// Only Time changes per frame.
type GlitchUniforms struct {
	Bypass      bool // pass the source through untouched
	Time        float32
	Amount      float32
	Angle       float32
	Seed        float32
	DistortionX float32
	DistortionY float32
	ColS        float32
}

func DefaultGlitchUniforms() *GlitchUniforms {
	return &GlitchUniforms{
		Amount:      0.005,
		Angle:       0.02,
		Seed:        0.02,
		DistortionX: 0.1,
		DistortionY: 0.1,
		ColS:        0.05,
	}
}

// SetTime stores the elapsed session time in seconds.
func (u *GlitchUniforms) SetTime(seconds float32) {
	u.Time = seconds
}

// Sampler returns the source color at a UV coordinate.
type Sampler interface {
	Sample(uv math.Vec2) core.Color
}

// SamplerFunc adapts a function to Sampler.
type SamplerFunc func(uv math.Vec2) core.Color

func (f SamplerFunc) Sample(uv math.Vec2) core.Color { return f(uv) }

// Rand is the shader's hash: fract(sin(dot(n, (12.9898, 4.1414))) * 43758.5453).
func Rand(n math.Vec2) float32 {
	d := float64(n.X)*12.9898 + float64(n.Y)*4.1414
	return math.Fract(float32(stdmath.Sin(d) * 43758.5453))
}

// Shade evaluates the glitch program for one pixel. It matches the GLSL
// in internal/opengl step for step.
func (u *GlitchUniforms) Shade(src Sampler, uv math.Vec2) core.Color {
	if u.Bypass {
		return src.Sample(uv)
	}

	p := uv
	ty := u.Time * 0.1
	grain := Rand(uv.AddScalar(ty)) * 0.1

	vjitter := Rand(math.NewVec2(ty, 0)) * u.DistortionY * u.Amount
	p.Y += vjitter
	hjitter := Rand(math.NewVec2(0, ty)) * u.DistortionX * u.Amount

	rb := Rand(p.AddScalar(hjitter)) * u.ColS * u.Amount
	gb := Rand(p.AddScalar(-hjitter)) * u.ColS * u.Amount

	r := src.Sample(math.NewVec2(p.X+rb, p.Y)).R
	g := src.Sample(math.NewVec2(p.X-gb, p.Y)).G
	b := src.Sample(p).B

	intensity := 0.8 + math.Sin(p.Y*600+ty*10)*0.02*u.Amount
	color := core.Color{R: r * intensity, G: g * intensity, B: b * intensity, A: 1}

	if u.Amount <= 0 {
		return color
	}

	color.R += grain
	color.G += grain
	color.B += grain

	if Rand(math.NewVec2(float32(stdmath.Floor(float64(ty*5))), 0)) > 0.95 {
		size := Rand(math.NewVec2(ty*10, 0))*0.1 + 0.01
		if Rand(p) > 0.1 {
			block := p.Mul(1 / size).Floor().Mul(size)
			block = block.AddScalar(Rand(block)*size*0.5 - size*0.25)
			if block.Sub(p).Length() < size*0.9 {
				color = src.Sample(block)
			}
		}
	}
	return color
}
