package math

import "math"

const Pi = float32(math.Pi)

func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func Radians(deg float32) float32 {
	return deg * Pi / 180
}

func Sin(a float32) float32 { return float32(math.Sin(float64(a))) }

func Cos(a float32) float32 { return float32(math.Cos(float64(a))) }

// Fract returns the fractional part of v as GLSL fract does (always in [0,1)).
func Fract(v float32) float32 {
	return v - float32(math.Floor(float64(v)))
}
