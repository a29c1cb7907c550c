package core

import (
	"testing"

	"glitch-corridor/math"
)

func TestHexRoundTrip(t *testing.T) {
	for _, v := range []uint32{0x000000, 0xffffff, 0x888888, 0x606070, 0xffffee, 0x050505} {
		if got := Hex(v).Hex(); got != v {
			t.Errorf("Hex(%06x).Hex(): got %06x", v, got)
		}
	}
	c := Hex(0xff8000)
	if c.R != 1 || c.B != 0 || c.A != 1 {
		t.Errorf("Hex(0xff8000): unexpected channels %+v", c)
	}
}

func TestTransformMatrix(t *testing.T) {
	tr := NewTransform()
	tr.Position = math.NewVec3(0, 3, 0)
	tr.Rotation = math.QuaternionFromAxisAngle(math.Vec3Right, math.Pi/2)

	// A +Z normal flips to -Y, as for a ceiling plane.
	n := tr.GetMatrix().TransformDirection(math.Vec3Front)
	if !n.ApproxEqual(math.NewVec3(0, -1, 0), 1e-5) {
		t.Errorf("expected downward normal, got %v", n)
	}
	p := tr.GetMatrix().TransformPoint(math.Vec3Zero)
	if p != tr.Position {
		t.Errorf("expected origin at %v, got %v", tr.Position, p)
	}
}
