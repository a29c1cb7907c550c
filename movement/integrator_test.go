package movement

import (
	"math/rand"
	"testing"

	"glitch-corridor/input"
	"glitch-corridor/math"
)

// walker faces -Z with no yaw.
type walker struct {
	pos math.Vec3
}

func (w *walker) MoveRight(d float32)     { w.pos.X += d }
func (w *walker) MoveForward(d float32)   { w.pos.Z -= d }
func (w *walker) Position() math.Vec3     { return w.pos }
func (w *walker) SetPosition(p math.Vec3) { w.pos = p }

func defaultBounds() Bounds {
	return CorridorBounds(4, 15, 2)
}

func TestCorridorBounds(t *testing.T) {
	b := defaultBounds()
	want := Bounds{MinX: -1.5, MaxX: 2.5, MinZ: -29, MaxZ: 0.5}
	if b != want {
		t.Errorf("expected %+v, got %+v", want, b)
	}
}

func TestDampingNeverIncreasesSpeed(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		it := NewIntegrator(defaultBounds())
		it.Velocity = math.NewVec2(rng.Float32()*20-10, rng.Float32()*20-10)
		w := &walker{pos: math.NewVec3(0, 1.6, -10)}
		delta := rng.Float32() * 0.1

		before := it.Speed()
		it.Step(delta, input.State{}, w)
		if after := it.Speed(); after > before+1e-5 {
			t.Fatalf("delta %v: speed grew from %v to %v", delta, before, after)
		}
	}
}

func TestForwardReachesSteadyState(t *testing.T) {
	it := NewIntegrator(defaultBounds())
	w := &walker{pos: math.NewVec3(0, 1.6, 0)}
	held := input.State{Forward: true}

	for i := 0; i < 1000; i++ {
		it.Step(1.0/60, held, w)
		if v := math.Abs(it.Velocity.Y); v >= MoveSpeed*1.01 {
			t.Fatalf("frame %d: |v.z| = %v overshoots", i, v)
		}
	}
	if math.Abs(it.Velocity.Y+MoveSpeed) > 1e-3 {
		t.Errorf("expected v.z near -%v, got %v", MoveSpeed, it.Velocity.Y)
	}
	// 1000 frames at 5 u/s walks far past the end wall.
	if w.pos.Z != -29 {
		t.Errorf("expected to stop at the far bound, got z = %v", w.pos.Z)
	}
}

func TestDiagonalIsNormalized(t *testing.T) {
	it := NewIntegrator(defaultBounds())
	w := &walker{pos: math.NewVec3(0, 1.6, -10)}
	for i := 0; i < 600; i++ {
		it.Step(1.0/60, input.State{Forward: true, Right: true}, w)
	}
	if s := it.Speed(); math.Abs(s-MoveSpeed) > 1e-2 {
		t.Errorf("diagonal steady speed should be %v, got %v", MoveSpeed, s)
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	it := NewIntegrator(defaultBounds())
	w := &walker{pos: math.NewVec3(0, 1.6, -10)}
	it.Step(1.0/60, input.State{Forward: true, Backward: true}, w)
	if it.Velocity != math.Vec2Zero || w.pos != math.NewVec3(0, 1.6, -10) {
		t.Errorf("opposing keys must not move, got v %v pos %v", it.Velocity, w.pos)
	}
}

func TestPositionStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	it := NewIntegrator(defaultBounds())
	w := &walker{pos: math.NewVec3(0, 1.6, 0)}

	for i := 0; i < 5000; i++ {
		in := input.State{
			Forward:  rng.Intn(2) == 0,
			Backward: rng.Intn(3) == 0,
			Left:     rng.Intn(2) == 0,
			Right:    rng.Intn(3) == 0,
		}
		it.Step(rng.Float32()*0.1, in, w)
		if !it.Bounds.Contains(w.pos) {
			t.Fatalf("step %d: %v left the corridor", i, w.pos)
		}
		if w.pos.X < -1.5 || w.pos.X > 2.5 || w.pos.Z < -29 || w.pos.Z > 0.5 {
			t.Fatalf("step %d: %v outside x[-1.5,2.5] z[-29,0.5]", i, w.pos)
		}
	}
}

func TestStrafeDirection(t *testing.T) {
	it := NewIntegrator(defaultBounds())
	w := &walker{pos: math.NewVec3(0, 1.6, -10)}
	for i := 0; i < 10; i++ {
		it.Step(1.0/60, input.State{Right: true}, w)
	}
	if w.pos.X <= 0 {
		t.Errorf("holding right should move +X, got %v", w.pos)
	}
	for i := 0; i < 10; i++ {
		it.Step(1.0/60, input.State{Backward: true}, w)
	}
	if w.pos.Z <= -10 {
		t.Errorf("holding back should move +Z eventually, got %v", w.pos)
	}
}

func TestReset(t *testing.T) {
	it := NewIntegrator(defaultBounds())
	it.Velocity = math.NewVec2(3, -4)
	it.Reset()
	if it.Speed() != 0 {
		t.Errorf("Reset must stop motion, got %v", it.Velocity)
	}
}
