// Package movement integrates damped first-person walking inside the
// corridor's bounds.
package movement

import (
	"glitch-corridor/input"
	"glitch-corridor/math"
)

const (
	// MoveSpeed is the steady-state walking speed in units per second.
	MoveSpeed = 5.0
	// Damping is the fraction of velocity shed per second.
	Damping = 10.0
	// Acceleration scales input thrust so steady state equals MoveSpeed.
	Acceleration = 10.0
	// WallMargin keeps the eye off the walls.
	WallMargin = 0.5
)

// Rig is what the integrator moves: a yaw-relative, level walker.
type Rig interface {
	MoveRight(distance float32)
	MoveForward(distance float32)
	Position() math.Vec3
	SetPosition(math.Vec3)
}

// Bounds limits the rig's X and Z.
type Bounds struct {
	MinX, MaxX float32
	MinZ, MaxZ float32
}

// CorridorBounds returns the walkable area for a corridor of the given
// width and length made of segments segments, starting at z = 0 and
// running towards -Z.
func CorridorBounds(width, length float32, segments int) Bounds {
	return Bounds{
		MinX: -width/2 + WallMargin,
		MaxX: width/2 + WallMargin,
		MinZ: -float32(segments)*length + 1,
		MaxZ: WallMargin,
	}
}

func (b Bounds) Clamp(p math.Vec3) math.Vec3 {
	p.X = math.Clamp(p.X, b.MinX, b.MaxX)
	p.Z = math.Clamp(p.Z, b.MinZ, b.MaxZ)
	return p
}

func (b Bounds) Contains(p math.Vec3) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Z >= b.MinZ && p.Z <= b.MaxZ
}

// Integrator carries horizontal velocity between frames. Velocity.X is the
// strafe component and Velocity.Y the forward (Z) component, both with
// "forward is negative" sign so Step can subtract input thrust.
type Integrator struct {
	Velocity  math.Vec2
	MoveSpeed float32
	Bounds    Bounds
}

func NewIntegrator(bounds Bounds) *Integrator {
	return &Integrator{MoveSpeed: MoveSpeed, Bounds: bounds}
}

// Step advances one frame of delta seconds. Callers run it only while the
// pointer is locked.
func (it *Integrator) Step(delta float32, in input.State, rig Rig) {
	it.Velocity = it.Velocity.Sub(it.Velocity.Mul(Damping * delta))

	z, x := in.Axes()
	dir := math.NewVec2(x, z).Normalize()

	if in.Forward || in.Backward {
		it.Velocity.Y -= dir.Y * it.MoveSpeed * delta * Acceleration
	}
	if in.Left || in.Right {
		it.Velocity.X -= dir.X * it.MoveSpeed * delta * Acceleration
	}

	rig.MoveRight(-it.Velocity.X * delta)
	rig.MoveForward(-it.Velocity.Y * delta)

	rig.SetPosition(it.Bounds.Clamp(rig.Position()))
}

// Reset stops all motion.
func (it *Integrator) Reset() {
	it.Velocity = math.Vec2Zero
}

// Speed returns the current horizontal speed.
func (it *Integrator) Speed() float32 {
	return it.Velocity.Length()
}
