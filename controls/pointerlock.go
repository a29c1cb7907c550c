// Package controls implements first-person pointer-lock look controls.
package controls

import (
	"glitch-corridor/math"
	"glitch-corridor/scene"
)

// lookScale converts pointer pixels to radians at PointerSpeed 1.
const lookScale = 0.002

// Cursor is the platform side of pointer lock.
type Cursor interface {
	LockCursor()
	UnlockCursor()
}

// PointerLock owns the camera orientation while the pointer is captured.
// Mouse motion only turns the camera while locked.
type PointerLock struct {
	Camera       *scene.Camera
	PointerSpeed float32
	MinPolar     float32
	MaxPolar     float32

	cursor   Cursor
	locked   bool
	onLock   []func()
	onUnlock []func()
}

func NewPointerLock(camera *scene.Camera, cursor Cursor) *PointerLock {
	return &PointerLock{
		Camera:       camera,
		PointerSpeed: 1,
		MinPolar:     0,
		MaxPolar:     math.Pi,
		cursor:       cursor,
	}
}

// OnLock registers a listener fired each time the pointer becomes locked.
func (p *PointerLock) OnLock(fn func()) {
	p.onLock = append(p.onLock, fn)
}

// OnUnlock registers a listener fired each time the pointer is released.
func (p *PointerLock) OnUnlock(fn func()) {
	p.onUnlock = append(p.onUnlock, fn)
}

// Lock captures the pointer. Locking twice is a no-op.
func (p *PointerLock) Lock() {
	if p.locked {
		return
	}
	p.cursor.LockCursor()
	p.locked = true
	for _, fn := range p.onLock {
		fn()
	}
}

// Unlock releases the pointer. Unlocking twice is a no-op.
func (p *PointerLock) Unlock() {
	if !p.locked {
		return
	}
	p.cursor.UnlockCursor()
	p.locked = false
	for _, fn := range p.onUnlock {
		fn()
	}
}

func (p *PointerLock) IsLocked() bool {
	return p.locked
}

// HandleMouseMove turns the camera by a pointer delta in pixels.
func (p *PointerLock) HandleMouseMove(dx, dy float64) {
	if !p.locked {
		return
	}
	yaw := p.Camera.Yaw - float32(dx)*lookScale*p.PointerSpeed
	pitch := p.Camera.Pitch - float32(dy)*lookScale*p.PointerSpeed
	pitch = math.Clamp(pitch, math.Pi/2-p.MaxPolar, math.Pi/2-p.MinPolar)
	p.Camera.SetYawPitch(yaw, pitch)
}

// MoveRight strafes along the camera's horizontal right vector.
func (p *PointerLock) MoveRight(distance float32) {
	right := p.Camera.GetRight()
	p.Camera.SetPosition(p.Camera.Position.AddScaled(right, distance))
}

// MoveForward walks along the camera's facing projected onto the floor,
// so looking up or down never changes height.
func (p *PointerLock) MoveForward(distance float32) {
	forward := math.Vec3Up.Cross(p.Camera.GetRight())
	p.Camera.SetPosition(p.Camera.Position.AddScaled(forward, distance))
}

func (p *PointerLock) Position() math.Vec3 {
	return p.Camera.Position
}

func (p *PointerLock) SetPosition(pos math.Vec3) {
	p.Camera.SetPosition(pos)
}
