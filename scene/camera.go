package scene

import (
	"glitch-corridor/math"
)

// Camera is a perspective first-person camera. Orientation is yaw about
// world Y followed by pitch about local X; roll is never applied.
type Camera struct {
	Position    math.Vec3
	Yaw         float32
	Pitch       float32
	FOV         float32 // vertical, radians
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	viewMatrix       math.Mat4
	projectionMatrix math.Mat4
	dirty            bool
}

func NewCamera(fov, aspectRatio, nearPlane, farPlane float32) *Camera {
	return &Camera{
		FOV:         fov,
		AspectRatio: aspectRatio,
		NearPlane:   nearPlane,
		FarPlane:    farPlane,
		dirty:       true,
	}
}

// NewViewportCamera sizes the projection from a framebuffer. A zero
// dimension, as with a minimized window, keeps a square aspect until the
// first resize.
func NewViewportCamera(fov float32, width, height int, nearPlane, farPlane float32) *Camera {
	c := NewCamera(fov, 1, nearPlane, farPlane)
	c.UpdateAspectRatio(float32(width), float32(height))
	return c
}

func (c *Camera) UpdateAspectRatio(width, height float32) {
	if width > 0 && height > 0 {
		c.AspectRatio = width / height
		c.dirty = true
	}
}

func (c *Camera) SetPosition(pos math.Vec3) {
	c.Position = pos
	c.dirty = true
}

func (c *Camera) SetYawPitch(yaw, pitch float32) {
	c.Yaw = yaw
	c.Pitch = pitch
	c.dirty = true
}

func (c *Camera) Rotation() math.Quaternion {
	return math.QuaternionFromYawPitch(c.Yaw, c.Pitch)
}

// GetForward is the view direction, including pitch.
func (c *Camera) GetForward() math.Vec3 {
	return c.Rotation().RotateVector(math.Vec3Forward)
}

// GetRight is always horizontal.
func (c *Camera) GetRight() math.Vec3 {
	return c.Rotation().RotateVector(math.Vec3Right)
}

func (c *Camera) GetViewMatrix() math.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.viewMatrix
}

func (c *Camera) GetProjectionMatrix() math.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.projectionMatrix
}

func (c *Camera) GetViewProjectionMatrix() math.Mat4 {
	return c.GetViewMatrix().Mul(c.GetProjectionMatrix())
}

func (c *Camera) updateMatrices() {
	// Inverse of pitch-then-yaw-then-translate.
	c.viewMatrix = math.Mat4Translation(c.Position.Negate()).
		Mul(math.Mat4RotationY(-c.Yaw)).
		Mul(math.Mat4RotationX(-c.Pitch))
	c.projectionMatrix = math.Mat4Perspective(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
	c.dirty = false
}
