package controls

import (
	"testing"

	"glitch-corridor/math"
	"glitch-corridor/scene"
)

type fakeCursor struct {
	locks, unlocks int
}

func (f *fakeCursor) LockCursor()   { f.locks++ }
func (f *fakeCursor) UnlockCursor() { f.unlocks++ }

func newControls() (*PointerLock, *fakeCursor) {
	cam := scene.NewCamera(math.Radians(70), 1, 0.1, 1000)
	cam.SetPosition(math.NewVec3(0, 1.6, 0))
	cur := &fakeCursor{}
	return NewPointerLock(cam, cur), cur
}

func TestLockUnlockEvents(t *testing.T) {
	pl, cur := newControls()
	var locks, unlocks int
	pl.OnLock(func() { locks++ })
	pl.OnUnlock(func() { unlocks++ })

	pl.Unlock()
	if unlocks != 0 || cur.unlocks != 0 {
		t.Error("unlock while unlocked must be a no-op")
	}
	pl.Lock()
	pl.Lock()
	if !pl.IsLocked() || locks != 1 || cur.locks != 1 {
		t.Errorf("expected one lock, got listener %d cursor %d", locks, cur.locks)
	}
	pl.Unlock()
	if pl.IsLocked() || unlocks != 1 || cur.unlocks != 1 {
		t.Errorf("expected one unlock, got listener %d cursor %d", unlocks, cur.unlocks)
	}
}

func TestMouseLookOnlyWhileLocked(t *testing.T) {
	pl, _ := newControls()
	pl.HandleMouseMove(100, 100)
	if pl.Camera.Yaw != 0 || pl.Camera.Pitch != 0 {
		t.Fatal("unlocked pointer must not turn the camera")
	}

	pl.Lock()
	pl.HandleMouseMove(100, 0)
	if math.Abs(pl.Camera.Yaw+0.2) > 1e-6 {
		t.Errorf("moving right should turn right (negative yaw), got %v", pl.Camera.Yaw)
	}

	pl.PointerSpeed = 2
	pl.HandleMouseMove(0, -50)
	if math.Abs(pl.Camera.Pitch-0.2) > 1e-6 {
		t.Errorf("moving up should pitch up, got %v", pl.Camera.Pitch)
	}
}

func TestPitchClamp(t *testing.T) {
	pl, _ := newControls()
	pl.Lock()
	pl.HandleMouseMove(0, -100000)
	if math.Abs(pl.Camera.Pitch-math.Pi/2) > 1e-6 {
		t.Errorf("pitch must clamp at +pi/2, got %v", pl.Camera.Pitch)
	}
	pl.HandleMouseMove(0, 100000)
	if math.Abs(pl.Camera.Pitch+math.Pi/2) > 1e-6 {
		t.Errorf("pitch must clamp at -pi/2, got %v", pl.Camera.Pitch)
	}
}

func TestMoveIgnoresPitch(t *testing.T) {
	pl, _ := newControls()
	pl.Camera.SetYawPitch(0, 1.2)

	pl.MoveForward(2)
	if got := pl.Position(); !got.ApproxEqual(math.NewVec3(0, 1.6, -2), 1e-5) {
		t.Errorf("MoveForward: expected (0,1.6,-2), got %v", got)
	}
	pl.MoveRight(1)
	if got := pl.Position(); !got.ApproxEqual(math.NewVec3(1, 1.6, -2), 1e-5) {
		t.Errorf("MoveRight: expected (1,1.6,-2), got %v", got)
	}
}

func TestMoveFollowsYaw(t *testing.T) {
	pl, _ := newControls()
	pl.Camera.SetYawPitch(math.Pi/2, 0) // facing -X

	pl.MoveForward(1)
	if got := pl.Position(); !got.ApproxEqual(math.NewVec3(-1, 1.6, 0), 1e-5) {
		t.Errorf("expected to walk towards -X, got %v", got)
	}
	pl.MoveRight(1)
	if got := pl.Position(); !got.ApproxEqual(math.NewVec3(-1, 1.6, -1), 1e-5) {
		t.Errorf("expected to strafe towards -Z, got %v", got)
	}
}
