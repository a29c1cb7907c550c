package app

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"glitch-corridor/controls"
	"glitch-corridor/corridor"
	"glitch-corridor/hud"
	"glitch-corridor/input"
	"glitch-corridor/internal/logger"
	"glitch-corridor/math"
	"glitch-corridor/movement"
	"glitch-corridor/scene"
)

type fakeCursor struct{}

func (fakeCursor) LockCursor()   {}
func (fakeCursor) UnlockCursor() {}

type fakeRenderer struct{ calls int }

func (f *fakeRenderer) Render(*scene.Scene, *scene.Camera) { f.calls++ }

type fakeChain struct{ calls int }

func (f *fakeChain) Render(float32) { f.calls++ }

type fakeSink struct {
	calls int
	last  float32
}

func (f *fakeSink) SetTime(s float32) {
	f.calls++
	f.last = s
}

type fakeSurface struct {
	blockers      int
	width, height int
	resizeErr     error
}

func (f *fakeSurface) DrawBlocker() { f.blockers++ }

func (f *fakeSurface) Resize(w, h int) error {
	f.width, f.height = w, h
	return f.resizeErr
}

type fakeWindow struct {
	frames   int
	maxFrame int
	closed   bool
	title    string
}

func (f *fakeWindow) ShouldClose() bool {
	return f.closed || (f.maxFrame > 0 && f.frames >= f.maxFrame)
}

func (f *fakeWindow) Close()            { f.closed = true }
func (f *fakeWindow) PollEvents()       {}
func (f *fakeWindow) SwapBuffers()      { f.frames++ }
func (f *fakeWindow) SetTitle(t string) { f.title = t }

func newTestApp() (*App, *fakeRenderer, *fakeSurface, *fakeWindow) {
	log := logger.New(io.Discard, "error")
	cam := scene.NewCamera(math.Radians(70), 16.0/9.0, 0.1, 1000)
	cam.SetPosition(math.NewVec3(0, corridor.PlayerHeight, 0))

	r := &fakeRenderer{}
	s := &fakeSurface{}
	w := &fakeWindow{}
	dims := corridor.DefaultDimensions()
	a := &App{
		Scene:      scene.NewScene(),
		Camera:     cam,
		Controls:   controls.NewPointerLock(cam, fakeCursor{}),
		Integrator: movement.NewIntegrator(movement.CorridorBounds(dims.Width, dims.Length, 2)),
		Input:      &input.State{},
		Overlay:    hud.NewOverlay("Glitch Corridor"),
		Renderer:   r,
		Surface:    s,
		Window:     w,
		Log:        log,

		ResetVelocityOnUnlock: true,
	}
	a.Bind()
	return a, r, s, w
}

func TestFrameWithoutChainRendersDirectly(t *testing.T) {
	a, r, _, _ := newTestApp()
	sink := &fakeSink{}
	a.Glitch = sink

	for i := 0; i < 10; i++ {
		a.Frame(1.0/60, float32(i)/60)
	}
	if r.calls != 10 {
		t.Errorf("Render calls: expected 10, got %d", r.calls)
	}
	if sink.calls != 0 {
		t.Errorf("SetTime calls: expected 0, got %d", sink.calls)
	}
}

func TestFrameWithChain(t *testing.T) {
	a, r, _, _ := newTestApp()
	chain := &fakeChain{}
	sink := &fakeSink{}
	a.Chain = chain
	a.Glitch = sink

	a.Frame(1.0/60, 2.5)
	if chain.calls != 1 || r.calls != 0 {
		t.Errorf("expected chain only, got chain %d direct %d", chain.calls, r.calls)
	}
	if sink.last != 2.5 {
		t.Errorf("SetTime: expected 2.5, got %v", sink.last)
	}
}

func TestUnlockResetsInput(t *testing.T) {
	a, _, _, _ := newTestApp()
	a.Click()
	*a.Input = input.State{Forward: true, Left: true}
	a.Frame(1.0/60, 0)
	if a.Integrator.Speed() == 0 {
		t.Fatal("expected velocity after a locked frame with input")
	}

	a.Escape()
	if a.Input.Any() {
		t.Errorf("unlock: expected all flags cleared, got %+v", *a.Input)
	}
	if a.Integrator.Speed() != 0 {
		t.Errorf("unlock: expected zero velocity, got %v", a.Integrator.Speed())
	}
}

func TestUnlockKeepsVelocityWhenConfigured(t *testing.T) {
	a, _, _, _ := newTestApp()
	a.ResetVelocityOnUnlock = false
	a.Click()
	a.Input.Forward = true
	a.Frame(1.0/60, 0)
	a.Focus(false)
	if a.Controls.IsLocked() {
		t.Fatal("focus loss: expected unlocked")
	}
	if a.Integrator.Speed() == 0 {
		t.Error("expected velocity to survive unlock")
	}
}

func TestMovementOnlyWhileLocked(t *testing.T) {
	a, _, _, _ := newTestApp()
	start := a.Camera.Position
	a.Input.Forward = true
	for i := 0; i < 30; i++ {
		a.Frame(1.0/60, 0)
	}
	if a.Camera.Position != start {
		t.Errorf("unlocked: expected no movement, got %v", a.Camera.Position)
	}

	a.Click()
	a.Input.Forward = true
	for i := 0; i < 30; i++ {
		a.Frame(1.0/60, 0)
	}
	if a.Camera.Position.Z >= start.Z {
		t.Errorf("locked: expected to move towards -Z, got z %v", a.Camera.Position.Z)
	}
}

func TestOverlayFollowsLock(t *testing.T) {
	a, _, s, w := newTestApp()
	a.Frame(1.0/60, 0)
	if s.blockers != 1 {
		t.Errorf("unlocked: expected blocker drawn, got %d", s.blockers)
	}

	a.Click()
	a.Frame(1.0/60, 0)
	if s.blockers != 1 {
		t.Errorf("locked: expected no blocker, got %d", s.blockers)
	}
	if w.title != "Glitch Corridor" {
		t.Errorf("locked title: expected %q, got %q", "Glitch Corridor", w.title)
	}

	a.Escape()
	if !a.Overlay.Visible {
		t.Error("unlocked: expected overlay visible")
	}
}

func TestEscapeClosesWhenUnlocked(t *testing.T) {
	a, _, _, w := newTestApp()
	a.Click()
	a.Escape()
	if w.closed {
		t.Fatal("first escape must only unlock")
	}
	a.Escape()
	if !w.closed {
		t.Error("second escape: expected window closed")
	}
}

func TestResize(t *testing.T) {
	a, _, s, _ := newTestApp()
	a.Resize(800, 400)
	if a.Camera.AspectRatio != 2 {
		t.Errorf("aspect: expected 2, got %v", a.Camera.AspectRatio)
	}
	if s.width != 800 || s.height != 400 {
		t.Errorf("surface: expected 800x400, got %dx%d", s.width, s.height)
	}

	a.Resize(0, 0)
	if s.width != 800 {
		t.Error("zero size must be ignored")
	}
}

func TestResizeFailureFallsBackToDirectRender(t *testing.T) {
	a, r, s, _ := newTestApp()
	chain := &fakeChain{}
	sink := &fakeSink{}
	a.Chain = chain
	a.Glitch = sink

	s.resizeErr = errors.New("framebuffer incomplete")
	a.Resize(640, 480)
	if a.Chain != nil || a.Glitch != nil {
		t.Fatal("failed resize must drop the post chain")
	}

	a.Frame(1.0/60, 1)
	if chain.calls != 0 {
		t.Errorf("chain calls after failed resize: expected 0, got %d", chain.calls)
	}
	if r.calls != 1 {
		t.Errorf("direct render calls: expected 1, got %d", r.calls)
	}
	if sink.calls != 0 {
		t.Errorf("SetTime calls: expected 0, got %d", sink.calls)
	}
}

func TestGamepadActivatesTouchWhileLocked(t *testing.T) {
	a, _, _, _ := newTestApp()
	pad := input.NewGamepadPad()
	a.Gamepad = pad
	a.Touch = input.BindTouchControls(a.Input, pad.Control, a.Log)
	snapshot := input.DPad{Present: true, Up: true}
	a.ReadPad = func() input.DPad { return snapshot }

	a.pollGamepad()
	if a.Input.Forward {
		t.Error("unlocked: D-pad must not move")
	}

	a.Click()
	snapshot.Up = false
	a.pollGamepad()
	snapshot.Up = true
	a.pollGamepad()
	if !a.Touch.Active() || !a.Input.Forward {
		t.Errorf("locked: expected forward from D-pad, active %v state %+v", a.Touch.Active(), *a.Input)
	}
}

func TestRunStopsWhenWindowCloses(t *testing.T) {
	a, r, _, w := newTestApp()
	w.maxFrame = 3
	polls := 0
	a.Pollers = []func(){func() { polls++ }}

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}
	if r.calls != 3 || polls != 3 {
		t.Errorf("expected 3 frames and polls, got %d and %d", r.calls, polls)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	a, _, _, _ := newTestApp()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := a.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run: expected context.Canceled, got %v", err)
	}
}

func TestRunErrorPinsMessage(t *testing.T) {
	w := &fakeWindow{maxFrame: 2}
	s := &fakeSurface{}
	o := hud.NewOverlay("Glitch Corridor")
	RunError(context.Background(), w, s, o, logger.New(io.Discard, "fatal"), errors.New("boom"))

	if w.title != "Error: boom" {
		t.Errorf("title: expected %q, got %q", "Error: boom", w.title)
	}
	if s.blockers != 2 {
		t.Errorf("blocker frames: expected 2, got %d", s.blockers)
	}
}

func TestClock(t *testing.T) {
	base := time.Unix(100, 0)
	now := base
	c := newClock(func() time.Time { return now })

	now = base.Add(16 * time.Millisecond)
	delta, elapsed := c.Tick()
	if math.Abs(delta-0.016) > 1e-6 || math.Abs(elapsed-0.016) > 1e-6 {
		t.Errorf("first tick: expected 0.016/0.016, got %v/%v", delta, elapsed)
	}

	now = base.Add(2 * time.Second)
	delta, elapsed = c.Tick()
	if delta != MaxDelta {
		t.Errorf("long gap: expected delta capped at %v, got %v", MaxDelta, delta)
	}
	if math.Abs(elapsed-2) > 1e-6 {
		t.Errorf("elapsed: expected 2, got %v", elapsed)
	}
}
