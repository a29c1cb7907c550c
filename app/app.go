// Package app drives one session: input routing, lock state, movement,
// the glitch clock and the render chain.
package app

import (
	"context"
	"time"

	"glitch-corridor/controls"
	"glitch-corridor/hud"
	"glitch-corridor/input"
	"glitch-corridor/internal/logger"
	"glitch-corridor/movement"
	"glitch-corridor/scene"
)

// Renderer draws the scene straight to the visible framebuffer.
type Renderer interface {
	Render(s *scene.Scene, camera *scene.Camera)
}

// Chain is the post chain; it renders the scene itself.
type Chain interface {
	Render(delta float32)
}

// TimeSink receives the session time, e.g. the glitch uniforms.
type TimeSink interface {
	SetTime(seconds float32)
}

// Surface is the GL side that is not per-frame scene drawing.
type Surface interface {
	DrawBlocker()
	Resize(width, height int) error
}

// Window is the platform window the session runs in.
type Window interface {
	ShouldClose() bool
	Close()
	PollEvents()
	SwapBuffers()
	SetTitle(title string)
}

// App owns the per-session state. Chain and Glitch are optional. When Chain
// is nil every frame goes through Renderer and Glitch is never fed.
type App struct {
	Scene      *scene.Scene
	Camera     *scene.Camera
	Controls   *controls.PointerLock
	Integrator *movement.Integrator
	Input      *input.State
	Touch      *input.TouchControls
	Gamepad    *input.GamepadPad
	Overlay    *hud.Overlay

	Renderer Renderer
	Chain    Chain
	Glitch   TimeSink
	Surface  Surface
	Window   Window

	Clock *Clock
	Log   *logger.Logger

	// ReadPad polls the gamepad once per frame. Nil disables it.
	ReadPad func() input.DPad
	// Pollers run once per frame after events, e.g. texture completions.
	Pollers []func()

	ResetVelocityOnUnlock bool
}

// Bind registers the lock listeners. Call once before Run.
func (a *App) Bind() {
	a.Controls.OnLock(func() {
		a.Overlay.Hide()
		a.updateTitle()
		a.Log.Debug("pointer locked")
	})
	a.Controls.OnUnlock(func() {
		a.Input.Reset()
		if a.ResetVelocityOnUnlock {
			a.Integrator.Reset()
		}
		if a.Touch != nil {
			a.Touch.SetActive(false)
		}
		a.Overlay.Show()
		a.updateTitle()
		a.Log.Debug("pointer unlocked")
	})
	a.updateTitle()
}

func (a *App) updateTitle() {
	if a.Window != nil {
		a.Window.SetTitle(a.Overlay.Title())
	}
}

// Click requests pointer lock.
func (a *App) Click() {
	a.Controls.Lock()
}

// Escape releases the pointer, or closes the window when already released.
func (a *App) Escape() {
	if a.Controls.IsLocked() {
		a.Controls.Unlock()
		return
	}
	if a.Window != nil {
		a.Window.Close()
	}
}

// Focus releases the pointer when the window loses focus.
func (a *App) Focus(focused bool) {
	if !focused {
		a.Controls.Unlock()
	}
}

// Resize follows a framebuffer size change.
func (a *App) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.Camera.UpdateAspectRatio(float32(width), float32(height))
	if a.Surface == nil {
		return
	}
	if err := a.Surface.Resize(width, height); err != nil && a.Chain != nil {
		a.Log.Warnf("post effects disabled: %v", err)
		a.Chain, a.Glitch = nil, nil
	}
}

// Frame advances movement and draws one frame.
func (a *App) Frame(delta, elapsed float32) {
	if a.Controls.IsLocked() {
		a.Integrator.Step(delta, *a.Input, a.Controls)
	}
	if a.Chain != nil {
		if a.Glitch != nil {
			a.Glitch.SetTime(elapsed)
		}
		a.Chain.Render(delta)
	} else {
		a.Renderer.Render(a.Scene, a.Camera)
	}
	if a.Overlay.Visible && a.Surface != nil {
		a.Surface.DrawBlocker()
	}
}

func (a *App) pollGamepad() {
	if a.ReadPad == nil || a.Gamepad == nil {
		return
	}
	a.Gamepad.Update(a.ReadPad())
	if a.Touch != nil {
		a.Touch.SetActive(a.Controls.IsLocked() && a.Gamepad.Present())
	}
}

// Run loops until the window closes or ctx is done.
func (a *App) Run(ctx context.Context) error {
	if a.Clock == nil {
		a.Clock = NewClock()
	}
	for !a.Window.ShouldClose() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		a.Window.PollEvents()
		a.pollGamepad()
		for _, poll := range a.Pollers {
			poll()
		}

		delta, elapsed := a.Clock.Tick()
		a.Frame(delta, elapsed)
		a.Window.SwapBuffers()
	}
	return nil
}

// errorFrameInterval paces the error screen.
const errorFrameInterval = 50 * time.Millisecond

// RunError shows err on the overlay and keeps the window alive until it is
// closed or ctx is done. The frame loop never starts.
func RunError(ctx context.Context, w Window, surface Surface, overlay *hud.Overlay, log *logger.Logger, err error) {
	log.Errorf("startup failed: %v", err)
	overlay.ShowError(err)
	w.SetTitle(overlay.Title())

	ticker := time.NewTicker(errorFrameInterval)
	defer ticker.Stop()
	for !w.ShouldClose() {
		w.PollEvents()
		if surface != nil {
			surface.DrawBlocker()
		}
		w.SwapBuffers()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
