package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	cursorLocked bool
	lastX, lastY float64
	haveLast     bool

	onKey         func(key int, pressed bool)
	onMouseButton func(button int, pressed bool)
	onMouseMove   func(dx, dy float64)
	onResize      func(width, height int)
	onFocus       func(focused bool)
}

type WindowConfig struct {
	Width      int
	Height     int
	Title      string
	Resizable  bool
	VSync      bool
	Fullscreen bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     1280,
		Height:    720,
		Title:     "Glitch Corridor",
		Resizable: true,
		VSync:     true,
	}
}

// NewWindow creates a window with a current OpenGL 4.1 core context.
func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	monitor := (*glfw.Monitor)(nil)
	if config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	window := &Window{Handle: handle, Title: config.Title}
	// Framebuffer size, not window size, on high-DPI displays.
	window.Width, window.Height = handle.GetFramebufferSize()

	handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if window.onKey == nil || action == glfw.Repeat {
			return
		}
		window.onKey(int(key), action == glfw.Press)
	})
	handle.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if window.onMouseButton != nil {
			window.onMouseButton(int(button), action == glfw.Press)
		}
	})
	handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if !window.haveLast {
			window.lastX, window.lastY, window.haveLast = x, y, true
			return
		}
		dx, dy := x-window.lastX, y-window.lastY
		window.lastX, window.lastY = x, y
		if window.cursorLocked && window.onMouseMove != nil {
			window.onMouseMove(dx, dy)
		}
	})
	handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
		if window.onResize != nil {
			window.onResize(width, height)
		}
	})
	handle.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if window.onFocus != nil {
			window.onFocus(focused)
		}
	})

	return window, nil
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) Close() {
	w.Handle.SetShouldClose(true)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

// LockCursor hides the cursor and reports relative motion only.
// Raw motion is used where the platform supports it.
func (w *Window) LockCursor() {
	w.Handle.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		w.Handle.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}
	w.cursorLocked = true
	w.haveLast = false
}

func (w *Window) UnlockCursor() {
	if glfw.RawMouseMotionSupported() {
		w.Handle.SetInputMode(glfw.RawMouseMotion, glfw.False)
	}
	w.Handle.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	w.cursorLocked = false
	w.haveLast = false
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

func (w *Window) SetKeyCallback(cb func(key int, pressed bool)) {
	w.onKey = cb
}

func (w *Window) SetMouseButtonCallback(cb func(button int, pressed bool)) {
	w.onMouseButton = cb
}

// SetMouseMoveCallback receives cursor deltas while the cursor is locked.
func (w *Window) SetMouseMoveCallback(cb func(dx, dy float64)) {
	w.onMouseMove = cb
}

func (w *Window) SetResizeCallback(cb func(width, height int)) {
	w.onResize = cb
}

func (w *Window) SetFocusCallback(cb func(focused bool)) {
	w.onFocus = cb
}

// Time returns seconds since GLFW was initialised.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func boolToInt(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

const (
	KeyW      = int(glfw.KeyW)
	KeyA      = int(glfw.KeyA)
	KeyS      = int(glfw.KeyS)
	KeyD      = int(glfw.KeyD)
	KeyUp     = int(glfw.KeyUp)
	KeyDown   = int(glfw.KeyDown)
	KeyLeft   = int(glfw.KeyLeft)
	KeyRight  = int(glfw.KeyRight)
	KeyEscape = int(glfw.KeyEscape)

	MouseButtonLeft = int(glfw.MouseButtonLeft)
)
