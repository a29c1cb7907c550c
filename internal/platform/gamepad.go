package platform

import "github.com/go-gl/glfw/v3.3/glfw"

// DPad is a snapshot of the first connected gamepad's directional buttons.
type DPad struct {
	Present               bool
	Up, Down, Left, Right bool
}

// ReadDPad polls every joystick slot and returns the first one GLFW maps
// as a gamepad. The zero DPad means no gamepad is attached.
func ReadDPad() DPad {
	for j := glfw.Joystick1; j <= glfw.JoystickLast; j++ {
		if !j.Present() || !j.IsGamepad() {
			continue
		}
		state := j.GetGamepadState()
		if state == nil {
			continue
		}
		return DPad{
			Present: true,
			Up:      state.Buttons[glfw.ButtonDpadUp] == glfw.Press,
			Down:    state.Buttons[glfw.ButtonDpadDown] == glfw.Press,
			Left:    state.Buttons[glfw.ButtonDpadLeft] == glfw.Press,
			Right:   state.Buttons[glfw.ButtonDpadRight] == glfw.Press,
		}
	}
	return DPad{}
}
