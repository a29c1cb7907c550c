package input

import "glitch-corridor/internal/logger"

// Control is an on-screen or physical directional button that reports
// press start and end.
type Control interface {
	OnStart(func())
	OnEnd(func())
}

// TouchControls binds four named controls ("w", "a", "s", "d") to a State.
type TouchControls struct {
	state  *State
	bound  bool
	active bool
}

var touchDirections = map[string]Direction{
	"w": DirForward,
	"s": DirBackward,
	"a": DirLeft,
	"d": DirRight,
}

// BindTouchControls wires the controls found in lookup. If any of the four
// is missing nothing is bound, and keyboard input keeps working.
// Events only change the state while the controls are active.
func BindTouchControls(state *State, lookup func(name string) Control, log *logger.Logger) *TouchControls {
	tc := &TouchControls{state: state}
	controls := make(map[string]Control, len(touchDirections))
	for name := range touchDirections {
		c := lookup(name)
		if c == nil {
			log.Debugf("touch control %q not present, touch input disabled", name)
			return tc
		}
		controls[name] = c
	}
	for name, c := range controls {
		d := touchDirections[name]
		c.OnStart(func() {
			if tc.active {
				tc.state.Set(d, true)
			}
		})
		c.OnEnd(func() {
			if tc.active {
				tc.state.Set(d, false)
			}
		})
	}
	tc.bound = true
	return tc
}

func (tc *TouchControls) Bound() bool {
	return tc.bound
}

// SetActive shows or hides the controls. Hiding clears nothing; the caller
// resets the State on unlock.
func (tc *TouchControls) SetActive(active bool) {
	tc.active = active && tc.bound
}

func (tc *TouchControls) Active() bool {
	return tc.active
}
