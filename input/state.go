// Package input turns keyboard, touch-style and gamepad events into the
// four directional movement flags.
package input

// State holds the held directions. Opposite flags may both be set.
type State struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Reset clears every flag.
func (s *State) Reset() {
	*s = State{}
}

// Any reports whether at least one direction is held.
func (s State) Any() bool {
	return s.Forward || s.Backward || s.Left || s.Right
}

// Axes returns forward-minus-backward and right-minus-left, each in {-1,0,1}.
func (s State) Axes() (z, x float32) {
	return b2f(s.Forward) - b2f(s.Backward), b2f(s.Right) - b2f(s.Left)
}

func b2f(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

// Direction names shared by every input source.
type Direction int

const (
	DirForward Direction = iota
	DirBackward
	DirLeft
	DirRight
)

// Set updates one flag.
func (s *State) Set(d Direction, held bool) {
	switch d {
	case DirForward:
		s.Forward = held
	case DirBackward:
		s.Backward = held
	case DirLeft:
		s.Left = held
	case DirRight:
		s.Right = held
	}
}
