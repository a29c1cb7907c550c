package input

// KeyMap maps key codes to directions.
type KeyMap map[int]Direction

// Keyboard applies key presses and releases to a State.
type Keyboard struct {
	state *State
	keys  KeyMap
}

func NewKeyboard(state *State, keys KeyMap) *Keyboard {
	return &Keyboard{state: state, keys: keys}
}

// HandleKey updates the mapped flag and reports whether the key was mapped.
func (k *Keyboard) HandleKey(key int, pressed bool) bool {
	d, ok := k.keys[key]
	if !ok {
		return false
	}
	k.state.Set(d, pressed)
	return true
}
