package input

// DPad is a polled snapshot of a directional pad.
type DPad struct {
	Present               bool
	Up, Down, Left, Right bool
}

// button is a Control fed by level changes on a polled DPad.
type button struct {
	held          bool
	start, finish []func()
}

func (b *button) OnStart(fn func()) { b.start = append(b.start, fn) }

func (b *button) OnEnd(fn func()) { b.finish = append(b.finish, fn) }

func (b *button) update(held bool) {
	if held == b.held {
		return
	}
	b.held = held
	fns := b.finish
	if held {
		fns = b.start
	}
	for _, fn := range fns {
		fn()
	}
}

// GamepadPad exposes a gamepad's D-pad as the four touch controls.
type GamepadPad struct {
	buttons map[string]*button
	present bool
}

func NewGamepadPad() *GamepadPad {
	return &GamepadPad{buttons: map[string]*button{
		"w": {}, "a": {}, "s": {}, "d": {},
	}}
}

// Control returns the named button, or nil when it does not exist.
func (g *GamepadPad) Control(name string) Control {
	if b, ok := g.buttons[name]; ok {
		return b
	}
	return nil
}

// Update feeds one poll. A disconnected pad releases every held button.
func (g *GamepadPad) Update(p DPad) {
	g.present = p.Present
	if !p.Present {
		p = DPad{}
	}
	g.buttons["w"].update(p.Up)
	g.buttons["s"].update(p.Down)
	g.buttons["a"].update(p.Left)
	g.buttons["d"].update(p.Right)
}

func (g *GamepadPad) Present() bool {
	return g.present
}
