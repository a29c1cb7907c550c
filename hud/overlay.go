// Package hud tracks what the blocker overlay and window title show.
package hud

import "fmt"

const Instructions = "Click to enter - WASD to move - Esc to release"

// Overlay is the blocker state. It is visible while the pointer is free,
// and it is forced visible once a fatal error is shown.
type Overlay struct {
	Visible bool
	Message string
	Err     error

	base string
}

// NewOverlay returns a visible overlay showing the instructions under base.
func NewOverlay(base string) *Overlay {
	return &Overlay{Visible: true, Message: Instructions, base: base}
}

// Show makes the blocker visible.
func (o *Overlay) Show() {
	o.Visible = true
}

// Hide removes the blocker. A shown error keeps it up.
func (o *Overlay) Hide() {
	if o.Err != nil {
		return
	}
	o.Visible = false
}

// ShowError pins err on the overlay.
func (o *Overlay) ShowError(err error) {
	o.Err = err
	o.Message = fmt.Sprintf("Error: %v", err)
	o.Visible = true
}

// Title is the window title for the current state.
func (o *Overlay) Title() string {
	if o.Err != nil {
		return o.Message
	}
	if o.Visible {
		return fmt.Sprintf("%s | %s", o.base, o.Message)
	}
	return o.base
}
