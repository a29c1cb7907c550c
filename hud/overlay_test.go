package hud

import (
	"errors"
	"strings"
	"testing"
)

func TestOverlayToggles(t *testing.T) {
	o := NewOverlay("Glitch Corridor")
	if !o.Visible {
		t.Fatal("NewOverlay: expected visible")
	}
	if !strings.Contains(o.Title(), Instructions) {
		t.Errorf("Title: expected instructions, got %q", o.Title())
	}

	o.Hide()
	if o.Visible {
		t.Error("Hide: expected hidden")
	}
	if o.Title() != "Glitch Corridor" {
		t.Errorf("Title: expected %q, got %q", "Glitch Corridor", o.Title())
	}

	o.Show()
	if !o.Visible {
		t.Error("Show: expected visible")
	}
}

func TestOverlayError(t *testing.T) {
	o := NewOverlay("Glitch Corridor")
	o.Hide()
	o.ShowError(errors.New("no GL context"))

	if !o.Visible {
		t.Error("ShowError: expected visible")
	}
	if got := o.Title(); got != "Error: no GL context" {
		t.Errorf("Title: expected %q, got %q", "Error: no GL context", got)
	}

	o.Hide()
	if !o.Visible {
		t.Error("Hide after ShowError: expected overlay to stay visible")
	}
}
