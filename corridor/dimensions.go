// Package corridor builds the walkable corridor level: segment geometry,
// ceiling light fixtures and the surface materials they share.
package corridor

import "glitch-corridor/core"

const (
	CorridorWidth  = 4.0
	CorridorHeight = 3.0
	CorridorLength = 15.0
	PlayerHeight   = 1.6

	SkirtingHeight = 0.15
	SkirtingDepth  = 0.05

	// FixtureDrop is how far below the ceiling a fixture hangs.
	FixtureDrop = 0.2
)

var (
	BackgroundColor = core.Hex(0x050505)
	FogColor        = core.Hex(0x111111)
)

// Dimensions are the corridor's interior extents.
type Dimensions struct {
	Width  float32
	Height float32
	Length float32
}

func DefaultDimensions() Dimensions {
	return Dimensions{Width: CorridorWidth, Height: CorridorHeight, Length: CorridorLength}
}

// FogNear and FogFar bound the linear fog.
func (d Dimensions) FogNear() float32 { return 1 }

func (d Dimensions) FogFar() float32 { return d.Length * 2.5 }

// LightRange is the reach of each fixture's point light.
func (d Dimensions) LightRange() float32 { return d.Length * 1.5 }
