package scene

import "glitch-corridor/core"

// Side selects which triangle faces a material draws.
type Side int

const (
	FrontSide Side = iota
	DoubleSide
)

// Material describes a physically based surface (metal/roughness).
type Material struct {
	Name      string
	Color     core.Color // multiplied with Map when a map is present
	Map       *Texture
	Roughness float32
	Metalness float32
	Side      Side
	Unlit     bool // output Color (and Map) without lighting; still fogged
}

// DefaultMaterial returns a plain white rough dielectric.
func DefaultMaterial() *Material {
	return NewStandardMaterial("Default", core.ColorWhite, 1, 0)
}

func NewStandardMaterial(name string, color core.Color, roughness, metalness float32) *Material {
	return &Material{
		Name:      name,
		Color:     color,
		Roughness: roughness,
		Metalness: metalness,
	}
}

// NewBasicMaterial creates an unlit material.
func NewBasicMaterial(name string, color core.Color) *Material {
	return &Material{
		Name:  name,
		Color: color,
		Unlit: true,
	}
}
