package scene

import (
	"glitch-corridor/core"
	"glitch-corridor/math"
)

// Scene owns the node tree and the environment lighting.
type Scene struct {
	Root       *Node
	Background core.Color
	Fog        *Fog
	Ambient    AmbientLight
	Hemisphere *HemisphereLight
}

const (
	LightTypePoint = iota
)

// Light is a node payload; its position comes from the owning node.
type Light struct {
	Type      int
	Color     core.Color
	Intensity float32
	Range     float32 // 0 means unlimited
}

type AmbientLight struct {
	Color     core.Color
	Intensity float32
}

// HemisphereLight blends Sky and Ground by the surface normal's Y.
type HemisphereLight struct {
	Sky       core.Color
	Ground    core.Color
	Intensity float32
}

// Fog is linear between Near and Far with a smoothstep falloff.
type Fog struct {
	Color core.Color
	Near  float32
	Far   float32
}

// Factor returns the fog blend weight at view distance d.
func (f *Fog) Factor(d float32) float32 {
	if f.Far <= f.Near {
		if d >= f.Far {
			return 1
		}
		return 0
	}
	t := math.Clamp((d-f.Near)/(f.Far-f.Near), 0, 1)
	return t * t * (3 - 2*t)
}

// LightInstance is a light resolved to world space for one frame.
type LightInstance struct {
	*Light
	Position math.Vec3
}

func NewScene() *Scene {
	return &Scene{
		Root:       NewNode("Root"),
		Background: core.ColorBlack,
	}
}

func (s *Scene) AddNode(node *Node) {
	s.Root.AddChild(node)
}

// GetVisibleNodes returns all visible nodes with meshes. A hidden node
// hides its subtree.
func (s *Scene) GetVisibleNodes() []*Node {
	var visible []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if !n.Visible {
			return
		}
		if n.Mesh != nil {
			visible = append(visible, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(s.Root)
	return visible
}

// Lights collects every visible light at its world position. Like
// GetVisibleNodes, a hidden node hides the lights beneath it.
func (s *Scene) Lights() []LightInstance {
	var lights []LightInstance
	var walk func(n *Node)
	walk = func(n *Node) {
		if !n.Visible {
			return
		}
		if n.Light != nil {
			lights = append(lights, LightInstance{Light: n.Light, Position: n.WorldPosition()})
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(s.Root)
	return lights
}
