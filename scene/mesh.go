package scene

import (
	"glitch-corridor/core"
	"glitch-corridor/math"
)

// Mesh holds CPU-side vertex/index data.
// GPU upload is managed by the renderer backend.
type Mesh struct {
	Name     string
	Vertices []core.Vertex
	Indices  []uint32

	LocalAABB    AABB
	HasLocalAABB bool

	// Material holds surface shading properties. If nil, DefaultMaterial() is used.
	Material *Material

	// GPUData is set by the renderer backend.
	GPUData interface{}
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max math.Vec3
}

func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Transform returns the AABB enclosing all eight transformed corners.
func (b AABB) Transform(m math.Mat4) AABB {
	var out AABB
	for i := 0; i < 8; i++ {
		c := b.Min
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Y = b.Max.Y
		}
		if i&4 != 0 {
			c.Z = b.Max.Z
		}
		p := m.TransformPoint(c)
		if i == 0 {
			out = AABB{Min: p, Max: p}
			continue
		}
		out = out.expand(p)
	}
	return out
}

func (b AABB) expand(p math.Vec3) AABB {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
	return b
}

// CreateMeshFromData builds a Mesh and pre-computes its local-space AABB.
func CreateMeshFromData(name string, vertices []core.Vertex, indices []uint32, material *Material) *Mesh {
	m := &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
		Material: material,
	}
	if len(vertices) > 0 {
		box := AABB{Min: vertices[0].Position, Max: vertices[0].Position}
		for _, v := range vertices[1:] {
			box = box.expand(v.Position)
		}
		m.LocalAABB = box
		m.HasLocalAABB = true
	}
	return m
}

func (m *Mesh) MaterialOrDefault() *Material {
	if m.Material != nil {
		return m.Material
	}
	return DefaultMaterial()
}
