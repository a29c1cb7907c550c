package scene

import (
	stdmath "math"

	"glitch-corridor/core"
	"glitch-corridor/math"
)

// All generators wind front faces counter-clockwise seen from outside.

// appendQuad adds a rectangle centred at center, spanning halfU along u and
// halfV along v. The face normal is u x v.
func appendQuad(vertices []core.Vertex, indices []uint32, center, u, v math.Vec3, halfU, halfV float32) ([]core.Vertex, []uint32) {
	normal := u.Cross(v).Normalize()
	base := uint32(len(vertices))
	corners := []struct {
		su, sv float32
		uv     math.Vec2
	}{
		{-1, 1, math.Vec2{X: 0, Y: 1}},
		{-1, -1, math.Vec2{X: 0, Y: 0}},
		{1, -1, math.Vec2{X: 1, Y: 0}},
		{1, 1, math.Vec2{X: 1, Y: 1}},
	}
	for _, c := range corners {
		pos := center.AddScaled(u, c.su*halfU).AddScaled(v, c.sv*halfV)
		vertices = append(vertices, core.Vertex{Position: pos, Normal: normal, UV: c.uv})
	}
	indices = append(indices, base, base+1, base+3, base+1, base+2, base+3)
	return vertices, indices
}

// CreatePlane returns a width x height rectangle in the XY plane facing +Z.
func CreatePlane(name string, width, height float32, material *Material) *Mesh {
	vertices, indices := appendQuad(nil, nil, math.Vec3Zero, math.Vec3Right, math.Vec3Up, width/2, height/2)
	return CreateMeshFromData(name, vertices, indices, material)
}

// CreateBox returns an axis-aligned box centred on the origin.
func CreateBox(name string, width, height, depth float32, material *Material) *Mesh {
	hw, hh, hd := width/2, height/2, depth/2
	faces := []struct {
		center, u, v math.Vec3
		halfU, halfV float32
	}{
		{math.NewVec3(hw, 0, 0), math.NewVec3(0, 0, -1), math.Vec3Up, hd, hh},
		{math.NewVec3(-hw, 0, 0), math.NewVec3(0, 0, 1), math.Vec3Up, hd, hh},
		{math.NewVec3(0, hh, 0), math.Vec3Right, math.NewVec3(0, 0, -1), hw, hd},
		{math.NewVec3(0, -hh, 0), math.Vec3Right, math.NewVec3(0, 0, 1), hw, hd},
		{math.NewVec3(0, 0, hd), math.Vec3Right, math.Vec3Up, hw, hh},
		{math.NewVec3(0, 0, -hd), math.NewVec3(-1, 0, 0), math.Vec3Up, hw, hh},
	}

	var vertices []core.Vertex
	var indices []uint32
	for _, f := range faces {
		vertices, indices = appendQuad(vertices, indices, f.center, f.u, f.v, f.halfU, f.halfV)
	}
	return CreateMeshFromData(name, vertices, indices, material)
}

// CreateCylinder returns a capped frustum along Y centred on the origin.
func CreateCylinder(name string, radiusTop, radiusBottom, height float32, segments int, material *Material) *Mesh {
	if segments < 3 {
		segments = 3
	}

	var vertices []core.Vertex
	var indices []uint32
	halfHeight := height / 2
	slope := (radiusBottom - radiusTop) / height

	ring := func(i int) (float32, float32) {
		theta := float64(i) * 2 * stdmath.Pi / float64(segments)
		return float32(stdmath.Sin(theta)), float32(stdmath.Cos(theta))
	}

	for i := 0; i <= segments; i++ {
		s, c := ring(i)
		normal := math.NewVec3(s, slope, c).Normalize()
		u := float32(i) / float32(segments)
		vertices = append(vertices,
			core.Vertex{Position: math.NewVec3(s*radiusTop, halfHeight, c*radiusTop), Normal: normal, UV: math.NewVec2(u, 1)},
			core.Vertex{Position: math.NewVec3(s*radiusBottom, -halfHeight, c*radiusBottom), Normal: normal, UV: math.NewVec2(u, 0)},
		)
	}
	for i := 0; i < segments; i++ {
		top, bottom := uint32(i*2), uint32(i*2+1)
		nextTop, nextBottom := top+2, bottom+2
		indices = append(indices, top, bottom, nextTop, bottom, nextBottom, nextTop)
	}

	addCap := func(y, radius float32, normal math.Vec3, flip bool) {
		center := uint32(len(vertices))
		vertices = append(vertices, core.Vertex{Position: math.NewVec3(0, y, 0), Normal: normal, UV: math.NewVec2(0.5, 0.5)})
		for i := 0; i <= segments; i++ {
			s, c := ring(i)
			vertices = append(vertices, core.Vertex{
				Position: math.NewVec3(s*radius, y, c*radius),
				Normal:   normal,
				UV:       math.NewVec2(s*0.5+0.5, c*0.5+0.5),
			})
		}
		for i := uint32(0); i < uint32(segments); i++ {
			a, b := center+1+i, center+2+i
			if flip {
				a, b = b, a
			}
			indices = append(indices, center, a, b)
		}
	}
	addCap(halfHeight, radiusTop, math.Vec3Up, false)
	addCap(-halfHeight, radiusBottom, math.Vec3Up.Negate(), true)

	return CreateMeshFromData(name, vertices, indices, material)
}

// CreateCircle returns a flat disc in the XY plane facing +Z.
func CreateCircle(name string, radius float32, segments int, material *Material) *Mesh {
	if segments < 3 {
		segments = 3
	}

	vertices := []core.Vertex{{Normal: math.Vec3Front, UV: math.NewVec2(0.5, 0.5)}}
	var indices []uint32
	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2 * stdmath.Pi / float64(segments)
		c, s := float32(stdmath.Cos(theta)), float32(stdmath.Sin(theta))
		vertices = append(vertices, core.Vertex{
			Position: math.NewVec3(c*radius, s*radius, 0),
			Normal:   math.Vec3Front,
			UV:       math.NewVec2(c*0.5+0.5, s*0.5+0.5),
		})
	}
	for i := uint32(1); i <= uint32(segments); i++ {
		indices = append(indices, 0, i, i+1)
	}
	return CreateMeshFromData(name, vertices, indices, material)
}
