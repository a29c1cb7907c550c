package scene

import "glitch-corridor/math"

// Plane represents a half-space: ax + by + cz + d = 0
// Normal (a, b, c) points into the "inside" of the frustum.
type Plane struct {
	Normal math.Vec3
	D      float32
}

// DistanceTo returns the signed distance from a point to the plane.
// Positive means on the "inside" (same side as Normal).
func (p Plane) DistanceTo(pt math.Vec3) float32 {
	return p.Normal.Dot(pt) + p.D
}

// Frustum holds the six clip planes of a view frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FrustumFromVP extracts the six frustum planes from a view-projection matrix.
// The planes are normalized so DistanceTo returns a true distance in world units.
//
// Points are row vectors (clip = p * vp), so clip component j is the dot of
// p with column j of vp.
func FrustumFromVP(vp math.Mat4) Frustum {
	col := func(j int) math.Vec4 {
		return math.Vec4{X: vp[0][j], Y: vp[1][j], Z: vp[2][j], W: vp[3][j]}
	}
	c0, c1, c2, c3 := col(0), col(1), col(2), col(3)

	var f Frustum
	f.Planes[0] = normalizePlane(c3.X+c0.X, c3.Y+c0.Y, c3.Z+c0.Z, c3.W+c0.W) // left
	f.Planes[1] = normalizePlane(c3.X-c0.X, c3.Y-c0.Y, c3.Z-c0.Z, c3.W-c0.W) // right
	f.Planes[2] = normalizePlane(c3.X+c1.X, c3.Y+c1.Y, c3.Z+c1.Z, c3.W+c1.W) // bottom
	f.Planes[3] = normalizePlane(c3.X-c1.X, c3.Y-c1.Y, c3.Z-c1.Z, c3.W-c1.W) // top
	f.Planes[4] = normalizePlane(c3.X+c2.X, c3.Y+c2.Y, c3.Z+c2.Z, c3.W+c2.W) // near
	f.Planes[5] = normalizePlane(c3.X-c2.X, c3.Y-c2.Y, c3.Z-c2.Z, c3.W-c2.W) // far
	return f
}

func normalizePlane(a, b, c, d float32) Plane {
	l := math.Vec3{X: a, Y: b, Z: c}.Length()
	if l == 0 {
		return Plane{}
	}
	return Plane{Normal: math.Vec3{X: a / l, Y: b / l, Z: c / l}, D: d / l}
}

// IntersectsFrustum returns false if the AABB is completely outside the frustum.
// For each plane it tests the corner furthest along the plane normal.
func (b AABB) IntersectsFrustum(f *Frustum) bool {
	for i := 0; i < 6; i++ {
		p := f.Planes[i]
		px := b.Max.X
		if p.Normal.X < 0 {
			px = b.Min.X
		}
		py := b.Max.Y
		if p.Normal.Y < 0 {
			py = b.Min.Y
		}
		pz := b.Max.Z
		if p.Normal.Z < 0 {
			pz = b.Min.Z
		}
		if p.DistanceTo(math.Vec3{X: px, Y: py, Z: pz}) < 0 {
			return false
		}
	}
	return true
}

// CullVisible returns the visible mesh nodes whose world bounds touch the
// camera frustum. Nodes without bounds are always kept.
func (s *Scene) CullVisible(camera *Camera) (kept []*Node, culled int) {
	vp := camera.GetViewProjectionMatrix()
	f := FrustumFromVP(vp)
	for _, n := range s.GetVisibleNodes() {
		box, ok := n.WorldAABB()
		if ok && !box.IntersectsFrustum(&f) {
			culled++
			continue
		}
		kept = append(kept, n)
	}
	return kept, culled
}
