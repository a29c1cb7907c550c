package corridor

import (
	"glitch-corridor/core"
	"glitch-corridor/math"
	"glitch-corridor/scene"
)

const (
	fixtureRadiusTop    = 0.3
	fixtureRadiusBottom = 0.4
	fixtureThickness    = 0.08
	fixtureSegments     = 16
	glowRadius          = 0.25
	glowOffset          = -0.05
	lightOffset         = -0.1
	lightIntensity      = 2.8
)

// BuildCorridorSegment returns a segment group centred on position.
// Children are named Floor, Ceiling, WallLeft, WallRight, SkirtingLeft and
// SkirtingRight. The group's origin sits at floor level.
func BuildCorridorSegment(name string, position math.Vec3, dims Dimensions, mats MaterialSet) *scene.Node {
	w, h, l := dims.Width, dims.Height, dims.Length
	segment := scene.NewNode(name)
	segment.SetPosition(position)

	place := func(mesh *scene.Mesh, pos math.Vec3, axis math.Vec3, angle float32) {
		n := scene.NewMeshNode(mesh)
		n.SetPosition(pos)
		n.SetRotation(math.QuaternionFromAxisAngle(axis, angle))
		segment.AddChild(n)
	}

	place(scene.CreatePlane("Floor", w, l, mats.Floor),
		math.Vec3Zero, math.Vec3Right, -math.Pi/2)
	place(scene.CreatePlane("Ceiling", w, l, mats.Ceiling),
		math.NewVec3(0, h, 0), math.Vec3Right, math.Pi/2)
	place(scene.CreatePlane("WallLeft", l, h, mats.Wall),
		math.NewVec3(-w/2, h/2, 0), math.Vec3Up, math.Pi/2)
	place(scene.CreatePlane("WallRight", l, h, mats.Wall),
		math.NewVec3(w/2, h/2, 0), math.Vec3Up, -math.Pi/2)

	skirtingX := w/2 - SkirtingDepth/2
	place(scene.CreateBox("SkirtingLeft", l, SkirtingHeight, SkirtingDepth, mats.Skirting),
		math.NewVec3(-skirtingX, SkirtingHeight/2, 0), math.Vec3Up, math.Pi/2)
	place(scene.CreateBox("SkirtingRight", l, SkirtingHeight, SkirtingDepth, mats.Skirting),
		math.NewVec3(skirtingX, SkirtingHeight/2, 0), math.Vec3Up, -math.Pi/2)

	return segment
}

// BuildLightFixture returns a ceiling lamp at position: a metal housing,
// an unlit glowing disc facing down and a warm point light just beneath.
func BuildLightFixture(name string, position math.Vec3, dims Dimensions) *scene.Node {
	housingMat, glowMat := newFixtureMaterials()

	fixture := scene.NewNode(name)
	fixture.SetPosition(position)

	fixture.AddChild(scene.NewMeshNode(scene.CreateCylinder("FixtureHousing",
		fixtureRadiusTop, fixtureRadiusBottom, fixtureThickness, fixtureSegments, housingMat)))

	glow := scene.NewMeshNode(scene.CreateCircle("FixtureGlow", glowRadius, fixtureSegments, glowMat))
	glow.SetPosition(math.NewVec3(0, glowOffset, 0))
	glow.SetRotation(math.QuaternionFromAxisAngle(math.Vec3Right, math.Pi/2))
	fixture.AddChild(glow)

	light := scene.NewLightNode("FixtureLight", &scene.Light{
		Type:      scene.LightTypePoint,
		Color:     core.Hex(FixtureGlowColor),
		Intensity: lightIntensity,
		Range:     dims.LightRange(),
	})
	light.SetPosition(math.NewVec3(0, lightOffset, 0))
	fixture.AddChild(light)

	return fixture
}
