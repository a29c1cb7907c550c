package corridor

import (
	"fmt"

	"glitch-corridor/core"
	"glitch-corridor/math"
	"glitch-corridor/scene"
)

const segmentCount = 2

// Level is the assembled corridor scene.
type Level struct {
	Scene      *scene.Scene
	Dimensions Dimensions
	Segments   []*scene.Node
	Fixtures   []*scene.Node
}

// SegmentCenters returns the floor-level centre of each segment. Segments
// run from z = 0 towards -Z, each one Length long.
func SegmentCenters(dims Dimensions) []math.Vec3 {
	centers := make([]math.Vec3, segmentCount)
	for i := range centers {
		centers[i] = math.NewVec3(0, 0, -dims.Length*(float32(i)+0.5))
	}
	return centers
}

// BuildLevel assembles segments, one fixture per segment, environment
// lighting and fog.
func BuildLevel(dims Dimensions, mats MaterialSet) *Level {
	s := scene.NewScene()
	s.Background = BackgroundColor
	s.Fog = &scene.Fog{Color: FogColor, Near: dims.FogNear(), Far: dims.FogFar()}
	s.Ambient = scene.AmbientLight{Color: core.Hex(0x404040), Intensity: 1.5}
	s.Hemisphere = &scene.HemisphereLight{
		Sky:       core.Hex(0x606070),
		Ground:    core.Hex(0x202020),
		Intensity: 1.5,
	}

	level := &Level{Scene: s, Dimensions: dims}
	for i, c := range SegmentCenters(dims) {
		seg := BuildCorridorSegment(fmt.Sprintf("Segment%d", i), c, dims, mats)
		s.AddNode(seg)
		level.Segments = append(level.Segments, seg)

		fixture := BuildLightFixture(fmt.Sprintf("Fixture%d", i),
			math.NewVec3(c.X, dims.Height-FixtureDrop, c.Z), dims)
		s.AddNode(fixture)
		level.Fixtures = append(level.Fixtures, fixture)
	}
	return level
}

// SpawnPoint is where the player's eyes start.
func (l *Level) SpawnPoint() math.Vec3 {
	return math.NewVec3(0, PlayerHeight, 0)
}
