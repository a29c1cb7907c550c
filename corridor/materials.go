package corridor

import (
	"path/filepath"

	"glitch-corridor/core"
	"glitch-corridor/internal/logger"
	"glitch-corridor/scene"
)

// TextureLoader starts an asynchronous load. Exactly one callback fires,
// on the goroutine that drives the loader.
type TextureLoader interface {
	Load(path string, onLoad func(*scene.Texture), onError func(error))
}

// MaterialSet is shared by every corridor segment.
type MaterialSet struct {
	Wall     *scene.Material
	Floor    *scene.Material
	Ceiling  *scene.Material
	Skirting *scene.Material
}

const (
	WallFallback     = 0x888888
	FloorFallback    = 0x666666
	CeilingFallback  = 0x777777
	SkirtingColor    = 0x282828
	FixtureColor     = 0x888888
	FixtureGlowColor = 0xffffee
)

// CreateMaterials returns usable materials immediately with fallback
// colors. Each texture that loads later is attached in place and turns the
// base color white so the texture shows unmodulated.
func CreateMaterials(loader TextureLoader, dir string, dims Dimensions, log *logger.Logger) MaterialSet {
	set := MaterialSet{
		Wall:     scene.NewStandardMaterial("Wall", core.Hex(WallFallback), 0.85, 0.1),
		Floor:    scene.NewStandardMaterial("Floor", core.Hex(FloorFallback), 0.9, 0.1),
		Ceiling:  scene.NewStandardMaterial("Ceiling", core.Hex(CeilingFallback), 0.9, 0.1),
		Skirting: scene.NewStandardMaterial("Skirting", core.Hex(SkirtingColor), 0.8, 0.1),
	}
	set.Wall.Side = scene.DoubleSide

	attach := func(m *scene.Material, file string, repeatU, repeatV float32) {
		path := filepath.Join(dir, file)
		loader.Load(path,
			func(tex *scene.Texture) {
				tex.SetRepeat(repeatU, repeatV)
				m.Map = tex
				m.Color = core.ColorWhite
				log.Infof("texture %s loaded (%dx%d)", path, tex.Width, tex.Height)
			},
			func(err error) {
				log.Warnf("texture %s unavailable, using flat color #%06x: %v", path, m.Color.Hex(), err)
			},
		)
	}
	attach(set.Wall, "wall.jpg", dims.Length/4, dims.Height/2)
	attach(set.Floor, "floor.jpg", dims.Width/2, dims.Length/4)
	attach(set.Ceiling, "ceiling.jpg", dims.Width/2, dims.Length/4)

	return set
}

func newFixtureMaterials() (housing, glow *scene.Material) {
	housing = scene.NewStandardMaterial("FixtureHousing", core.Hex(FixtureColor), 0.6, 0.4)
	glow = scene.NewBasicMaterial("FixtureGlow", core.Hex(FixtureGlowColor))
	glow.Side = scene.DoubleSide
	return housing, glow
}
