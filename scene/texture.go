package scene

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"glitch-corridor/math"
)

// Texture holds CPU-side pixel data for a 2D texture.
type Texture struct {
	Name   string
	Width  int
	Height int
	// Pixels in RGBA8 format (4 bytes per pixel, row-major, top-to-bottom).
	Pixels []byte

	// WrapRepeat tiles the texture; otherwise edges clamp.
	WrapRepeat bool
	// Repeat scales UVs before sampling.
	Repeat math.Vec2

	// GLID is the OpenGL texture object ID, set by the renderer on first use.
	GLID uint32
}

// LoadTexture reads a PNG or JPEG file from disk and returns a CPU-side Texture.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}
	return NewTextureFromImage(path, img), nil
}

func NewTextureFromImage(name string, img image.Image) *Texture {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return &Texture{
		Name:   name,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: rgba.Pix,
		Repeat: math.NewVec2(1, 1),
	}
}

// NewSolidTexture creates a 1x1 texture with the given RGBA color values (0–255).
func NewSolidTexture(name string, r, g, b, a uint8) *Texture {
	return &Texture{
		Name:   name,
		Width:  1,
		Height: 1,
		Pixels: []byte{r, g, b, a},
		Repeat: math.NewVec2(1, 1),
	}
}

// SetRepeat enables tiling with the given UV scale.
func (t *Texture) SetRepeat(u, v float32) {
	t.WrapRepeat = true
	t.Repeat = math.NewVec2(u, v)
}
