package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"glitch-corridor/core"
)

// OverlayRenderer draws flat, alpha-blended panels in normalized device
// coordinates on top of the finished frame.
type OverlayRenderer struct {
	vao    uint32
	vbo    uint32
	shader uint32
}

const overlayVertSrc = `
#version 410 core
layout(location = 0) in vec2 position;
layout(location = 1) in vec4 color;

out vec4 fragmentColor;

void main() {
    gl_Position   = vec4(position, 0.0, 1.0);
    fragmentColor = color;
}
` + "\x00"

const overlayFragSrc = `
#version 410 core
in  vec4 fragmentColor;
out vec4 outColor;

void main() {
    outColor = fragmentColor;
}
` + "\x00"

func NewOverlayRenderer() (*OverlayRenderer, error) {
	prog, err := newProgram(overlayVertSrc, overlayFragSrc)
	if err != nil {
		return nil, fmt.Errorf("overlay shader: %w", err)
	}
	o := &OverlayRenderer{shader: prog}

	gl.GenVertexArrays(1, &o.vao)
	gl.GenBuffers(1, &o.vbo)

	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 24, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, 24, gl.PtrOffset(8))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return o, nil
}

// DrawPanel renders a panel with its lower-left corner at (x, y) in NDC.
func (o *OverlayRenderer) DrawPanel(x, y, width, height float32, c core.Color) {
	vertices := []float32{
		x, y, c.R, c.G, c.B, c.A,
		x + width, y, c.R, c.G, c.B, c.A,
		x + width, y + height, c.R, c.G, c.B, c.A,
		x, y + height, c.R, c.G, c.B, c.A,
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)

	gl.UseProgram(o.shader)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// DrawFullscreen dims the whole frame with c.
func (o *OverlayRenderer) DrawFullscreen(c core.Color) {
	o.DrawPanel(-1, -1, 2, 2, c)
}

func (o *OverlayRenderer) Destroy() {
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
	}
	if o.shader != 0 {
		gl.DeleteProgram(o.shader)
	}
}
