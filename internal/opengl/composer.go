package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"glitch-corridor/scene"
)

// RenderTarget is an off-screen RGBA8 colour buffer with a depth renderbuffer.
type RenderTarget struct {
	FBO      uint32
	ColorTex uint32
	DepthRB  uint32
	Width    int32
	Height   int32
}

func newRenderTarget(width, height int) (*RenderTarget, error) {
	t := &RenderTarget{Width: int32(width), Height: int32(height)}

	gl.GenTextures(1, &t.ColorTex)
	gl.BindTexture(gl.TEXTURE_2D, t.ColorTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		t.Width, t.Height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenRenderbuffers(1, &t.DepthRB)
	gl.BindRenderbuffer(gl.RENDERBUFFER, t.DepthRB)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, t.Width, t.Height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	gl.GenFramebuffers(1, &t.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.FBO)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0,
		gl.TEXTURE_2D, t.ColorTex, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT,
		gl.RENDERBUFFER, t.DepthRB)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		t.free()
		return nil, fmt.Errorf("framebuffer incomplete (0x%X)", status)
	}
	return t, nil
}

func (t *RenderTarget) free() {
	if t.FBO != 0 {
		gl.DeleteFramebuffers(1, &t.FBO)
		t.FBO = 0
	}
	if t.ColorTex != 0 {
		gl.DeleteTextures(1, &t.ColorTex)
		t.ColorTex = 0
	}
	if t.DepthRB != 0 {
		gl.DeleteRenderbuffers(1, &t.DepthRB)
		t.DepthRB = 0
	}
}

// Pass is one stage of the post chain. Render reads from read and writes to
// write, or to the default framebuffer when the pass renders to screen.
type Pass interface {
	Render(c *Composer, write, read *RenderTarget, delta float32)
	// NeedsSwap reports whether the composer swaps read and write after this pass.
	NeedsSwap() bool
}

// Composer runs a sequence of passes over two ping-pong render targets.
type Composer struct {
	Width  int32
	Height int32

	read   *RenderTarget
	write  *RenderTarget
	passes []Pass

	quadVAO uint32 // empty VAO for the fullscreen triangle
}

// fullscreenVertSrc draws a fullscreen triangle via gl_VertexID (no VBO needed).
const fullscreenVertSrc = `
#version 410 core
out vec2 vUv;
void main() {
    const vec2 pos[3] = vec2[3](
        vec2(-1.0, -1.0),
        vec2( 3.0, -1.0),
        vec2(-1.0,  3.0)
    );
    gl_Position = vec4(pos[gl_VertexID], 0.0, 1.0);
    vUv         = pos[gl_VertexID] * 0.5 + 0.5;
}
` + "\x00"

const copyFragSrc = `
#version 410 core
in  vec2 vUv;
out vec4 outColor;
uniform sampler2D tDiffuse;
void main() {
    outColor = texture(tDiffuse, vUv);
}
` + "\x00"

// NewComposer allocates both render targets at the given size.
func NewComposer(width, height int) (*Composer, error) {
	c := &Composer{}
	if err := c.allocTargets(width, height); err != nil {
		return nil, err
	}
	gl.GenVertexArrays(1, &c.quadVAO)
	return c, nil
}

func (c *Composer) allocTargets(width, height int) error {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	a, err := newRenderTarget(width, height)
	if err != nil {
		return fmt.Errorf("read target: %w", err)
	}
	b, err := newRenderTarget(width, height)
	if err != nil {
		a.free()
		return fmt.Errorf("write target: %w", err)
	}
	c.read, c.write = a, b
	c.Width, c.Height = int32(width), int32(height)
	return nil
}

// AddPass appends a pass to the chain.
func (c *Composer) AddPass(p Pass) {
	c.passes = append(c.passes, p)
}

// SetSize recreates both render targets at the new pixel dimensions. The
// old pair is released only once the new one is complete.
func (c *Composer) SetSize(width, height int) error {
	oldRead, oldWrite := c.read, c.write
	if err := c.allocTargets(width, height); err != nil {
		return err
	}
	oldRead.free()
	oldWrite.free()
	return nil
}

// Render runs every pass in order.
func (c *Composer) Render(delta float32) {
	for _, p := range c.passes {
		p.Render(c, c.write, c.read, delta)
		if p.NeedsSwap() {
			c.read, c.write = c.write, c.read
		}
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (c *Composer) drawFullscreen() {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.BindVertexArray(c.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}

// Destroy frees all GPU resources owned by the composer and its shader passes.
func (c *Composer) Destroy() {
	for _, p := range c.passes {
		if sp, ok := p.(interface{ Destroy() }); ok {
			sp.Destroy()
		}
	}
	c.read.free()
	c.write.free()
	if c.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &c.quadVAO)
		c.quadVAO = 0
	}
}

// ── RenderPass ────────────────────────────────────────────────────────────────

// RenderPass draws the scene into the read target.
type RenderPass struct {
	Renderer *Renderer
	Scene    *scene.Scene
	Camera   *scene.Camera
}

func NewRenderPass(r *Renderer, s *scene.Scene, camera *scene.Camera) *RenderPass {
	return &RenderPass{Renderer: r, Scene: s, Camera: camera}
}

func (p *RenderPass) Render(c *Composer, write, read *RenderTarget, delta float32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, read.FBO)
	gl.Viewport(0, 0, read.Width, read.Height)
	p.Renderer.Render(p.Scene, p.Camera)
}

func (p *RenderPass) NeedsSwap() bool { return false }

// ── ShaderPass ────────────────────────────────────────────────────────────────

// ShaderPass runs a fragment program over the read target. The program
// samples its input as tDiffuse on texture unit 0.
type ShaderPass struct {
	RenderToScreen bool

	prog        uint32
	tDiffuseLoc int32
	// bind sets program-specific uniforms before the draw.
	bind func()
}

// NewShaderPass compiles fragSrc against the fullscreen vertex program.
func NewShaderPass(fragSrc string) (*ShaderPass, error) {
	prog, err := newProgram(fullscreenVertSrc, fragSrc)
	if err != nil {
		return nil, err
	}
	return &ShaderPass{
		prog:        prog,
		tDiffuseLoc: uniform(prog, "tDiffuse"),
	}, nil
}

// NewCopyPass returns a pass that copies its input unchanged.
func NewCopyPass() (*ShaderPass, error) {
	p, err := NewShaderPass(copyFragSrc)
	if err != nil {
		return nil, fmt.Errorf("copy shader: %w", err)
	}
	return p, nil
}

func (p *ShaderPass) Render(c *Composer, write, read *RenderTarget, delta float32) {
	if p.RenderToScreen {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	} else {
		gl.BindFramebuffer(gl.FRAMEBUFFER, write.FBO)
	}
	gl.Viewport(0, 0, c.Width, c.Height)

	gl.UseProgram(p.prog)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, read.ColorTex)
	gl.Uniform1i(p.tDiffuseLoc, 0)
	if p.bind != nil {
		p.bind()
	}
	c.drawFullscreen()
}

func (p *ShaderPass) NeedsSwap() bool { return !p.RenderToScreen }

func (p *ShaderPass) Destroy() {
	if p.prog != 0 {
		gl.DeleteProgram(p.prog)
		p.prog = 0
	}
}
