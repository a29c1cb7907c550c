package renderer

import (
	"fmt"

	"glitch-corridor/core"
	"glitch-corridor/internal/logger"
	"glitch-corridor/internal/opengl"
	"glitch-corridor/postfx"
	"glitch-corridor/scene"
)

// BlockerColor dims the frame while the pointer is released.
var BlockerColor = core.Color{R: 0, G: 0, B: 0, A: 0.5}

// panelColor marks the click target in the middle of the blocker.
var panelColor = core.Color{R: 1, G: 1, B: 1, A: 0.12}

// RenderEngine is the high-level renderer that drives the OpenGL backend.
// It owns the scene renderer, the optional post chain and the overlay.
type RenderEngine struct {
	gl       *opengl.Renderer
	overlay  *opengl.OverlayRenderer
	composer *opengl.Composer
	glitch   *opengl.GlitchPass
	log      *logger.Logger

	width  int
	height int
}

// NewRenderEngine creates the GL backend for a framebuffer of the given size.
// The GL context must be current.
func NewRenderEngine(width, height int, log *logger.Logger) (*RenderEngine, error) {
	glRenderer, err := opengl.NewRenderer(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenGL renderer: %w", err)
	}
	overlay, err := opengl.NewOverlayRenderer()
	if err != nil {
		glRenderer.Destroy()
		return nil, fmt.Errorf("failed to create overlay renderer: %w", err)
	}

	glRenderer.SetViewport(width, height)

	log.Info("Render engine initialized (OpenGL)")
	return &RenderEngine{
		gl:      glRenderer,
		overlay: overlay,
		log:     log,
		width:   width,
		height:  height,
	}, nil
}

// EnableGlitch builds the post chain: scene → glitch → screen. On failure
// the error is logged at WARN, the chain stays unavailable, and callers keep
// rendering through Render.
func (re *RenderEngine) EnableGlitch(s *scene.Scene, camera *scene.Camera, u *postfx.GlitchUniforms) error {
	if err := re.buildComposer(s, camera, u); err != nil {
		re.log.Warnf("post chain unavailable, rendering directly: %v", err)
		return err
	}
	re.log.Info("post chain ready (render → glitch → screen)")
	return nil
}

func (re *RenderEngine) buildComposer(s *scene.Scene, camera *scene.Camera, u *postfx.GlitchUniforms) error {
	composer, err := opengl.NewComposer(re.width, re.height)
	if err != nil {
		return fmt.Errorf("composer: %w", err)
	}
	glitch, err := opengl.NewGlitchPass(u)
	if err != nil {
		composer.Destroy()
		return err
	}
	copyPass, err := opengl.NewCopyPass()
	if err != nil {
		glitch.Destroy()
		composer.Destroy()
		return err
	}
	copyPass.RenderToScreen = true

	composer.AddPass(opengl.NewRenderPass(re.gl, s, camera))
	composer.AddPass(glitch)
	composer.AddPass(copyPass)

	re.composer = composer
	re.glitch = glitch
	return nil
}

// Composer returns the post chain, or nil when it is unavailable.
func (re *RenderEngine) Composer() *opengl.Composer {
	return re.composer
}

// Render draws the scene straight to the default framebuffer.
func (re *RenderEngine) Render(s *scene.Scene, camera *scene.Camera) {
	re.gl.SetViewport(re.width, re.height)
	re.gl.Render(s, camera)
}

// DrawStats returns the drawn and culled mesh counts of the last frame.
func (re *RenderEngine) DrawStats() (drawn, culled int) {
	return re.gl.DrawStats()
}

// DrawBlocker dims the frame and marks the click target.
func (re *RenderEngine) DrawBlocker() {
	re.overlay.DrawFullscreen(BlockerColor)
	re.overlay.DrawPanel(-0.3, -0.1, 0.6, 0.2, panelColor)
}

// Resize updates the viewport and the post chain targets. If the targets
// cannot be rebuilt the chain is torn down and the error returned; frames
// then go straight to the screen.
func (re *RenderEngine) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	re.width, re.height = width, height
	re.gl.SetViewport(width, height)
	if re.composer == nil {
		return nil
	}
	if err := re.composer.SetSize(width, height); err != nil {
		re.log.Warnf("resize post chain: %v", err)
		re.composer.Destroy()
		re.composer, re.glitch = nil, nil
		return fmt.Errorf("post chain resize: %w", err)
	}
	return nil
}

func (re *RenderEngine) Destroy() {
	if re.composer != nil {
		re.composer.Destroy()
	}
	re.overlay.Destroy()
	re.gl.Destroy()
}
