package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"glitch-corridor/postfx"
)

// glitchFragSrc is the GPU form of postfx.GlitchUniforms.Shade.
const glitchFragSrc = `
#version 410 core
in  vec2 vUv;
out vec4 outColor;

uniform int       bypass;
uniform sampler2D tDiffuse;
uniform float     time;
uniform float     amount;
uniform float     angle;
uniform float     seed;
uniform float     distortion_x;
uniform float     distortion_y;
uniform float     col_s;

float rand(vec2 n) {
    return fract(sin(dot(n, vec2(12.9898, 4.1414))) * 43758.5453);
}

void main() {
    if (bypass != 0) {
        outColor = texture(tDiffuse, vUv);
        return;
    }

    vec2  p  = vUv;
    float ty = time * 0.1;

    float grain = rand(p + ty) * 0.1;

    float vjitter = rand(vec2(ty, 0.0)) * distortion_y * amount;
    p.y += vjitter;

    float hjitter = rand(vec2(0.0, ty)) * distortion_x * amount;
    float rb = rand(p + hjitter) * col_s * amount;
    float gb = rand(p - hjitter) * col_s * amount;

    vec2 uvR = vec2(p.x + rb, p.y);
    vec2 uvG = vec2(p.x - gb, p.y);
    vec2 uvB = p;

    float scanline  = sin(p.y * 600.0 + ty * 10.0) * 0.02 * amount;
    float intensity = 0.8 + scanline;

    vec4 color = vec4(
        texture(tDiffuse, uvR).r * intensity,
        texture(tDiffuse, uvG).g * intensity,
        texture(tDiffuse, uvB).b * intensity,
        1.0
    );

    if (amount > 0.0) {
        color.rgb += vec3(grain);

        if (rand(vec2(floor(ty * 5.0), 0.0)) > 0.95) {
            float block_size = rand(vec2(ty * 10.0, 0.0)) * 0.1 + 0.01;
            if (rand(p) > 0.1) {
                vec2 block_uv = floor(p / block_size) * block_size;
                block_uv += rand(block_uv) * block_size * 0.5 - block_size * 0.25;
                if (length(block_uv - p) < block_size * 0.9) {
                    color = texture(tDiffuse, block_uv);
                }
            }
        }
    }

    outColor = color;
}
` + "\x00"

// GlitchPass is a ShaderPass driven by a postfx.GlitchUniforms set.
type GlitchPass struct {
	*ShaderPass
	Uniforms *postfx.GlitchUniforms

	bypassLoc      int32
	timeLoc        int32
	amountLoc      int32
	angleLoc       int32
	seedLoc        int32
	distortionXLoc int32
	distortionYLoc int32
	colSLoc        int32
}

// NewGlitchPass compiles the glitch program. u is read on every draw.
func NewGlitchPass(u *postfx.GlitchUniforms) (*GlitchPass, error) {
	sp, err := NewShaderPass(glitchFragSrc)
	if err != nil {
		return nil, fmt.Errorf("glitch shader: %w", err)
	}
	g := &GlitchPass{
		ShaderPass: sp,
		Uniforms:   u,

		bypassLoc:      uniform(sp.prog, "bypass"),
		timeLoc:        uniform(sp.prog, "time"),
		amountLoc:      uniform(sp.prog, "amount"),
		angleLoc:       uniform(sp.prog, "angle"),
		seedLoc:        uniform(sp.prog, "seed"),
		distortionXLoc: uniform(sp.prog, "distortion_x"),
		distortionYLoc: uniform(sp.prog, "distortion_y"),
		colSLoc:        uniform(sp.prog, "col_s"),
	}
	sp.bind = g.bindUniforms
	return g, nil
}

func (g *GlitchPass) bindUniforms() {
	u := g.Uniforms
	var bypass int32
	if u.Bypass {
		bypass = 1
	}
	gl.Uniform1i(g.bypassLoc, bypass)
	gl.Uniform1f(g.timeLoc, u.Time)
	gl.Uniform1f(g.amountLoc, u.Amount)
	gl.Uniform1f(g.angleLoc, u.Angle)
	gl.Uniform1f(g.seedLoc, u.Seed)
	gl.Uniform1f(g.distortionXLoc, u.DistortionX)
	gl.Uniform1f(g.distortionYLoc, u.DistortionY)
	gl.Uniform1f(g.colSLoc, u.ColS)
}
