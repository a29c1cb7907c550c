package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"glitch-corridor/core"
	"glitch-corridor/internal/logger"
	"glitch-corridor/math"
	"glitch-corridor/scene"
)

// MaxPointLights is the number of point lights the standard shader evaluates.
const MaxPointLights = 8

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
	HasIndices bool
}

// Renderer draws a scene graph with the standard material model.
type Renderer struct {
	program uint32
	log     *logger.Logger

	// Vertex transform uniforms
	mvpLoc   int32
	modelLoc int32

	// Environment
	cameraPosLoc    int32
	ambientColorLoc int32
	hemiSkyLoc      int32
	hemiGroundLoc   int32
	fogEnabledLoc   int32
	fogColorLoc     int32
	fogNearLoc      int32
	fogFarLoc       int32

	// Point lights
	pointLightCountLoc     int32
	pointLightPosLoc       [MaxPointLights]int32
	pointLightColorLoc     [MaxPointLights]int32
	pointLightIntensityLoc [MaxPointLights]int32
	pointLightRangeLoc     [MaxPointLights]int32

	// Material
	matColorLoc     int32
	matRoughnessLoc int32
	matMetalnessLoc int32
	unlitLoc        int32
	mapLoc          int32
	hasMapLoc       int32
	mapRepeatLoc    int32

	viewportW int32
	viewportH int32

	lastDrawn  int
	lastCulled int

	gpuMeshes map[*scene.Mesh]*GPUMesh
	textures  []*scene.Texture
	failed    map[*scene.Texture]bool
}

const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;

uniform mat4 mvp;
uniform mat4 model;

out vec3 fragWorldPos;
out vec3 fragNormal;
out vec2 fragUV;

void main() {
    // Row-vector matrices uploaded untransposed read as their column-vector form.
    vec4 world   = model * vec4(inPosition, 1.0);
    fragWorldPos = world.xyz;
    fragNormal   = mat3(model) * inNormal;
    fragUV       = inUV;
    gl_Position  = mvp * vec4(inPosition, 1.0);
}
` + "\x00"

const fragSrc = `
#version 410 core
#define MAX_POINT_LIGHTS 8
const float PI = 3.14159265359;

in vec3 fragWorldPos;
in vec3 fragNormal;
in vec2 fragUV;

out vec4 outColor;

uniform vec3  cameraPos;
uniform vec3  ambientColor;
uniform vec3  hemiSky;
uniform vec3  hemiGround;

uniform int   pointLightCount;
uniform vec3  pointLightPos[MAX_POINT_LIGHTS];
uniform vec3  pointLightColor[MAX_POINT_LIGHTS];
uniform float pointLightIntensity[MAX_POINT_LIGHTS];
uniform float pointLightRange[MAX_POINT_LIGHTS];

uniform vec3  matColor;
uniform float matRoughness;
uniform float matMetalness;
uniform bool  unlit;

uniform sampler2D colorMap;
uniform bool  hasMap;
uniform vec2  mapRepeat;

uniform bool  fogEnabled;
uniform vec3  fogColor;
uniform float fogNear;
uniform float fogFar;

float DistributionGGX(vec3 N, vec3 H, float roughness) {
    float a  = roughness * roughness;
    float a2 = a * a;
    float NdH  = max(dot(N, H), 0.0);
    float d    = NdH * NdH * (a2 - 1.0) + 1.0;
    return a2 / (PI * d * d);
}

float GeometrySchlickGGX(float NdV, float roughness) {
    float r = roughness + 1.0;
    float k = (r * r) / 8.0;
    return NdV / (NdV * (1.0 - k) + k);
}

float GeometrySmith(vec3 N, vec3 V, vec3 L, float roughness) {
    return GeometrySchlickGGX(max(dot(N, V), 0.0), roughness) *
           GeometrySchlickGGX(max(dot(N, L), 0.0), roughness);
}

vec3 FresnelSchlick(float cosTheta, vec3 F0) {
    return F0 + (1.0 - F0) * pow(clamp(1.0 - cosTheta, 0.0, 1.0), 5.0);
}

vec3 evalPBR(vec3 N, vec3 V, vec3 L, vec3 radiance, vec3 albedo, float metallic, float roughness, vec3 F0) {
    vec3  H   = normalize(V + L);
    float NdL = max(dot(N, L), 0.0);
    float NdV = max(dot(N, V), 0.0);
    float D = DistributionGGX(N, H, roughness);
    float G = GeometrySmith(N, V, L, roughness);
    vec3  F = FresnelSchlick(max(dot(H, V), 0.0), F0);
    vec3 specular = (D * G * F) / (4.0 * NdV * NdL + 0.0001);
    vec3 kD = (vec3(1.0) - F) * (1.0 - metallic);
    return (kD * albedo / PI + specular) * radiance * NdL;
}

vec3 applyFog(vec3 color) {
    if (!fogEnabled) {
        return color;
    }
    float dist = length(fragWorldPos - cameraPos);
    float f    = smoothstep(fogNear, fogFar, dist);
    return mix(color, fogColor, f);
}

void main() {
    vec4 baseColor = vec4(matColor, 1.0);
    if (hasMap) {
        baseColor *= texture(colorMap, fragUV * mapRepeat);
    }

    if (unlit) {
        outColor = vec4(applyFog(baseColor.rgb), baseColor.a);
        return;
    }

    vec3 N = normalize(fragNormal);
    if (!gl_FrontFacing) {
        N = -N;
    }
    vec3 V = normalize(cameraPos - fragWorldPos);

    float roughness = clamp(matRoughness, 0.04, 1.0);
    float metallic  = clamp(matMetalness, 0.0, 1.0);
    vec3  albedo    = baseColor.rgb;
    vec3  F0        = mix(vec3(0.04), albedo, metallic);

    vec3 hemi  = mix(hemiGround, hemiSky, N.y * 0.5 + 0.5);
    vec3 color = (ambientColor + hemi) * albedo * (1.0 - metallic);

    for (int i = 0; i < pointLightCount && i < MAX_POINT_LIGHTS; i++) {
        vec3  toLight = pointLightPos[i] - fragWorldPos;
        float dist    = length(toLight);
        float atten   = 1.0;
        if (pointLightRange[i] > 0.0) {
            atten = clamp(1.0 - (dist * dist) / (pointLightRange[i] * pointLightRange[i]), 0.0, 1.0);
            atten *= atten;
        }
        vec3 rad = pointLightColor[i] * pointLightIntensity[i] * atten;
        color += evalPBR(N, V, normalize(toLight), rad, albedo, metallic, roughness, F0) * PI;
    }

    outColor = vec4(applyFog(color), baseColor.a);
}
` + "\x00"

// NewRenderer initialises GL and compiles the standard shader.
// The GL context must be current on the calling goroutine.
func NewRenderer(log *logger.Logger) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Infof("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	log.Infof("OpenGL renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))

	prog, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("standard shader compile: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.FrontFace(gl.CCW)
	gl.CullFace(gl.BACK)

	r := &Renderer{
		program: prog,
		log:     log,

		mvpLoc:   uniform(prog, "mvp"),
		modelLoc: uniform(prog, "model"),

		cameraPosLoc:    uniform(prog, "cameraPos"),
		ambientColorLoc: uniform(prog, "ambientColor"),
		hemiSkyLoc:      uniform(prog, "hemiSky"),
		hemiGroundLoc:   uniform(prog, "hemiGround"),
		fogEnabledLoc:   uniform(prog, "fogEnabled"),
		fogColorLoc:     uniform(prog, "fogColor"),
		fogNearLoc:      uniform(prog, "fogNear"),
		fogFarLoc:       uniform(prog, "fogFar"),

		pointLightCountLoc: uniform(prog, "pointLightCount"),

		matColorLoc:     uniform(prog, "matColor"),
		matRoughnessLoc: uniform(prog, "matRoughness"),
		matMetalnessLoc: uniform(prog, "matMetalness"),
		unlitLoc:        uniform(prog, "unlit"),
		mapLoc:          uniform(prog, "colorMap"),
		hasMapLoc:       uniform(prog, "hasMap"),
		mapRepeatLoc:    uniform(prog, "mapRepeat"),

		gpuMeshes: make(map[*scene.Mesh]*GPUMesh),
		failed:    make(map[*scene.Texture]bool),
	}

	for i := 0; i < MaxPointLights; i++ {
		r.pointLightPosLoc[i] = uniform(prog, fmt.Sprintf("pointLightPos[%d]", i))
		r.pointLightColorLoc[i] = uniform(prog, fmt.Sprintf("pointLightColor[%d]", i))
		r.pointLightIntensityLoc[i] = uniform(prog, fmt.Sprintf("pointLightIntensity[%d]", i))
		r.pointLightRangeLoc[i] = uniform(prog, fmt.Sprintf("pointLightRange[%d]", i))
	}

	gl.UseProgram(prog)
	gl.Uniform1i(r.mapLoc, 0)

	return r, nil
}

// SetViewport resizes the OpenGL viewport.
func (r *Renderer) SetViewport(width, height int) {
	r.viewportW = int32(width)
	r.viewportH = int32(height)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Viewport returns the last size passed to SetViewport.
func (r *Renderer) Viewport() (int, int) {
	return int(r.viewportW), int(r.viewportH)
}

// Render clears the bound framebuffer to the scene background and draws
// every visible mesh inside the camera frustum.
func (r *Renderer) Render(s *scene.Scene, camera *scene.Camera) {
	bg := s.Background
	gl.ClearColor(bg.R, bg.G, bg.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)

	gl.UseProgram(r.program)
	r.applyEnvironment(s, camera)

	view := camera.GetViewMatrix()
	proj := camera.GetProjectionMatrix()
	nodes, culled := s.CullVisible(camera)
	for _, node := range nodes {
		model := node.GetWorldMatrix()
		mvp := model.Mul(view).Mul(proj)
		r.DrawMesh(node.Mesh, mvp, model)
	}
	r.lastDrawn = len(nodes)
	r.lastCulled = culled
}

// DrawStats returns the drawn and frustum-culled mesh counts of the last Render.
func (r *Renderer) DrawStats() (drawn, culled int) {
	return r.lastDrawn, r.lastCulled
}

func (r *Renderer) applyEnvironment(s *scene.Scene, camera *scene.Camera) {
	pos := camera.Position
	gl.Uniform3f(r.cameraPosLoc, pos.X, pos.Y, pos.Z)

	amb := s.Ambient.Color.Scale(s.Ambient.Intensity)
	gl.Uniform3f(r.ambientColorLoc, amb.R, amb.G, amb.B)

	var sky, ground core.Color
	if h := s.Hemisphere; h != nil {
		sky = h.Sky.Scale(h.Intensity)
		ground = h.Ground.Scale(h.Intensity)
	}
	gl.Uniform3f(r.hemiSkyLoc, sky.R, sky.G, sky.B)
	gl.Uniform3f(r.hemiGroundLoc, ground.R, ground.G, ground.B)

	if f := s.Fog; f != nil {
		gl.Uniform1i(r.fogEnabledLoc, 1)
		gl.Uniform3f(r.fogColorLoc, f.Color.R, f.Color.G, f.Color.B)
		gl.Uniform1f(r.fogNearLoc, f.Near)
		gl.Uniform1f(r.fogFarLoc, f.Far)
	} else {
		gl.Uniform1i(r.fogEnabledLoc, 0)
	}

	count := 0
	for _, l := range s.Lights() {
		if l.Type != scene.LightTypePoint || count >= MaxPointLights {
			continue
		}
		gl.Uniform3f(r.pointLightPosLoc[count], l.Position.X, l.Position.Y, l.Position.Z)
		gl.Uniform3f(r.pointLightColorLoc[count], l.Color.R, l.Color.G, l.Color.B)
		gl.Uniform1f(r.pointLightIntensityLoc[count], l.Intensity)
		gl.Uniform1f(r.pointLightRangeLoc[count], l.Range)
		count++
	}
	gl.Uniform1i(r.pointLightCountLoc, int32(count))
}

// DrawMesh draws a mesh with the given MVP and model matrices.
// Material properties are read from mesh.Material.
func (r *Renderer) DrawMesh(mesh *scene.Mesh, mvp, model math.Mat4) {
	gpu := r.ensureUploaded(mesh)
	if gpu == nil {
		return
	}

	gl.UniformMatrix4fv(r.mvpLoc, 1, false, (*float32)(unsafe.Pointer(&mvp[0][0])))
	gl.UniformMatrix4fv(r.modelLoc, 1, false, (*float32)(unsafe.Pointer(&model[0][0])))

	r.applyMaterial(mesh.MaterialOrDefault())

	gl.BindVertexArray(gpu.VAO)
	if gpu.HasIndices {
		gl.DrawElements(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(mesh.Vertices)))
	}
	gl.BindVertexArray(0)
}

// applyMaterial sets the material uniforms and binds the color map on unit 0.
// Must be called while r.program is active.
func (r *Renderer) applyMaterial(mat *scene.Material) {
	gl.Uniform3f(r.matColorLoc, mat.Color.R, mat.Color.G, mat.Color.B)
	gl.Uniform1f(r.matRoughnessLoc, mat.Roughness)
	gl.Uniform1f(r.matMetalnessLoc, mat.Metalness)
	if mat.Unlit {
		gl.Uniform1i(r.unlitLoc, 1)
	} else {
		gl.Uniform1i(r.unlitLoc, 0)
	}

	if mat.Side == scene.DoubleSide {
		gl.Disable(gl.CULL_FACE)
	} else {
		gl.Enable(gl.CULL_FACE)
	}

	tex := mat.Map
	if tex != nil && r.failed[tex] {
		tex = nil
	}
	if tex != nil && tex.GLID == 0 {
		if err := UploadTexture(tex); err != nil {
			r.log.Warnf("texture %q upload: %v", tex.Name, err)
			r.failed[tex] = true
			tex = nil
		} else {
			r.textures = append(r.textures, tex)
		}
	}
	if tex != nil && tex.GLID != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex.GLID)
		gl.Uniform1i(r.hasMapLoc, 1)
		gl.Uniform2f(r.mapRepeatLoc, tex.Repeat.X, tex.Repeat.Y)
	} else {
		gl.Uniform1i(r.hasMapLoc, 0)
	}
}

// ensureUploaded uploads vertex/index data if not already done.
func (r *Renderer) ensureUploaded(mesh *scene.Mesh) *GPUMesh {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		return gpu
	}
	if len(mesh.Vertices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gpu := &GPUMesh{
		IndexCount: int32(len(mesh.Indices)),
		HasIndices: len(mesh.Indices) > 0,
	}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.UV))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	if gpu.HasIndices {
		gl.GenBuffers(1, &gpu.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
			len(mesh.Indices)*4,
			gl.Ptr(mesh.Indices),
			gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)

	r.gpuMeshes[mesh] = gpu
	mesh.GPUData = gpu
	return gpu
}

// Destroy frees every GPU resource owned by the renderer.
func (r *Renderer) Destroy() {
	for mesh, gpu := range r.gpuMeshes {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		if gpu.HasIndices {
			gl.DeleteBuffers(1, &gpu.EBO)
		}
		mesh.GPUData = nil
	}
	r.gpuMeshes = make(map[*scene.Mesh]*GPUMesh)
	for _, tex := range r.textures {
		DeleteTexture(tex)
	}
	r.textures = nil
	gl.DeleteProgram(r.program)
}

// ── Shader helpers ────────────────────────────────────────────────────────────

func uniform(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
