// Package renderer provides OpenGL rendering for the strip and its
// indicators.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/mobiusclock/mobius/internal/engine/shader"
	"github.com/mobiusclock/mobius/internal/logger"
	"github.com/mobiusclock/mobius/internal/strip"
	"github.com/mobiusclock/mobius/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Color is an RGB triple in linear space.
type Color [3]float32

// Palette maps strip materials to colors. The indicator colors live
// beside the material slots so a theme swaps as one unit.
type Palette struct {
	Materials  [strip.MaterialCount]Color
	Hour       Color
	Minute     Color
	Second     Color
	Background Color
}

// DefaultPalette returns the standard daylight theme.
func DefaultPalette() Palette {
	return Palette{
		Materials: [strip.MaterialCount]Color{
			strip.MaterialLight:         {0.87, 0.84, 0.78},
			strip.MaterialDarkPrimary:   {0.16, 0.17, 0.22},
			strip.MaterialDarkSecondary: {0.38, 0.40, 0.46},
		},
		Hour:       Color{0.85, 0.30, 0.22},
		Minute:     Color{0.25, 0.55, 0.85},
		Second:     Color{0.92, 0.78, 0.25},
		Background: Color{0.10, 0.10, 0.15},
	}
}

// ZenBackground is the near-black clear color used while zen mode is
// active.
var ZenBackground = Color{0.02, 0.02, 0.03}

// MeshHandle is an uploaded mesh ready to draw.
type MeshHandle struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	groups     []strip.MaterialGroup
	indexCount int32
}

// Renderer owns the GL state for the scene.
type Renderer struct {
	config  Config
	palette Palette

	program     uint32
	uniMVP      int32
	uniModel    int32
	uniColor    int32
	uniLightDir int32

	view math.Mat4
	proj math.Mat4
}

const vertexShaderSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uMVP;
uniform mat4 uModel;

out vec3 vNormal;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
	vNormal = mat3(uModel) * aNormal;
}
`

const fragmentShaderSrc = `
#version 410 core

in vec3 vNormal;

uniform vec3 uColor;
uniform vec3 uLightDir;

out vec4 FragColor;

void main() {
	vec3 n = normalize(vNormal);
	// Two-sided lambert: the strip has one surface but the rasterizer
	// still sees front and back fragments.
	float diff = abs(dot(n, normalize(uLightDir)));
	vec3 lit = uColor * (0.35 + 0.65 * diff);
	FragColor = vec4(lit, 1.0);
}
`

// New creates a renderer. Must be called after the OpenGL context
// exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:  cfg,
		palette: DefaultPalette(),
		view:    math.Identity(),
		proj:    math.Identity(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	bg := r.palette.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1.0)

	program, err := shader.CompileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program = program
	r.uniMVP = shader.MustGetUniform(program, "uMVP")
	r.uniModel = shader.MustGetUniform(program, "uModel")
	r.uniColor = shader.MustGetUniform(program, "uColor")
	r.uniLightDir = shader.MustGetUniform(program, "uLightDir")

	gl.UseProgram(program)
	gl.Uniform3f(r.uniLightDir, 0.4, 0.7, 1.0)
	gl.UseProgram(0)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Palette returns the active palette.
func (r *Renderer) Palette() Palette {
	return r.palette
}

// SetClearColor changes the background clear color.
func (r *Renderer) SetClearColor(c Color) {
	gl.ClearColor(c[0], c[1], c[2], 1.0)
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetCamera sets the view and projection matrices for subsequent draws.
func (r *Renderer) SetCamera(view, proj math.Mat4) {
	r.view = view
	r.proj = proj
}

// AspectRatio returns the current viewport aspect ratio.
func (r *Renderer) AspectRatio() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// UploadMesh copies a mesh into GPU buffers. The caller owns the handle
// and must release it with DeleteMesh.
func (r *Renderer) UploadMesh(mesh *strip.Mesh) (*MeshHandle, error) {
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("empty mesh")
	}

	// Interleave position and normal per vertex.
	data := make([]float32, 0, len(mesh.Vertices)*6)
	for _, v := range mesh.Vertices {
		data = append(data,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z)
	}

	h := &MeshHandle{
		groups:     mesh.Groups,
		indexCount: int32(len(mesh.Indices)),
	}

	gl.GenVertexArrays(1, &h.vao)
	gl.BindVertexArray(h.vao)

	gl.GenBuffers(1, &h.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &h.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, h.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	logger.Debug("mesh uploaded",
		zap.Uint32("vao", h.vao),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("indices", len(mesh.Indices)),
	)
	return h, nil
}

// DeleteMesh releases an uploaded mesh.
func (r *Renderer) DeleteMesh(h *MeshHandle) {
	if h == nil {
		return
	}
	if h.vao != 0 {
		gl.DeleteVertexArrays(1, &h.vao)
	}
	if h.vbo != 0 {
		gl.DeleteBuffers(1, &h.vbo)
	}
	if h.ebo != 0 {
		gl.DeleteBuffers(1, &h.ebo)
	}
	h.vao, h.vbo, h.ebo = 0, 0, 0
}

// DrawStrip draws a mesh using the palette's material colors per group.
func (r *Renderer) DrawStrip(h *MeshHandle, model math.Mat4) {
	mvp := r.proj.Mul(r.view).Mul(model)
	gl.UniformMatrix4fv(r.uniMVP, 1, false, mvp.Ptr())
	gl.UniformMatrix4fv(r.uniModel, 1, false, model.Ptr())

	gl.BindVertexArray(h.vao)
	for _, g := range h.groups {
		c := r.palette.Materials[g.Material]
		gl.Uniform3f(r.uniColor, c[0], c[1], c[2])
		gl.DrawElementsWithOffset(gl.TRIANGLES, g.IndexCount, gl.UNSIGNED_INT, uintptr(g.StartIndex)*4)
	}
	gl.BindVertexArray(0)
}

// DrawColored draws a mesh in a single flat color, ignoring its groups.
func (r *Renderer) DrawColored(h *MeshHandle, model math.Mat4, c Color) {
	mvp := r.proj.Mul(r.view).Mul(model)
	gl.UniformMatrix4fv(r.uniMVP, 1, false, mvp.Ptr())
	gl.UniformMatrix4fv(r.uniModel, 1, false, model.Ptr())
	gl.Uniform3f(r.uniColor, c[0], c[1], c[2])

	gl.BindVertexArray(h.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, h.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}
