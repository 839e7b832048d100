package main

import (
	"math"

	"github.com/bloeys/gglm/gglm"
	"github.com/glkit/glkit/buffers"
	"github.com/glkit/glkit/engine"
	"github.com/glkit/glkit/input"
	"github.com/glkit/glkit/logging"
	"github.com/glkit/glkit/materials"
	"github.com/glkit/glkit/renderer/rend3dgl"
	"github.com/glkit/glkit/textures"
	"github.com/glkit/glkit/timing"
	"github.com/veandco/go-sdl2/sdl"
)

const quadShaderSrc = `
//shader:vertex
#version 410 core

layout(location = 0) in vec3 vertPos;
layout(location = 1) in vec2 vertUV;

layout(std140) uniform Settings
{
    mat4 transform;
    vec4 tint;
};

out vec2 uv;

void main()
{
    uv = vertUV;
    gl_Position = transform * vec4(vertPos, 1.0);
}

//shader:fragment
#version 410 core

in vec2 uv;

layout(std140) uniform Settings
{
    mat4 transform;
    vec4 tint;
};

uniform sampler2D diffuseTex;

out vec4 fragColor;

void main()
{
    fragColor = texture(diffuseTex, uv) * tint;
}
`

const settingsUboSlot uint32 = 0

const (
	settingsFieldTransform uint16 = iota
	settingsFieldTint
)

type Game struct {
	Win       *engine.Window
	Rend      *rend3dgl.Rend3DGL
	shouldRun bool

	mat         materials.Material
	quadVao     buffers.VertexArray
	quadVbo     buffers.VertexBuffer
	tex         textures.Texture2D
	settingsUbo buffers.UniformBuffer

	angle float32
}

func main() {

	err := engine.Init()
	if err != nil {
		logging.ErrLog.Fatalf("Failed to init engine. Err: %v\n", err)
	}

	rend := rend3dgl.NewRend3DGL()
	win, err := engine.CreateOpenGLWindowCentered("glkit demo", 1280, 720, engine.WindowFlags_RESIZABLE, rend)
	if err != nil {
		logging.ErrLog.Fatalf("Failed to create window. Err: %v\n", err)
	}

	engine.SetVSync(true)

	game := &Game{
		Win:       win,
		Rend:      rend,
		shouldRun: true,
	}

	engine.Run(game, win)
}

func (g *Game) Init() {

	g.mat = materials.NewMaterialSrc("quad-mat", []byte(quadShaderSrc))

	g.tex.LoadFromMemory(8, 8, checkerboardPixels(8, 8), textures.Config{
		MinFilter:      textures.Param_Nearest,
		MagFilter:      textures.Param_Nearest,
		WrapS:          textures.Param_Repeat,
		WrapT:          textures.Param_Repeat,
		Format:         textures.Format_RGBA,
		InternalFormat: textures.Format_RGBA,
	})

	g.mat.DiffuseTex = g.tex.Id
	g.mat.SetUnifInt32("diffuseTex", int32(materials.TextureSlot_Diffuse))

	// x, y, z, u, v
	verts := []float32{
		-0.5, -0.5, 0, 0, 0,
		0.5, -0.5, 0, 2, 0,
		0.5, 0.5, 0, 2, 2,
		-0.5, 0.5, 0, 0, 2,
	}

	indices := []uint32{
		0, 1, 2,
		2, 3, 0,
	}

	layout := []buffers.VertexAttrib{
		buffers.NewVertexAttrib(buffers.AttribTypeFloat3, false, "vertPos"),
		buffers.NewVertexAttrib(buffers.AttribTypeFloat2, false, "vertUV"),
	}

	g.quadVao = buffers.NewVertexArray()
	g.quadVbo = buffers.NewVertexBuffer(len(verts)*4, verts)
	ibo := buffers.NewIndexBuffer(len(indices)*4, indices)

	g.quadVao.SetAttribs(layout)
	g.quadVao.SetIndexBuffer(ibo)
	g.quadVao.UnBind()

	g.settingsUbo = buffers.NewUniformBufferFields([]buffers.UniformBufferFieldInput{
		{Id: settingsFieldTransform, Type: buffers.AttribTypeMat4},
		{Id: settingsFieldTint, Type: buffers.AttribTypeFloat4},
	}, settingsUboSlot)

	g.mat.SetUniformBlockBindingPoint("Settings", settingsUboSlot)
}

func (g *Game) Update() {

	if input.IsQuitClicked() || input.KeyClicked(sdl.K_ESCAPE) {
		g.shouldRun = false
	}

	g.angle += timing.DT()
}

func (g *Game) Render() {

	transform := zRotationMat4(g.angle)
	g.settingsUbo.SetMat4(settingsFieldTransform, &transform)

	pulse := float32(0.75 + 0.25*math.Sin(timing.ElapsedTime()))
	tint := gglm.Vec4{Data: [4]float32{pulse, pulse, 1, 1}}
	g.settingsUbo.SetVec4(settingsFieldTint, &tint)

	g.Rend.DrawIndexed(g.mat, g.quadVao)
}

func (g *Game) FrameEnd() {
}

func (g *Game) DeInit() {

	g.settingsUbo.Delete()
	g.tex.Delete()
	g.quadVbo.Delete()
	g.quadVao.IndexBuffer.Delete()
	g.quadVao.Delete()
	g.mat.Delete()

	g.Win.Destroy()
}

func (g *Game) ShouldRun() bool {
	return g.shouldRun
}

// zRotationMat4 builds a column major rotation around the Z axis
func zRotationMat4(angle float32) gglm.Mat4 {

	s64, c64 := math.Sincos(float64(angle))
	s, c := float32(s64), float32(c64)

	return gglm.Mat4{Data: [4][4]float32{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// checkerboardPixels builds a 2x2-checker RGBA image for the demo texture
func checkerboardPixels(width, height int) []byte {

	pixels := make([]byte, 0, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {

			if (x/2+y/2)%2 == 0 {
				pixels = append(pixels, 240, 240, 240, 255)
			} else {
				pixels = append(pixels, 40, 40, 60, 255)
			}
		}
	}

	return pixels
}
