package materials

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/glkit/glkit/logging"
	"github.com/glkit/glkit/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	lastMatId uint32
)

type TextureSlot uint32

const (
	TextureSlot_Diffuse  TextureSlot = 0
	TextureSlot_Specular TextureSlot = 1
	TextureSlot_Normal   TextureSlot = 2
	TextureSlot_Emission TextureSlot = 3
)

type MaterialSettings uint64

const (
	MaterialSettings_None        MaterialSettings = iota
	MaterialSettings_HasModelMtx MaterialSettings = 1 << (iota - 1)
	MaterialSettings_HasNormalMtx
)

func (ms *MaterialSettings) Set(flags MaterialSettings) {
	*ms |= flags
}

func (ms *MaterialSettings) Remove(flags MaterialSettings) {
	*ms &= ^flags
}

func (ms *MaterialSettings) Has(flags MaterialSettings) bool {
	return *ms&flags == flags
}

// Material pairs a shader program with the textures it samples.
// Uniform lookups go through the program's own location cache
type Material struct {
	Id         uint32
	Name       string
	ShaderProg shaders.ShaderProgram
	Settings   MaterialSettings

	// Phong shading
	DiffuseTex  uint32
	SpecularTex uint32
	NormalTex   uint32
	EmissionTex uint32

	// Shininess of specular highlights
	Shininess float32
}

func (m *Material) Bind() {

	m.ShaderProg.Bind()

	if m.DiffuseTex != 0 {
		gl.ActiveTexture(uint32(gl.TEXTURE0 + TextureSlot_Diffuse))
		gl.BindTexture(gl.TEXTURE_2D, m.DiffuseTex)
	}

	if m.SpecularTex != 0 {
		gl.ActiveTexture(uint32(gl.TEXTURE0 + TextureSlot_Specular))
		gl.BindTexture(gl.TEXTURE_2D, m.SpecularTex)
	}

	if m.NormalTex != 0 {
		gl.ActiveTexture(uint32(gl.TEXTURE0 + TextureSlot_Normal))
		gl.BindTexture(gl.TEXTURE_2D, m.NormalTex)
	}

	if m.EmissionTex != 0 {
		gl.ActiveTexture(uint32(gl.TEXTURE0 + TextureSlot_Emission))
		gl.BindTexture(gl.TEXTURE_2D, m.EmissionTex)
	}
}

func (m *Material) UnBind() {
	gl.UseProgram(0)
}

func (m *Material) SetUniformBlockBindingPoint(uniformBlockName string, bindPointIndex uint32) {
	m.ShaderProg.SetUniformBlockBindingPoint(uniformBlockName, bindPointIndex)
}

func (m *Material) SetUnifInt32(uniformName string, val int32) {
	m.ShaderProg.SetUnifInt32(uniformName, val)
}

func (m *Material) SetUnifFloat32(uniformName string, val float32) {
	m.ShaderProg.SetUnifFloat32(uniformName, val)
}

func (m *Material) SetUnifVec2(uniformName string, vec2 *gglm.Vec2) {
	m.ShaderProg.SetUnifVec2(uniformName, vec2)
}

func (m *Material) SetUnifVec3(uniformName string, vec3 *gglm.Vec3) {
	m.ShaderProg.SetUnifVec3(uniformName, vec3)
}

func (m *Material) SetUnifVec4(uniformName string, vec4 *gglm.Vec4) {
	m.ShaderProg.SetUnifVec4(uniformName, vec4)
}

func (m *Material) SetUnifMat3(uniformName string, mat3 *gglm.Mat3) {
	m.ShaderProg.SetUnifMat3(uniformName, mat3)
}

func (m *Material) SetUnifMat4(uniformName string, mat4 *gglm.Mat4) {
	m.ShaderProg.SetUnifMat4(uniformName, mat4)
}

func (m *Material) Delete() {
	m.ShaderProg.Delete()
}

func getNewMatId() uint32 {
	lastMatId++
	return lastMatId
}

// NewMaterial builds a material from a combined '//shader:' file. A shader
// that fails to compile or link is fatal here; callers that want to handle
// broken shaders should build the program through the shaders package instead
func NewMaterial(matName, shaderPath string) Material {

	shdrProg, err := shaders.NewProgramFromCombinedFile(shaderPath)
	if err != nil {
		logging.ErrLog.Fatalf("Failed to create new material '%s'. Err: %s\n", matName, err.Error())
	}

	return Material{
		Id:         getNewMatId(),
		Name:       matName,
		ShaderProg: shdrProg,
	}
}

func NewMaterialSrc(matName string, shaderSrc []byte) Material {

	shdrProg, err := shaders.NewProgramFromCombinedSrc(shaderSrc)
	if err != nil {
		logging.ErrLog.Fatalf("Failed to create new material '%s'. Err: %s\n", matName, err.Error())
	}

	return Material{
		Id:         getNewMatId(),
		Name:       matName,
		ShaderProg: shdrProg,
	}
}
