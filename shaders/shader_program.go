package shaders

import (
	"errors"
	"os"

	"github.com/bloeys/gglm/gglm"
	"github.com/glkit/glkit/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// ShaderProgram owns one linked program object plus a lazily filled cache of
// uniform name to location lookups. The cache lives exactly as long as the
// program and is dropped on Delete.
//
// Compile and link failures are reported, not fatal: the constructors print
// the driver log, return the error, and still hand back the (possibly
// unusable) program so the caller decides what to do with it
type ShaderProgram struct {
	Id           uint32
	VertShaderId uint32
	FragShaderId uint32
	GeomShaderId uint32

	UnifLocs map[string]int32
}

func (sp *ShaderProgram) AttachShader(shader Shader) {

	gl.AttachShader(sp.Id, shader.Id)
	switch shader.Type {
	case ShaderType_Vertex:
		sp.VertShaderId = shader.Id
	case ShaderType_Fragment:
		sp.FragShaderId = shader.Id
	case ShaderType_Geometry:
		sp.GeomShaderId = shader.Id
	default:
		logging.ErrLog.Fatalf("Unknown shader type '%d' for shader id '%d'\n", shader.Type, shader.Id)
	}
}

// Link links the attached stages and deletes the intermediate shader objects
// whether or not linking succeeded
func (sp *ShaderProgram) Link() error {

	gl.LinkProgram(sp.Id)
	err := getProgramLinkErrors(sp.Id)

	if sp.VertShaderId != 0 {
		gl.DeleteShader(sp.VertShaderId)
	}

	if sp.FragShaderId != 0 {
		gl.DeleteShader(sp.FragShaderId)
	}

	if sp.GeomShaderId != 0 {
		gl.DeleteShader(sp.GeomShaderId)
	}

	return err
}

func (sp *ShaderProgram) Bind() {
	gl.UseProgram(sp.Id)
}

func (sp *ShaderProgram) UnBind() {
	gl.UseProgram(0)
}

// GetUnifLoc resolves a uniform name to its location, hitting the driver at
// most once per name for the lifetime of the program. Unknown names resolve
// to -1 and are cached too, so repeated sets of a missing uniform stay cheap
func (sp *ShaderProgram) GetUnifLoc(uniformName string) int32 {

	loc, ok := sp.UnifLocs[uniformName]
	if ok {
		return loc
	}

	name := gl.Str(uniformName + "\x00")
	loc = gl.GetUniformLocation(sp.Id, name)
	if loc == -1 {
		logging.WarnLog.Printf("Uniform '%s' doesn't exist on shader program with id %d\n", uniformName, sp.Id)
	}

	sp.UnifLocs[uniformName] = loc
	return loc
}

func (sp *ShaderProgram) SetUnifInt32(uniformName string, val int32) {
	gl.ProgramUniform1i(sp.Id, sp.GetUnifLoc(uniformName), val)
}

func (sp *ShaderProgram) SetUnifInt32x2(uniformName string, x, y int32) {
	gl.ProgramUniform2i(sp.Id, sp.GetUnifLoc(uniformName), x, y)
}

func (sp *ShaderProgram) SetUnifInt32x3(uniformName string, x, y, z int32) {
	gl.ProgramUniform3i(sp.Id, sp.GetUnifLoc(uniformName), x, y, z)
}

func (sp *ShaderProgram) SetUnifInt32x4(uniformName string, x, y, z, w int32) {
	gl.ProgramUniform4i(sp.Id, sp.GetUnifLoc(uniformName), x, y, z, w)
}

func (sp *ShaderProgram) SetUnifUint32(uniformName string, val uint32) {
	gl.ProgramUniform1ui(sp.Id, sp.GetUnifLoc(uniformName), val)
}

func (sp *ShaderProgram) SetUnifUint32x2(uniformName string, x, y uint32) {
	gl.ProgramUniform2ui(sp.Id, sp.GetUnifLoc(uniformName), x, y)
}

func (sp *ShaderProgram) SetUnifUint32x3(uniformName string, x, y, z uint32) {
	gl.ProgramUniform3ui(sp.Id, sp.GetUnifLoc(uniformName), x, y, z)
}

func (sp *ShaderProgram) SetUnifUint32x4(uniformName string, x, y, z, w uint32) {
	gl.ProgramUniform4ui(sp.Id, sp.GetUnifLoc(uniformName), x, y, z, w)
}

func (sp *ShaderProgram) SetUnifFloat32(uniformName string, val float32) {
	gl.ProgramUniform1f(sp.Id, sp.GetUnifLoc(uniformName), val)
}

func (sp *ShaderProgram) SetUnifFloat64(uniformName string, val float64) {
	gl.ProgramUniform1d(sp.Id, sp.GetUnifLoc(uniformName), val)
}

func (sp *ShaderProgram) SetUnifVec2(uniformName string, vec2 *gglm.Vec2) {
	gl.ProgramUniform2fv(sp.Id, sp.GetUnifLoc(uniformName), 1, &vec2.Data[0])
}

func (sp *ShaderProgram) SetUnifVec3(uniformName string, vec3 *gglm.Vec3) {
	gl.ProgramUniform3fv(sp.Id, sp.GetUnifLoc(uniformName), 1, &vec3.Data[0])
}

func (sp *ShaderProgram) SetUnifVec4(uniformName string, vec4 *gglm.Vec4) {
	gl.ProgramUniform4fv(sp.Id, sp.GetUnifLoc(uniformName), 1, &vec4.Data[0])
}

func (sp *ShaderProgram) SetUnifMat3(uniformName string, mat3 *gglm.Mat3) {
	gl.ProgramUniformMatrix3fv(sp.Id, sp.GetUnifLoc(uniformName), 1, false, &mat3.Data[0][0])
}

func (sp *ShaderProgram) SetUnifMat4(uniformName string, mat4 *gglm.Mat4) {
	gl.ProgramUniformMatrix4fv(sp.Id, sp.GetUnifLoc(uniformName), 1, false, &mat4.Data[0][0])
}

// SetUniformBlockBindingPoint attaches the named uniform block of the program
// to a uniform buffer binding slot
func (sp *ShaderProgram) SetUniformBlockBindingPoint(uniformBlockName string, bindPointIndex uint32) {

	nullStr := gl.Str(uniformBlockName + "\x00")
	index := gl.GetUniformBlockIndex(sp.Id, nullStr)
	if index == gl.INVALID_INDEX {
		logging.WarnLog.Printf("Uniform block '%s' doesn't exist on shader program with id %d\n", uniformBlockName, sp.Id)
		return
	}

	gl.UniformBlockBinding(sp.Id, index, bindPointIndex)
}

// Delete frees the program once and invalidates the uniform location cache
func (sp *ShaderProgram) Delete() {

	if sp.Id == 0 {
		return
	}

	gl.DeleteProgram(sp.Id)
	sp.Id = 0
	sp.UnifLocs = nil
}

func NewShaderProgram() (ShaderProgram, error) {

	id := gl.CreateProgram()
	if id == 0 {
		return ShaderProgram{}, errors.New("failed to create shader program")
	}

	return ShaderProgram{Id: id, UnifLocs: make(map[string]int32)}, nil
}

// NewProgramFromSrc compiles and links a program from per-stage sources.
// geomSrc may be empty to skip the geometry stage.
//
// A failing stage or link prints the driver log and is reported through the
// returned error, but the program is produced either way; execution never
// aborts here and the caller must check the error before trusting the program
func NewProgramFromSrc(vertSrc, fragSrc, geomSrc string) (ShaderProgram, error) {

	shdrProg, err := NewShaderProgram()
	if err != nil {
		return ShaderProgram{}, err
	}

	vertShdr, vertErr := CompileShaderOfType([]byte(vertSrc), ShaderType_Vertex)
	shdrProg.AttachShader(vertShdr)

	fragShdr, fragErr := CompileShaderOfType([]byte(fragSrc), ShaderType_Fragment)
	shdrProg.AttachShader(fragShdr)

	var geomErr error
	if geomSrc != "" {
		var geomShdr Shader
		geomShdr, geomErr = CompileShaderOfType([]byte(geomSrc), ShaderType_Geometry)
		shdrProg.AttachShader(geomShdr)
	}

	linkErr := shdrProg.Link()

	return shdrProg, errors.Join(vertErr, fragErr, geomErr, linkErr)
}

// NewProgramFromFiles reads per-stage sources from disk and builds a program
// like NewProgramFromSrc. geomPath may be empty to skip the geometry stage.
// A missing or unreadable file is fatal
func NewProgramFromFiles(vertPath, fragPath, geomPath string) (ShaderProgram, error) {

	vertSrc := readShaderFile(vertPath)
	fragSrc := readShaderFile(fragPath)

	geomSrc := ""
	if geomPath != "" {
		geomSrc = readShaderFile(geomPath)
	}

	return NewProgramFromSrc(vertSrc, fragSrc, geomSrc)
}

func readShaderFile(path string) string {

	src, err := os.ReadFile(path)
	if err != nil {
		logging.ErrLog.Fatalf("Failed to read shader file '%s'. Err: %v\n", path, err)
	}

	return string(src)
}

// NewProgramFromCombinedFile builds a program from a single file holding all
// stages separated by '//shader:' markers. A missing file is fatal
func NewProgramFromCombinedFile(shaderPath string) (ShaderProgram, error) {
	return NewProgramFromCombinedSrc([]byte(readShaderFile(shaderPath)))
}

func NewProgramFromCombinedSrc(shaderSrc []byte) (ShaderProgram, error) {

	sections, err := splitCombinedSrc(shaderSrc)
	if err != nil {
		return ShaderProgram{}, err
	}

	shdrProg, err := NewShaderProgram()
	if err != nil {
		return ShaderProgram{}, err
	}

	var compileErrs error
	for i := 0; i < len(sections); i++ {

		shdr, err := CompileShaderOfType(sections[i].Src, sections[i].Type)
		compileErrs = errors.Join(compileErrs, err)
		shdrProg.AttachShader(shdr)
	}

	linkErr := shdrProg.Link()

	return shdrProg, errors.Join(compileErrs, linkErr)
}
