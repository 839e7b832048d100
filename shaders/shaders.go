package shaders

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/glkit/glkit/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type Shader struct {
	Id   uint32
	Type ShaderType
}

func (s *Shader) Delete() {
	gl.DeleteShader(s.Id)
	s.Id = 0
}

// CompileShaderOfType compiles one shader stage. On compile failure the
// compiler log is printed and returned as the error, but the shader object
// is still returned so the caller can attach it and keep going
func CompileShaderOfType(shaderSource []byte, shaderType ShaderType) (Shader, error) {

	shaderId := gl.CreateShader(shaderType.ToGl())
	if shaderId == 0 {
		return Shader{}, fmt.Errorf("failed to create OpenGl shader. OpenGl Error=%d", gl.GetError())
	}

	//Load shader source and compile
	shaderCStr, shaderFree := gl.Strs(string(shaderSource) + "\x00")
	defer shaderFree()
	gl.ShaderSource(shaderId, 1, shaderCStr, nil)

	gl.CompileShader(shaderId)
	err := getShaderCompileErrors(shaderId, shaderType)

	return Shader{Id: shaderId, Type: shaderType}, err
}

func getShaderCompileErrors(shaderId uint32, shaderType ShaderType) error {

	var compiledSuccessfully int32
	gl.GetShaderiv(shaderId, gl.COMPILE_STATUS, &compiledSuccessfully)
	if compiledSuccessfully == gl.TRUE {
		return nil
	}

	var logLength int32
	gl.GetShaderiv(shaderId, gl.INFO_LOG_LENGTH, &logLength)

	log := gl.Str(infoLogBuf(logLength))
	gl.GetShaderInfoLog(shaderId, logLength, nil, log)

	errMsg := gl.GoStr(log)
	logging.ErrLog.Printf("Compiling %s shader with id %d failed. Err: %s\n", shaderType.String(), shaderId, errMsg)
	return errors.New(errMsg)
}

func getProgramLinkErrors(programId uint32) error {

	var linkedSuccessfully int32
	gl.GetProgramiv(programId, gl.LINK_STATUS, &linkedSuccessfully)
	if linkedSuccessfully == gl.TRUE {
		return nil
	}

	var logLength int32
	gl.GetProgramiv(programId, gl.INFO_LOG_LENGTH, &logLength)

	log := gl.Str(infoLogBuf(logLength))
	gl.GetProgramInfoLog(programId, logLength, nil, log)

	errMsg := gl.GoStr(log)
	logging.ErrLog.Printf("Linking shader program with id %d failed. Err: %s\n", programId, errMsg)
	return errors.New(errMsg)
}

// infoLogBuf builds a NUL filled buffer for driver info log reads. Some
// drivers report a zero log length even for a failed compile or link, and
// gl.Str needs at least the terminating NUL
func infoLogBuf(logLength int32) string {

	if logLength < 1 {
		logLength = 1
	}

	return strings.Repeat("\x00", int(logLength))
}

type shaderSection struct {
	Type ShaderType
	Src  []byte
}

// splitCombinedSrc splits a single source file holding multiple stages
// separated by '//shader:vertex', '//shader:fragment' and '//shader:geometry'
// markers into its per-stage sources
func splitCombinedSrc(shaderSrc []byte) ([]shaderSection, error) {

	shaderSources := bytes.Split(shaderSrc, []byte("//shader:"))
	if len(shaderSources) < 2 {
		return nil, errors.New("failed to read combined shader. The minimum shader types to have are '//shader:vertex' and '//shader:fragment'")
	}

	sections := make([]shaderSection, 0, 2)
	for i := 0; i < len(shaderSources); i++ {

		src := shaderSources[i]

		//This can happen when the shader type is at the start of the file
		if len(bytes.TrimSpace(src)) == 0 {
			continue
		}

		var shdrType ShaderType
		if bytes.HasPrefix(src, []byte("vertex")) {
			src = src[6:]
			shdrType = ShaderType_Vertex
		} else if bytes.HasPrefix(src, []byte("fragment")) {
			src = src[8:]
			shdrType = ShaderType_Fragment
		} else if bytes.HasPrefix(src, []byte("geometry")) {
			src = src[8:]
			shdrType = ShaderType_Geometry
		} else {
			return nil, errors.New("unknown shader type. Must be '//shader:vertex' or '//shader:fragment' or '//shader:geometry'")
		}

		sections = append(sections, shaderSection{Type: shdrType, Src: src})
	}

	hasVertex := false
	hasFragment := false
	for i := 0; i < len(sections); i++ {

		if sections[i].Type == ShaderType_Vertex {
			hasVertex = true
		}

		if sections[i].Type == ShaderType_Fragment {
			hasFragment = true
		}
	}

	if !hasVertex {
		return nil, errors.New("no vertex shader found. Please put '//shader:vertex' before your vertex shader")
	}

	if !hasFragment {
		return nil, errors.New("no fragment shader found. Please put '//shader:fragment' before your fragment shader")
	}

	return sections, nil
}
