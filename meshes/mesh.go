package meshes

import (
	"errors"

	"github.com/bloeys/assimp-go/asig"
	"github.com/bloeys/gglm/gglm"
	"github.com/glkit/glkit/assert"
	"github.com/glkit/glkit/buffers"
)

type SubMesh struct {
	BaseVertex int32
	BaseIndex  uint32
	IndexCount int32
}

type Mesh struct {
	Name string
	/*
		Vao has the following attribute layout:
			- Slot0: pos (Float3)
			- Slot1: normal (Float3)
			- Slot2: tangent (Float3)
			- Slot3: uv0 (Float2)
			- (Optional) Slot4: color0 (Float4)
	*/
	Vao       buffers.VertexArray
	Vbo       buffers.VertexBuffer
	SubMeshes []SubMesh
}

func (m *Mesh) Delete() {
	m.Vbo.Delete()
	m.Vao.IndexBuffer.Delete()
	m.Vao.Delete()
}

var (
	// DefaultMeshLoadFlags are the flags always applied when loading a new mesh regardless
	// of what post process flags are used when loading a mesh.
	//
	// Defaults to: asig.PostProcessTriangulate | asig.PostProcessCalcTangentSpace;
	// Note: changing this will break shaders that expect tangents to be there
	DefaultMeshLoadFlags asig.PostProcess = asig.PostProcessTriangulate | asig.PostProcessCalcTangentSpace
)

func NewMesh(name, modelPath string, postProcessFlags asig.PostProcess) (Mesh, error) {

	finalPostProcessFlags := DefaultMeshLoadFlags | postProcessFlags

	scene, release, err := asig.ImportFile(modelPath, finalPostProcessFlags)
	if err != nil {
		return Mesh{}, errors.New("Failed to load model. Err: " + err.Error())
	}
	defer release()

	if len(scene.Meshes) == 0 {
		return Mesh{}, errors.New("No meshes found in file: " + modelPath)
	}

	mesh := Mesh{
		Name:      name,
		Vao:       buffers.NewVertexArray(),
		SubMeshes: make([]SubMesh, 0, len(scene.Meshes)),
	}

	var layout []buffers.VertexAttrib
	var stride int32

	var vertexBufData []float32
	var indexBufData []uint32

	for i := 0; i < len(scene.Meshes); i++ {

		sceneMesh := scene.Meshes[i]

		// We always want tangents and UV0
		if len(sceneMesh.Tangents) == 0 {
			sceneMesh.Tangents = make([]gglm.Vec3, len(sceneMesh.Vertices))
		}

		if len(sceneMesh.TexCoords[0]) == 0 {
			sceneMesh.TexCoords[0] = make([]gglm.Vec3, len(sceneMesh.Vertices))
		}

		hasColorSet0 := len(sceneMesh.ColorSets) > 0 && len(sceneMesh.ColorSets[0]) > 0

		layoutToUse := []buffers.VertexAttrib{
			buffers.NewVertexAttrib(buffers.AttribTypeFloat3, false, "pos"),
			buffers.NewVertexAttrib(buffers.AttribTypeFloat3, false, "normal"),
			buffers.NewVertexAttrib(buffers.AttribTypeFloat3, false, "tangent"),
			buffers.NewVertexAttrib(buffers.AttribTypeFloat2, false, "uv0"),
		}

		if hasColorSet0 {
			layoutToUse = append(layoutToUse, buffers.NewVertexAttrib(buffers.AttribTypeFloat4, false, "color0"))
		}

		if i == 0 {
			layout = layoutToUse
			stride = buffers.ComputeLayout(layout)
		} else {

			// All submeshes share one vbo, so the buffer must have one layout.
			// Meshes with differing layouts would need one vbo per layout
			assert.T(len(layout) == len(layoutToUse), "Vertex layout of submesh '%d' of mesh '%s' at path '%s' does not equal vertex layout of the first submesh. Original layout: %v; This layout: %v", i, name, modelPath, layout, layoutToUse)

			for j := 0; j < len(layout); j++ {
				assert.T(layout[j].Type == layoutToUse[j].Type, "Vertex layout of submesh '%d' of mesh '%s' at path '%s' does not equal vertex layout of the first submesh. Original layout: %v; This layout: %v", i, name, modelPath, layout, layoutToUse)
			}
		}

		streams := []vertexStream{
			{CompCount: 3, Data: vec3sToFloats(sceneMesh.Vertices)},
			{CompCount: 3, Data: vec3sToFloats(sceneMesh.Normals)},
			{CompCount: 3, Data: vec3sToFloats(sceneMesh.Tangents)},
			{CompCount: 2, Data: vec3sToUVFloats(sceneMesh.TexCoords[0])},
		}

		if hasColorSet0 {
			streams = append(streams, vertexStream{CompCount: 4, Data: vec4sToFloats(sceneMesh.ColorSets[0])})
		}

		indices := flattenFaces(sceneMesh.Faces)
		mesh.SubMeshes = append(mesh.SubMeshes, SubMesh{

			// Index of the vertex to start from (e.g. if index buffer says use vertex 5, and BaseVertex=3, the vertex used will be vertex 8)
			BaseVertex: int32(len(vertexBufData)*4) / stride,
			// Which index (in the index buffer) to start from
			BaseIndex: uint32(len(indexBufData)),
			// How many indices in this submesh
			IndexCount: int32(len(indices)),
		})

		vertexBufData = append(vertexBufData, interleave(streams)...)
		indexBufData = append(indexBufData, indices...)
	}

	mesh.Vbo = buffers.NewVertexBuffer(len(vertexBufData)*4, vertexBufData)
	ibo := buffers.NewIndexBuffer(len(indexBufData)*4, indexBufData)

	// NewVertexBuffer leaves the vbo bound, which is what SetAttribs describes against
	mesh.Vao.SetAttribs(layout)
	mesh.Vao.SetIndexBuffer(ibo)

	// This is needed so that if you load meshes one after the other the
	// following mesh doesn't attach its vbo/ibo to this vao
	mesh.Vao.UnBind()

	return mesh, nil
}

// vertexStream is one attribute's worth of per-vertex floats, flattened
type vertexStream struct {
	CompCount int
	Data      []float32
}

// interleave merges per-attribute streams into one record-per-vertex buffer.
// All streams must describe the same number of vertices
func interleave(streams []vertexStream) []float32 {

	assert.T(len(streams) > 0, "No input sent to interleave")

	vertCount := len(streams[0].Data) / streams[0].CompCount

	totalComps := 0
	for i := 0; i < len(streams); i++ {

		s := &streams[i]
		assert.T(s.CompCount > 0, "Interleave stream %d has no component count", i)
		assert.T(len(s.Data) == vertCount*s.CompCount, "Mesh vertex data given to interleave is not the same length. Stream %d has %d floats but %d vertices of %d components were expected", i, len(s.Data), vertCount, s.CompCount)

		totalComps += s.CompCount
	}

	out := make([]float32, 0, vertCount*totalComps)
	for v := 0; v < vertCount; v++ {
		for i := 0; i < len(streams); i++ {
			s := &streams[i]
			out = append(out, s.Data[v*s.CompCount:(v+1)*s.CompCount]...)
		}
	}

	return out
}

func vec3sToFloats(v3s []gglm.Vec3) []float32 {

	out := make([]float32, 0, len(v3s)*3)
	for i := 0; i < len(v3s); i++ {
		out = append(out, v3s[i].Data[:]...)
	}

	return out
}

// vec3sToUVFloats keeps only the first two components, for texture
// coordinates that assimp hands back as Vec3
func vec3sToUVFloats(v3s []gglm.Vec3) []float32 {

	out := make([]float32, 0, len(v3s)*2)
	for i := 0; i < len(v3s); i++ {
		out = append(out, v3s[i].X(), v3s[i].Y())
	}

	return out
}

func vec4sToFloats(v4s []gglm.Vec4) []float32 {

	out := make([]float32, 0, len(v4s)*4)
	for i := 0; i < len(v4s); i++ {
		out = append(out, v4s[i].Data[:]...)
	}

	return out
}

func flattenFaces(faces []asig.Face) []uint32 {

	assert.T(len(faces[0].Indices) == 3, "Face doesn't have 3 indices. Index count: %v\n", len(faces[0].Indices))

	uints := make([]uint32, len(faces)*3)
	for i := 0; i < len(faces); i++ {
		uints[i*3+0] = uint32(faces[i].Indices[0])
		uints[i*3+1] = uint32(faces[i].Indices[1])
		uints[i*3+2] = uint32(faces[i].Indices[2])
	}

	return uints
}
