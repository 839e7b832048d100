package rend3dgl

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/glkit/glkit/buffers"
	"github.com/glkit/glkit/materials"
	"github.com/glkit/glkit/meshes"
	"github.com/glkit/glkit/renderer"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ renderer.Render = &Rend3DGL{}

// Rend3DGL draws through the bound-state GL pipeline, skipping redundant
// vao/material binds between consecutive draws within a frame
type Rend3DGL struct {
	BoundVaoId uint32
	BoundMatId uint32
}

func (r *Rend3DGL) bindFor(vaoId uint32, mat *materials.Material) {

	if vaoId != r.BoundVaoId {
		gl.BindVertexArray(vaoId)
		r.BoundVaoId = vaoId
	}

	if mat.Id != r.BoundMatId {
		mat.Bind()
		r.BoundMatId = mat.Id
	}
}

func (r *Rend3DGL) DrawMesh(mesh meshes.Mesh, modelMat *gglm.Mat4, mat materials.Material) {

	r.bindFor(mesh.Vao.Id, &mat)

	if mat.Settings.Has(materials.MaterialSettings_HasModelMtx) {
		mat.SetUnifMat4("modelMat", modelMat)
	}

	for i := 0; i < len(mesh.SubMeshes); i++ {
		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, mesh.SubMeshes[i].IndexCount, gl.UNSIGNED_INT, indexByteOffset(mesh.SubMeshes[i].BaseIndex), mesh.SubMeshes[i].BaseVertex)
	}
}

// indexByteOffset converts an element index into the byte offset DrawElements
// expects, since index buffers hold uint32 indices
func indexByteOffset(baseIndex uint32) uintptr {
	return uintptr(baseIndex) * 4
}

func (r *Rend3DGL) DrawVertexArray(mat materials.Material, vao buffers.VertexArray, firstElement int32, elementCount int32) {
	r.bindFor(vao.Id, &mat)
	gl.DrawArrays(gl.TRIANGLES, firstElement, elementCount)
}

// DrawIndexed draws the vao's whole index buffer
func (r *Rend3DGL) DrawIndexed(mat materials.Material, vao buffers.VertexArray) {
	r.bindFor(vao.Id, &mat)
	gl.DrawElementsWithOffset(gl.TRIANGLES, vao.IndexBuffer.IndexBufCount, gl.UNSIGNED_INT, 0)
}

func (r *Rend3DGL) FrameEnd() {
	r.BoundVaoId = 0
	r.BoundMatId = 0
}

func NewRend3DGL() *Rend3DGL {
	return &Rend3DGL{}
}
