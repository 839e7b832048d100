package renderer

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/glkit/glkit/buffers"
	"github.com/glkit/glkit/materials"
	"github.com/glkit/glkit/meshes"
)

type Render interface {
	DrawMesh(mesh meshes.Mesh, modelMat *gglm.Mat4, mat materials.Material)
	DrawVertexArray(mat materials.Material, vao buffers.VertexArray, firstElement int32, count int32)
	DrawIndexed(mat materials.Material, vao buffers.VertexArray)
	FrameEnd()
}
