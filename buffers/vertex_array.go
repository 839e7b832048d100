package buffers

import (
	"github.com/glkit/glkit/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type VertexArray struct {
	Id          uint32
	Stride      int32
	IndexBuffer IndexBuffer
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.Id)
}

func (va *VertexArray) UnBind() {
	gl.BindVertexArray(0)
}

// SetAttribs binds the vertex array and describes attribs against the
// currently bound ARRAY_BUFFER. Returns the computed stride in bytes.
//
// The receiver is always the target, so a forgotten BindVertexArray can't
// silently describe attributes on whatever array happened to be bound
func (va *VertexArray) SetAttribs(attribs []VertexAttrib) int32 {

	va.Bind()
	va.Stride = submitVertexAttribs(attribs)
	return va.Stride
}

func (va *VertexArray) SetIndexBuffer(ib IndexBuffer) {
	va.Bind()
	ib.Bind()
	va.IndexBuffer = ib
}

// Delete frees the vertex array object. Safe to call once; the buffers
// attached to the array are owned by the caller and are not freed here
func (va *VertexArray) Delete() {

	if va.Id == 0 {
		return
	}

	gl.DeleteVertexArrays(1, &va.Id)
	va.Id = 0
}

func NewVertexArray() VertexArray {

	vao := VertexArray{}

	gl.GenVertexArrays(1, &vao.Id)
	if vao.Id == 0 {
		logging.ErrLog.Println("Failed to create OpenGL vertex array object")
	}

	return vao
}
