package buffers

import (
	"github.com/glkit/glkit/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type VertexBuffer struct {
	Id uint32
	// SizeBytes is the storage allocated on the GPU for this buffer
	SizeBytes int
	Usage     BufUsage
}

func (vb *VertexBuffer) Bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.Id)
}

func (vb *VertexBuffer) UnBind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// WriteRange overwrites len(verts)*4 bytes of an already allocated buffer
// starting at byteOffset. The caller must keep offset+size within the
// allocation done at creation; out of range writes are left to OpenGL
func (vb *VertexBuffer) WriteRange(byteOffset int, verts []float32) {

	if len(verts) == 0 {
		return
	}

	vb.Bind()
	gl.BufferSubData(gl.ARRAY_BUFFER, byteOffset, len(verts)*4, gl.Ptr(&verts[0]))
}

func (vb *VertexBuffer) Delete() {

	if vb.Id == 0 {
		return
	}

	gl.DeleteBuffers(1, &vb.Id)
	vb.Id = 0
}

// NewVertexBuffer allocates sizeBytes of storage. If verts is non-nil the
// data is uploaded now and the buffer is marked static, otherwise the
// storage is left unwritten and marked dynamic for later WriteRange calls
func NewVertexBuffer(sizeBytes int, verts []float32) VertexBuffer {

	vb := VertexBuffer{SizeBytes: sizeBytes}

	gl.GenBuffers(1, &vb.Id)
	if vb.Id == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL buffer")
	}

	vb.Bind()

	if len(verts) > 0 {
		vb.Usage = BufUsage_Static_Draw
		gl.BufferData(gl.ARRAY_BUFFER, sizeBytes, gl.Ptr(&verts[0]), vb.Usage.ToGL())
	} else {
		vb.Usage = BufUsage_Dynamic_Draw
		gl.BufferData(gl.ARRAY_BUFFER, sizeBytes, nil, vb.Usage.ToGL())
	}

	return vb
}
