package buffers

import (
	"github.com/glkit/glkit/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type IndexBuffer struct {
	Id uint32
	// SizeBytes is the storage allocated on the GPU for this buffer
	SizeBytes int
	Usage     BufUsage
	// IndexBufCount is the number of uint32 indices the allocation holds
	IndexBufCount int32
}

func (ib *IndexBuffer) Bind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.Id)
}

func (ib *IndexBuffer) UnBind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
}

// WriteRange overwrites len(indices)*4 bytes of an already allocated buffer
// starting at byteOffset. The caller must keep offset+size within the
// allocation done at creation; out of range writes are left to OpenGL
func (ib *IndexBuffer) WriteRange(byteOffset int, indices []uint32) {

	if len(indices) == 0 {
		return
	}

	ib.Bind()
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, byteOffset, len(indices)*4, gl.Ptr(&indices[0]))
}

func (ib *IndexBuffer) Delete() {

	if ib.Id == 0 {
		return
	}

	gl.DeleteBuffers(1, &ib.Id)
	ib.Id = 0
}

// NewIndexBuffer allocates sizeBytes of storage. If indices is non-nil the
// data is uploaded now and the buffer is marked static, otherwise the
// storage is left unwritten and marked dynamic for later WriteRange calls
func NewIndexBuffer(sizeBytes int, indices []uint32) IndexBuffer {

	ib := IndexBuffer{
		SizeBytes:     sizeBytes,
		IndexBufCount: int32(sizeBytes / 4),
	}

	gl.GenBuffers(1, &ib.Id)
	if ib.Id == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL buffer")
	}

	ib.Bind()

	if len(indices) > 0 {
		ib.Usage = BufUsage_Static_Draw
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, sizeBytes, gl.Ptr(&indices[0]), ib.Usage.ToGL())
	} else {
		ib.Usage = BufUsage_Dynamic_Draw
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, sizeBytes, nil, ib.Usage.ToGL())
	}

	return ib
}
