package buffers

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexAttrib describes one attribute of an interleaved vertex record
// (e.g. a Float3 position). Size and Offset are derived, not caller supplied:
// Size comes from the type and Offset is assigned by ComputeLayout.
// The name is only there so layouts are readable in logs and errors.
type VertexAttrib struct {
	Name      string
	Type      AttribType
	Normalize bool
	Size      int32
	Offset    int32
}

func NewVertexAttrib(atype AttribType, normalize bool, name string) VertexAttrib {
	return VertexAttrib{
		Name:      name,
		Type:      atype,
		Normalize: normalize,
		Size:      atype.Size(),
	}
}

// ComputeLayout assigns each attrib its byte offset within one vertex record,
// keeping the input order, and returns the stride in bytes between consecutive
// records. An empty slice is fine and gives a stride of 0
func ComputeLayout(attribs []VertexAttrib) (stride int32) {

	for i := 0; i < len(attribs); i++ {
		attribs[i].Offset = stride
		stride += attribs[i].Size
	}

	return stride
}

// submitVertexAttribs describes attribs to the currently bound vertex array,
// reading from the currently bound ARRAY_BUFFER. Slot indices are assigned
// 0..n-1 in input order and every described slot is enabled.
//
// Integer types go through the integer pointer so the shader sees the raw
// values instead of an implicit float conversion. Matrices occupy a single
// wide slot of rows*cols floats
func submitVertexAttribs(attribs []VertexAttrib) (stride int32) {

	stride = ComputeLayout(attribs)

	for i := 0; i < len(attribs); i++ {

		a := &attribs[i]

		if a.Type.IsInteger() {
			gl.VertexAttribIPointerWithOffset(uint32(i), a.Type.CompCount(), a.Type.GLType(), stride, uintptr(a.Offset))
		} else {
			gl.VertexAttribPointerWithOffset(uint32(i), a.Type.CompCount(), a.Type.GLType(), a.Normalize, stride, uintptr(a.Offset))
		}

		gl.EnableVertexAttribArray(uint32(i))
	}

	return stride
}
