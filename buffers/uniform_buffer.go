package buffers

import (
	"math"

	"github.com/bloeys/gglm/gglm"
	"github.com/glkit/glkit/assert"
	"github.com/glkit/glkit/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// UniformBufferFieldInput declares one field of a std140 uniform block in
// declaration order. Offsets are computed, never caller supplied
type UniformBufferFieldInput struct {
	Id   uint16
	Type AttribType
	// Count should be set in case this field is an array of type `[Count]Type`.
	// Count=0 is valid and is equivalent to Count=1, which means the type is NOT an array, but a single field.
	Count uint16
}

type UniformBufferField struct {
	Id            uint16
	AlignedOffset uint16
	Count         uint16
	Type          AttribType
}

// UniformBuffer owns one GPU buffer bound to a fixed uniform binding slot.
// Because slots are a global namespace shared by all uniform buffers, the
// slot is re-bound before every write
type UniformBuffer struct {
	Id   uint32
	Slot uint32
	// Size is the allocated memory in bytes on the GPU for this uniform buffer
	Size   uint32
	Fields []UniformBufferField
}

func (ub *UniformBuffer) Bind() {
	gl.BindBuffer(gl.UNIFORM_BUFFER, ub.Id)
}

func (ub *UniformBuffer) UnBind() {
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

func (ub *UniformBuffer) bindBase() {
	gl.BindBufferBase(gl.UNIFORM_BUFFER, ub.Slot, ub.Id)
}

// WriteRange overwrites len(data) bytes of the allocation starting at
// byteOffset. Out of range writes are left to OpenGL
func (ub *UniformBuffer) WriteRange(byteOffset int, data []byte) {

	if len(data) == 0 {
		return
	}

	ub.bindBase()
	gl.BufferSubData(gl.UNIFORM_BUFFER, byteOffset, len(data), gl.Ptr(&data[0]))
}

func (ub *UniformBuffer) getField(fieldId uint16, fieldType AttribType) UniformBufferField {

	for i := 0; i < len(ub.Fields); i++ {

		f := ub.Fields[i]

		if f.Id != fieldId {
			continue
		}

		assert.T(f.Type == fieldType, "Uniform buffer field id=%d has type=%s but is being set as type=%s\n", fieldId, f.Type.String(), fieldType.String())
		return f
	}

	logging.ErrLog.Panicf("couldn't find uniform buffer field of id=%d and type=%s\n", fieldId, fieldType.String())
	return UniformBufferField{}
}

func (ub *UniformBuffer) SetInt32(fieldId uint16, val int32) {
	f := ub.getField(fieldId, AttribTypeInt)
	ub.bindBase()
	gl.BufferSubData(gl.UNIFORM_BUFFER, int(f.AlignedOffset), 4, gl.Ptr(&val))
}

// SetUint32 writes into an Int field slot. Std140 makes no layout distinction
// between 4-byte scalars, so uint fields are declared as AttribTypeInt
func (ub *UniformBuffer) SetUint32(fieldId uint16, val uint32) {
	f := ub.getField(fieldId, AttribTypeInt)
	ub.bindBase()
	gl.BufferSubData(gl.UNIFORM_BUFFER, int(f.AlignedOffset), 4, gl.Ptr(&val))
}

func (ub *UniformBuffer) SetFloat32(fieldId uint16, val float32) {
	f := ub.getField(fieldId, AttribTypeFloat)
	ub.bindBase()
	gl.BufferSubData(gl.UNIFORM_BUFFER, int(f.AlignedOffset), 4, gl.Ptr(&val))
}

func (ub *UniformBuffer) SetVec2(fieldId uint16, val *gglm.Vec2) {
	f := ub.getField(fieldId, AttribTypeFloat2)
	ub.bindBase()
	gl.BufferSubData(gl.UNIFORM_BUFFER, int(f.AlignedOffset), 4*2, gl.Ptr(&val.Data[0]))
}

func (ub *UniformBuffer) SetVec3(fieldId uint16, val *gglm.Vec3) {
	f := ub.getField(fieldId, AttribTypeFloat3)
	ub.bindBase()
	gl.BufferSubData(gl.UNIFORM_BUFFER, int(f.AlignedOffset), 4*3, gl.Ptr(&val.Data[0]))
}

func (ub *UniformBuffer) SetVec4(fieldId uint16, val *gglm.Vec4) {
	f := ub.getField(fieldId, AttribTypeFloat4)
	ub.bindBase()
	gl.BufferSubData(gl.UNIFORM_BUFFER, int(f.AlignedOffset), 4*4, gl.Ptr(&val.Data[0]))
}

func (ub *UniformBuffer) SetMat3(fieldId uint16, val *gglm.Mat3) {
	f := ub.getField(fieldId, AttribTypeMat3)
	buf := std140PackMat3(val)
	ub.bindBase()
	gl.BufferSubData(gl.UNIFORM_BUFFER, int(f.AlignedOffset), len(buf), gl.Ptr(&buf[0]))
}

func (ub *UniformBuffer) SetMat4(fieldId uint16, val *gglm.Mat4) {
	f := ub.getField(fieldId, AttribTypeMat4)
	ub.bindBase()
	gl.BufferSubData(gl.UNIFORM_BUFFER, int(f.AlignedOffset), 4*16, gl.Ptr(&val.Data[0][0]))
}

func (ub *UniformBuffer) Delete() {

	if ub.Id == 0 {
		return
	}

	gl.DeleteBuffers(1, &ub.Id)
	ub.Id = 0
	ub.Fields = nil
}

// std140PackMat3 lays the matrix out the way std140 stores a mat3: three
// columns of 3 floats, each column starting on a vec4 boundary
func std140PackMat3(val *gglm.Mat3) [48]byte {

	var buf [48]byte
	for col := 0; col < 3; col++ {

		idx := col * 16
		writeF32SliceToByteBuf(buf[:], &idx, val.Data[col][:])
	}

	return buf
}

func writeF32SliceToByteBuf(buf []byte, startIndex *int, vals []float32) {

	assert.T(*startIndex+len(vals)*4 <= len(buf), "failed to write slice of float32 to buffer because the buffer doesn't have enough space. Start index=%d, Buffer length=%d, but needs %d bytes free", *startIndex, len(buf), len(vals)*4)

	for i := 0; i < len(vals); i++ {

		bits := math.Float32bits(vals[i])

		buf[*startIndex] = byte(bits)
		buf[*startIndex+1] = byte(bits >> 8)
		buf[*startIndex+2] = byte(bits >> 16)
		buf[*startIndex+3] = byte(bits >> 24)

		*startIndex += 4
	}
}

func std140AlignmentBoundary(at AttribType) uint16 {

	switch at {

	case AttribTypeFloat:
		fallthrough
	case AttribTypeInt:
		return 4

	case AttribTypeFloat2:
		fallthrough
	case AttribTypeInt2:
		return 8

	case AttribTypeFloat3:
		fallthrough
	case AttribTypeFloat4:
		fallthrough
	case AttribTypeInt3:
		fallthrough
	case AttribTypeInt4:
		fallthrough
	case AttribTypeMat3:
		fallthrough
	case AttribTypeMat4:
		return 16

	default:
		assert.T(false, "AttribType '%s' is not usable in a std140 uniform block", at.String())
		return 0
	}
}

// computeStd140Layout assigns aligned offsets to fields in declaration order
// and returns the total block size. Matrices are treated as arrays of column
// vectors aligned like a vec4, and arrays of scalars/vectors are always
// aligned to 16 bytes, like a vec4
func computeStd140Layout(inputs []UniformBufferFieldInput) (fields []UniformBufferField, size uint32) {

	fields = make([]UniformBufferField, 0, len(inputs))

	var alignedOffset uint16 = 0
	fieldIdToTypeMap := make(map[uint16]AttribType, len(inputs))

	for i := 0; i < len(inputs); i++ {

		f := inputs[i]
		if f.Count == 0 {
			f.Count = 1
		}

		existingFieldType, ok := fieldIdToTypeMap[f.Id]
		assert.T(!ok, "Uniform buffer field id is reused within the same uniform buffer. FieldId=%d was first used on a field with type=%s and then used on a different field with type=%s\n", f.Id, existingFieldType.String(), f.Type.String())
		fieldIdToTypeMap[f.Id] = f.Type

		var alignmentBoundary uint16 = 16
		if f.Count == 1 {
			alignmentBoundary = std140AlignmentBoundary(f.Type)
		}

		alignmentError := alignedOffset % alignmentBoundary
		if alignmentError != 0 {
			alignedOffset += alignmentBoundary - alignmentError
		}

		newField := UniformBufferField{Id: f.Id, Type: f.Type, AlignedOffset: alignedOffset, Count: f.Count}
		fields = append(fields, newField)

		multiplier := uint16(1)
		if f.Type == AttribTypeMat3 {
			multiplier = 3
		} else if f.Type == AttribTypeMat4 {
			multiplier = 4
		}

		alignedOffset = newField.AlignedOffset + alignmentBoundary*f.Count*multiplier
	}

	return fields, uint32(alignedOffset)
}

// NewUniformBuffer allocates sizeBytes of dynamic storage and attaches the
// buffer to the given binding slot
func NewUniformBuffer(sizeBytes int, slot uint32) UniformBuffer {

	ub := UniformBuffer{
		Slot: slot,
		Size: uint32(sizeBytes),
	}

	gl.GenBuffers(1, &ub.Id)
	if ub.Id == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL buffer for a uniform buffer")
	}

	ub.Bind()
	gl.BufferData(gl.UNIFORM_BUFFER, sizeBytes, nil, gl.DYNAMIC_DRAW)
	ub.bindBase()
	ub.UnBind()

	return ub
}

// NewUniformBufferFields sizes the allocation from a std140 field layout so
// fields can later be written by id instead of by raw byte offset
func NewUniformBufferFields(inputs []UniformBufferFieldInput, slot uint32) UniformBuffer {

	fields, size := computeStd140Layout(inputs)

	ub := NewUniformBuffer(int(size), slot)
	ub.Fields = fields
	return ub
}
