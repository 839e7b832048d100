package buffers

import (
	"github.com/glkit/glkit/assert"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// AttribType is the shader-facing type of one vertex attribute (e.g. Float3 for a position)
type AttribType uint8

const (
	AttribTypeUnknown AttribType = iota

	AttribTypeFloat
	AttribTypeFloat2
	AttribTypeFloat3
	AttribTypeFloat4

	AttribTypeMat3
	AttribTypeMat4

	AttribTypeInt
	AttribTypeInt2
	AttribTypeInt3
	AttribTypeInt4

	AttribTypeByte
)

func (at AttribType) GLType() uint32 {

	switch at {

	case AttribTypeFloat:
		fallthrough
	case AttribTypeFloat2:
		fallthrough
	case AttribTypeFloat3:
		fallthrough
	case AttribTypeFloat4:
		fallthrough
	case AttribTypeMat3:
		fallthrough
	case AttribTypeMat4:
		return gl.FLOAT

	case AttribTypeInt:
		fallthrough
	case AttribTypeInt2:
		fallthrough
	case AttribTypeInt3:
		fallthrough
	case AttribTypeInt4:
		return gl.INT

	case AttribTypeByte:
		return gl.BYTE

	default:
		assert.T(false, "Unknown attrib type passed. AttribType '%d'", at)
		return 0
	}
}

// IsInteger reports whether the type must be described through the
// integer attribute pointer so values reach the shader unconverted
func (at AttribType) IsInteger() bool {

	switch at {
	case AttribTypeInt:
		fallthrough
	case AttribTypeInt2:
		fallthrough
	case AttribTypeInt3:
		fallthrough
	case AttribTypeInt4:
		fallthrough
	case AttribTypeByte:
		return true

	default:
		return false
	}
}

// CompCount returns the number of components in the type (e.g. for Float2 its 2).
// Matrices count rows*cols components because they are laid out as one wide attribute
func (at AttribType) CompCount() int32 {

	switch at {

	case AttribTypeFloat:
		fallthrough
	case AttribTypeInt:
		fallthrough
	case AttribTypeByte:
		return 1

	case AttribTypeFloat2:
		fallthrough
	case AttribTypeInt2:
		return 2

	case AttribTypeFloat3:
		fallthrough
	case AttribTypeInt3:
		return 3

	case AttribTypeFloat4:
		fallthrough
	case AttribTypeInt4:
		return 4

	case AttribTypeMat3:
		return 3 * 3
	case AttribTypeMat4:
		return 4 * 4

	default:
		assert.T(false, "Unknown attrib type passed. AttribType '%d'", at)
		return 0
	}
}

// Size returns the total size in bytes (e.g. for Float3 its 3*4=12 bytes)
func (at AttribType) Size() int32 {

	switch at {

	case AttribTypeFloat:
		fallthrough
	case AttribTypeInt:
		return 4

	case AttribTypeFloat2:
		fallthrough
	case AttribTypeInt2:
		return 2 * 4

	case AttribTypeFloat3:
		fallthrough
	case AttribTypeInt3:
		return 3 * 4

	case AttribTypeFloat4:
		fallthrough
	case AttribTypeInt4:
		return 4 * 4

	case AttribTypeMat3:
		return 3 * 3 * 4
	case AttribTypeMat4:
		return 4 * 4 * 4

	case AttribTypeByte:
		return 1

	default:
		assert.T(false, "Unknown attrib type passed. AttribType '%d'", at)
		return 0
	}
}

func (at AttribType) String() string {

	switch at {

	case AttribTypeFloat:
		return "Float"
	case AttribTypeFloat2:
		return "Float2"
	case AttribTypeFloat3:
		return "Float3"
	case AttribTypeFloat4:
		return "Float4"

	case AttribTypeMat3:
		return "Mat3"
	case AttribTypeMat4:
		return "Mat4"

	case AttribTypeInt:
		return "Int"
	case AttribTypeInt2:
		return "Int2"
	case AttribTypeInt3:
		return "Int3"
	case AttribTypeInt4:
		return "Int4"

	case AttribTypeByte:
		return "Byte"

	default:
		return "Unknown"
	}
}
