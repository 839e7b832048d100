package buffers

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func TestAttribTypeTable(t *testing.T) {

	cases := []struct {
		atype     AttribType
		size      int32
		compCount int32
		glType    uint32
		isInteger bool
	}{
		{AttribTypeFloat, 4, 1, gl.FLOAT, false},
		{AttribTypeFloat2, 8, 2, gl.FLOAT, false},
		{AttribTypeFloat3, 12, 3, gl.FLOAT, false},
		{AttribTypeFloat4, 16, 4, gl.FLOAT, false},
		{AttribTypeMat3, 36, 9, gl.FLOAT, false},
		{AttribTypeMat4, 64, 16, gl.FLOAT, false},
		{AttribTypeInt, 4, 1, gl.INT, true},
		{AttribTypeInt2, 8, 2, gl.INT, true},
		{AttribTypeInt3, 12, 3, gl.INT, true},
		{AttribTypeInt4, 16, 4, gl.INT, true},
		{AttribTypeByte, 1, 1, gl.BYTE, true},
	}

	for _, c := range cases {

		if got := c.atype.Size(); got != c.size {
			t.Errorf("%s: got size %d, want %d", c.atype.String(), got, c.size)
		}

		if got := c.atype.CompCount(); got != c.compCount {
			t.Errorf("%s: got comp count %d, want %d", c.atype.String(), got, c.compCount)
		}

		if got := c.atype.GLType(); got != c.glType {
			t.Errorf("%s: got gl type %d, want %d", c.atype.String(), got, c.glType)
		}

		if got := c.atype.IsInteger(); got != c.isInteger {
			t.Errorf("%s: got isInteger %v, want %v", c.atype.String(), got, c.isInteger)
		}
	}
}

func TestAttribTypeUnknownString(t *testing.T) {

	if got := AttribTypeUnknown.String(); got != "Unknown" {
		t.Fatalf("got %s, want Unknown", got)
	}
}
