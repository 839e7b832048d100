package rend3dgl

import "testing"

func TestIndexByteOffset(t *testing.T) {

	cases := []struct {
		baseIndex uint32
		want      uintptr
	}{
		{baseIndex: 0, want: 0},
		{baseIndex: 1, want: 4},
		{baseIndex: 36, want: 144},
	}

	for _, c := range cases {
		if got := indexByteOffset(c.baseIndex); got != c.want {
			t.Errorf("baseIndex %d: got byte offset %d, want %d", c.baseIndex, got, c.want)
		}
	}
}
