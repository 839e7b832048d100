package buffers

import "testing"

func TestComputeLayoutOffsetsAndStride(t *testing.T) {

	attribs := []VertexAttrib{
		NewVertexAttrib(AttribTypeFloat3, false, "pos"),
		NewVertexAttrib(AttribTypeFloat3, false, "normal"),
		NewVertexAttrib(AttribTypeFloat2, false, "uv"),
	}

	stride := ComputeLayout(attribs)
	if stride != 32 {
		t.Fatalf("got stride %d, want 32", stride)
	}

	wantOffsets := []int32{0, 12, 24}
	for i := range attribs {
		if attribs[i].Offset != wantOffsets[i] {
			t.Errorf("attrib %d (%s): got offset %d, want %d", i, attribs[i].Name, attribs[i].Offset, wantOffsets[i])
		}
	}
}

func TestComputeLayoutEmpty(t *testing.T) {

	if stride := ComputeLayout(nil); stride != 0 {
		t.Fatalf("got stride %d, want 0", stride)
	}

	if stride := ComputeLayout([]VertexAttrib{}); stride != 0 {
		t.Fatalf("got stride %d, want 0", stride)
	}
}

func TestComputeLayoutMixedTypes(t *testing.T) {

	attribs := []VertexAttrib{
		NewVertexAttrib(AttribTypeByte, false, "flags"),
		NewVertexAttrib(AttribTypeMat4, false, "model"),
		NewVertexAttrib(AttribTypeInt2, false, "cell"),
		NewVertexAttrib(AttribTypeFloat, false, "weight"),
	}

	stride := ComputeLayout(attribs)

	// 1 + 64 + 8 + 4, packed in input order with no padding
	if stride != 77 {
		t.Fatalf("got stride %d, want 77", stride)
	}

	wantOffsets := []int32{0, 1, 65, 73}
	for i := range attribs {
		if attribs[i].Offset != wantOffsets[i] {
			t.Errorf("attrib %d (%s): got offset %d, want %d", i, attribs[i].Name, attribs[i].Offset, wantOffsets[i])
		}
	}
}

func TestComputeLayoutStrideIsSumOfSizes(t *testing.T) {

	attribs := []VertexAttrib{
		NewVertexAttrib(AttribTypeMat3, false, "tbn"),
		NewVertexAttrib(AttribTypeInt4, false, "boneIds"),
		NewVertexAttrib(AttribTypeFloat4, true, "boneWeights"),
	}

	stride := ComputeLayout(attribs)

	var sum int32
	for i := range attribs {

		if attribs[i].Offset != sum {
			t.Errorf("attrib %d: got offset %d, want %d", i, attribs[i].Offset, sum)
		}
		sum += attribs[i].Size
	}

	if stride != sum {
		t.Fatalf("got stride %d, want %d", stride, sum)
	}
}

func TestNewVertexAttribDerivesSize(t *testing.T) {

	a := NewVertexAttrib(AttribTypeMat4, false, "model")

	if a.Size != 64 {
		t.Fatalf("got size %d, want 64", a.Size)
	}

	if a.Offset != 0 {
		t.Fatalf("got offset %d, want 0 before layout", a.Offset)
	}
}
