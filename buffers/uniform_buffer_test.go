package buffers

import (
	"math"
	"testing"

	"github.com/bloeys/gglm/gglm"
)

func TestStd140LayoutScalarsAndVectors(t *testing.T) {

	fields, size := computeStd140Layout([]UniformBufferFieldInput{
		{Id: 0, Type: AttribTypeFloat},
		{Id: 1, Type: AttribTypeFloat3},
		{Id: 2, Type: AttribTypeFloat},
		{Id: 3, Type: AttribTypeFloat2},
	})

	wantOffsets := []uint16{0, 16, 32, 40}
	for i := range fields {
		if fields[i].AlignedOffset != wantOffsets[i] {
			t.Errorf("field %d: got offset %d, want %d", i, fields[i].AlignedOffset, wantOffsets[i])
		}
	}

	if size != 48 {
		t.Fatalf("got size %d, want 48", size)
	}
}

func TestStd140LayoutMatrices(t *testing.T) {

	fields, size := computeStd140Layout([]UniformBufferFieldInput{
		{Id: 0, Type: AttribTypeMat4},
		{Id: 1, Type: AttribTypeMat3},
		{Id: 2, Type: AttribTypeFloat},
	})

	// Matrices are arrays of vec4-aligned columns: mat4 spans 64 bytes, mat3 spans 48
	wantOffsets := []uint16{0, 64, 112}
	for i := range fields {
		if fields[i].AlignedOffset != wantOffsets[i] {
			t.Errorf("field %d: got offset %d, want %d", i, fields[i].AlignedOffset, wantOffsets[i])
		}
	}

	if size != 116 {
		t.Fatalf("got size %d, want 116", size)
	}
}

func TestStd140LayoutArrays(t *testing.T) {

	fields, size := computeStd140Layout([]UniformBufferFieldInput{
		{Id: 0, Type: AttribTypeFloat},
		{Id: 1, Type: AttribTypeFloat, Count: 3},
	})

	// Arrays of scalars align each element to 16 bytes like a vec4
	if fields[0].AlignedOffset != 0 {
		t.Errorf("field 0: got offset %d, want 0", fields[0].AlignedOffset)
	}

	if fields[1].AlignedOffset != 16 {
		t.Errorf("field 1: got offset %d, want 16", fields[1].AlignedOffset)
	}

	if fields[1].Count != 3 {
		t.Errorf("field 1: got count %d, want 3", fields[1].Count)
	}

	if size != 64 {
		t.Fatalf("got size %d, want 64", size)
	}
}

func TestStd140LayoutZeroCountMeansOne(t *testing.T) {

	fields, size := computeStd140Layout([]UniformBufferFieldInput{
		{Id: 7, Type: AttribTypeFloat4, Count: 0},
	})

	if fields[0].Count != 1 {
		t.Fatalf("got count %d, want 1", fields[0].Count)
	}

	if size != 16 {
		t.Fatalf("got size %d, want 16", size)
	}
}

func TestStd140LayoutEmpty(t *testing.T) {

	fields, size := computeStd140Layout(nil)

	if len(fields) != 0 || size != 0 {
		t.Fatalf("got %d fields and size %d, want 0 and 0", len(fields), size)
	}
}

func TestStd140PackMat3ColumnsOnVec4Boundaries(t *testing.T) {

	m := gglm.Mat3{Data: [3][3]float32{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}}

	buf := std140PackMat3(&m)

	f32At := func(byteOffset int) float32 {
		bits := uint32(buf[byteOffset]) | uint32(buf[byteOffset+1])<<8 | uint32(buf[byteOffset+2])<<16 | uint32(buf[byteOffset+3])<<24
		return math.Float32frombits(bits)
	}

	// Each column starts 16 bytes after the previous one, so a packed mat3
	// spans 48 bytes, matching what computeStd140Layout sizes the field at
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {

			want := m.Data[col][row]
			if got := f32At(col*16 + row*4); got != want {
				t.Errorf("column %d row %d: got %v, want %v", col, row, got, want)
			}
		}

		for pad := 12; pad < 16; pad++ {
			if buf[col*16+pad] != 0 {
				t.Errorf("column %d: padding byte %d is %d, want 0", col, pad, buf[col*16+pad])
			}
		}
	}
}

func TestWriteF32SliceToByteBufAdvancesIndex(t *testing.T) {

	buf := make([]byte, 12)
	idx := 4

	writeF32SliceToByteBuf(buf, &idx, []float32{1, -2})

	if idx != 12 {
		t.Fatalf("got index %d, want 12", idx)
	}

	bits := uint32(buf[4]) | uint32(buf[5])<<8 | uint32(buf[6])<<16 | uint32(buf[7])<<24
	if got := math.Float32frombits(bits); got != 1 {
		t.Fatalf("got %v at byte 4, want 1", got)
	}

	bits = uint32(buf[8]) | uint32(buf[9])<<8 | uint32(buf[10])<<16 | uint32(buf[11])<<24
	if got := math.Float32frombits(bits); got != -2 {
		t.Fatalf("got %v at byte 8, want -2", got)
	}
}

func TestStd140LayoutReusedIdPanics(t *testing.T) {

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for a reused field id")
		}
	}()

	computeStd140Layout([]UniformBufferFieldInput{
		{Id: 1, Type: AttribTypeFloat},
		{Id: 1, Type: AttribTypeFloat3},
	})
}
