package meshes

import (
	"reflect"
	"testing"

	"github.com/bloeys/gglm/gglm"
)

func TestInterleave(t *testing.T) {

	streams := []vertexStream{
		{CompCount: 3, Data: []float32{
			0, 0, 0,
			1, 1, 1,
		}},
		{CompCount: 2, Data: []float32{
			10, 11,
			20, 21,
		}},
	}

	got := interleave(streams)
	want := []float32{
		0, 0, 0, 10, 11,
		1, 1, 1, 20, 21,
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestInterleaveSingleStream(t *testing.T) {

	streams := []vertexStream{
		{CompCount: 3, Data: []float32{1, 2, 3, 4, 5, 6}},
	}

	got := interleave(streams)
	want := []float32{1, 2, 3, 4, 5, 6}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestInterleaveMismatchedLengthsPanics(t *testing.T) {

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for mismatched stream lengths")
		}
	}()

	interleave([]vertexStream{
		{CompCount: 3, Data: []float32{1, 2, 3}},
		{CompCount: 2, Data: []float32{1, 2, 3, 4}},
	})
}

func TestVec3sToUVFloats(t *testing.T) {

	v3s := []gglm.Vec3{
		{Data: [3]float32{0.5, 0.25, 99}},
		{Data: [3]float32{1, 0, 42}},
	}

	got := vec3sToUVFloats(v3s)
	want := []float32{0.5, 0.25, 1, 0}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestVec3sToFloats(t *testing.T) {

	v3s := []gglm.Vec3{
		{Data: [3]float32{1, 2, 3}},
		{Data: [3]float32{4, 5, 6}},
	}

	got := vec3sToFloats(v3s)
	want := []float32{1, 2, 3, 4, 5, 6}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
