package shaders

import (
	"strings"
	"testing"
)

func TestSplitCombinedSrc(t *testing.T) {

	src := []byte(`//shader:vertex
#version 410
void main() {}
//shader:fragment
#version 410
out vec4 fragColor;
void main() { fragColor = vec4(1); }
`)

	sections, err := splitCombinedSrc(src)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}

	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}

	if sections[0].Type != ShaderType_Vertex {
		t.Errorf("got section 0 type %s, want vertex", sections[0].Type.String())
	}

	if sections[1].Type != ShaderType_Fragment {
		t.Errorf("got section 1 type %s, want fragment", sections[1].Type.String())
	}

	if !strings.Contains(string(sections[1].Src), "fragColor") {
		t.Errorf("fragment section lost its source: %q", sections[1].Src)
	}
}

func TestSplitCombinedSrcWithGeometry(t *testing.T) {

	src := []byte("//shader:vertex\nv\n//shader:geometry\ng\n//shader:fragment\nf\n")

	sections, err := splitCombinedSrc(src)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}

	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(sections))
	}

	if sections[1].Type != ShaderType_Geometry {
		t.Errorf("got section 1 type %s, want geometry", sections[1].Type.String())
	}
}

func TestSplitCombinedSrcErrors(t *testing.T) {

	cases := []struct {
		name string
		src  string
	}{
		{"no markers", "#version 410\nvoid main() {}"},
		{"unknown stage", "//shader:vertex\nv\n//shader:compute\nc\n"},
		{"missing fragment", "//shader:vertex\nv\n"},
		{"missing vertex", "//shader:fragment\nf\n"},
	}

	for _, c := range cases {
		if _, err := splitCombinedSrc([]byte(c.src)); err == nil {
			t.Errorf("%s: expected an error", c.name)
		}
	}
}

func TestGetUnifLocUsesCache(t *testing.T) {

	// A cache hit must not touch the driver, so a program with a seeded
	// cache works without a GL context
	sp := ShaderProgram{
		Id:       42,
		UnifLocs: map[string]int32{"modelMat": 3, "missing": -1},
	}

	if loc := sp.GetUnifLoc("modelMat"); loc != 3 {
		t.Fatalf("got loc %d, want 3", loc)
	}

	if loc := sp.GetUnifLoc("missing"); loc != -1 {
		t.Fatalf("got loc %d, want -1", loc)
	}
}

func TestInfoLogBufNeverEmpty(t *testing.T) {

	cases := []struct {
		logLength int32
		wantLen   int
	}{
		{logLength: 0, wantLen: 1},
		{logLength: -1, wantLen: 1},
		{logLength: 64, wantLen: 64},
	}

	for _, c := range cases {

		buf := infoLogBuf(c.logLength)
		if len(buf) != c.wantLen {
			t.Errorf("logLength %d: got buffer length %d, want %d", c.logLength, len(buf), c.wantLen)
		}

		if buf[len(buf)-1] != 0 {
			t.Errorf("logLength %d: buffer is not NUL terminated", c.logLength)
		}
	}
}
