package textures

import (
	"bytes"
	"image"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func TestParamToGl(t *testing.T) {

	cases := []struct {
		param Param
		want  int32
	}{
		{Param_Nearest, gl.NEAREST},
		{Param_Linear, gl.LINEAR},
		{Param_ClampToEdge, gl.CLAMP_TO_EDGE},
		{Param_Repeat, gl.REPEAT},
	}

	for _, c := range cases {
		if got := c.param.ToGl(); got != c.want {
			t.Errorf("param %d: got %d, want %d", c.param, got, c.want)
		}
	}
}

func TestFormatToGl(t *testing.T) {

	cases := []struct {
		format Format
		want   uint32
	}{
		{Format_Red, gl.RED},
		{Format_RGB, gl.RGB},
		{Format_RGBA, gl.RGBA},
	}

	for _, c := range cases {
		if got := c.format.ToGl(); got != c.want {
			t.Errorf("format %d: got %d, want %d", c.format, got, c.want)
		}
	}
}

func TestFormatForChannels(t *testing.T) {

	cases := []struct {
		channels int
		want     Format
	}{
		{1, Format_Red},
		{3, Format_RGB},
		{4, Format_RGBA},
		{2, Format_RGBA},
		{0, Format_RGBA},
	}

	for _, c := range cases {
		if got := formatForChannels(c.channels); got != c.want {
			t.Errorf("channels %d: got format %d, want %d", c.channels, got, c.want)
		}
	}
}

func TestFlipPixelRows(t *testing.T) {

	// 2x3 single channel image, one byte per row entry
	pixels := []byte{
		0, 1,
		2, 3,
		4, 5,
	}

	flipPixelRows(pixels, 2, 3, 1)

	want := []byte{
		4, 5,
		2, 3,
		0, 1,
	}

	if !bytes.Equal(pixels, want) {
		t.Fatalf("got %v, want %v", pixels, want)
	}
}

func TestFlipPixelRowsMultiChannel(t *testing.T) {

	// 1x2 RGBA image
	pixels := []byte{
		10, 11, 12, 13,
		20, 21, 22, 23,
	}

	flipPixelRows(pixels, 1, 2, 4)

	want := []byte{
		20, 21, 22, 23,
		10, 11, 12, 13,
	}

	if !bytes.Equal(pixels, want) {
		t.Fatalf("got %v, want %v", pixels, want)
	}
}

func TestFlipPixelRowsSingleRow(t *testing.T) {

	pixels := []byte{1, 2, 3}
	flipPixelRows(pixels, 3, 1, 1)

	if !bytes.Equal(pixels, []byte{1, 2, 3}) {
		t.Fatalf("single row should be unchanged, got %v", pixels)
	}
}

func TestTightGrayPixels(t *testing.T) {

	// Gray image with a stride wider than the row
	padded := &image.Gray{
		Pix: []byte{
			1, 2, 99, 99,
			3, 4, 99, 99,
		},
		Stride: 4,
		Rect:   image.Rect(0, 0, 2, 2),
	}

	got := tightGrayPixels(padded)
	want := []byte{1, 2, 3, 4}

	if !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDefaultConfig(t *testing.T) {

	cfg := DefaultConfig()

	if cfg.MinFilter != Param_Nearest || cfg.MagFilter != Param_Linear {
		t.Errorf("unexpected filters: %+v", cfg)
	}

	if cfg.WrapS != Param_Repeat || cfg.WrapT != Param_Repeat {
		t.Errorf("unexpected wrap modes: %+v", cfg)
	}

	if cfg.Format != Format_RGB || cfg.InternalFormat != Format_RGBA {
		t.Errorf("unexpected formats: %+v", cfg)
	}

	if !cfg.GenMipmaps {
		t.Errorf("mip generation should default to on")
	}
}

func TestWriteRegionUnconfiguredIsIgnored(t *testing.T) {

	// No GL bindings are loaded in tests, so this only passes if the
	// unconfigured write bails before touching any native entry point
	tex := Texture2D{}
	tex.WriteRegion(0, 0, 2, 2, []byte{1, 2, 3, 4})

	if tex.IsConfigured() {
		t.Fatalf("texture reports configured after an ignored write")
	}

	if tex.Id != 0 {
		t.Fatalf("got texture id %d after an ignored write, want 0", tex.Id)
	}
}
