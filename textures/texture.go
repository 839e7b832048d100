package textures

import (
	"image"
	"os"
	"runtime"

	_ "image/jpeg"
	_ "image/png"

	"github.com/glkit/glkit/assert"
	"github.com/glkit/glkit/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/mandykoh/prism"
)

type Param int32

const (
	Param_Unknown Param = iota
	Param_Nearest
	Param_Linear
	Param_ClampToEdge
	Param_Repeat
)

func (p Param) ToGl() int32 {

	switch p {
	case Param_Nearest:
		return gl.NEAREST
	case Param_Linear:
		return gl.LINEAR
	case Param_ClampToEdge:
		return gl.CLAMP_TO_EDGE
	case Param_Repeat:
		return gl.REPEAT

	default:
		assert.T(false, "Unknown texture param passed. Param '%d'", p)
		return 0
	}
}

type Format int32

const (
	Format_Unknown Format = iota
	Format_Red
	Format_RGB
	Format_RGBA
)

func (f Format) ToGl() uint32 {

	switch f {
	case Format_Red:
		return gl.RED
	case Format_RGB:
		return gl.RGB
	case Format_RGBA:
		return gl.RGBA

	default:
		assert.T(false, "Unknown texture format passed. Format '%d'", f)
		return 0
	}
}

// Config is the sampling and storage configuration of a texture. It is
// applied once when the texture is first configured and is immutable after
type Config struct {
	MinFilter Param
	MagFilter Param
	WrapS     Param
	WrapT     Param

	// Format is the layout of the pixel data handed to uploads.
	// LoadFromFile overrides this with the format inferred from the file
	Format Format
	// InternalFormat is the layout the GPU stores the texture in
	InternalFormat Format

	GenMipmaps bool
}

func DefaultConfig() Config {
	return Config{
		MinFilter:      Param_Nearest,
		MagFilter:      Param_Linear,
		WrapS:          Param_Repeat,
		WrapT:          Param_Repeat,
		Format:         Format_RGB,
		InternalFormat: Format_RGBA,
		GenMipmaps:     true,
	}
}

// Texture2D wraps one 2D texture object. A texture starts unconfigured;
// Gen, LoadFromMemory or LoadFromFile configure it exactly once, and the
// configuration is immutable from then on until Delete
type Texture2D struct {
	Id     uint32
	Width  int32
	Height int32
	Config Config

	configured bool
}

func (t *Texture2D) IsConfigured() bool {
	return t.configured
}

func (t *Texture2D) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, t.Id)
}

func (t *Texture2D) UnBind() {
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// genAndConfigure creates the texture object and applies sampling params.
// Callers must have checked t.configured already
func (t *Texture2D) genAndConfigure(config Config) {

	t.Config = config
	t.configured = true

	gl.GenTextures(1, &t.Id)
	if t.Id == 0 {
		logging.ErrLog.Printf("Failed to create OpenGL texture. GlError=%d\n", gl.GetError())
	}

	t.Bind()
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, config.WrapS.ToGl())
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, config.WrapT.ToGl())
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, config.MinFilter.ToGl())
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, config.MagFilter.ToGl())
}

// Gen creates and configures the texture without allocating image storage,
// for callers that upload pixels later. Reconfiguring an already configured
// texture is an ignored no-op
func (t *Texture2D) Gen(config Config) {

	if t.configured {
		logging.WarnLog.Println("Texture is already configured. Ignoring Gen call")
		return
	}

	t.genAndConfigure(config)
}

// LoadFromMemory creates and configures the texture and uploads the given
// pixels as its full image. pixels may be nil to allocate storage without
// writing it. Reconfiguring an already configured texture is an ignored no-op
func (t *Texture2D) LoadFromMemory(width, height int32, pixels []byte, config Config) {

	if t.configured {
		logging.WarnLog.Println("Texture is already configured. Ignoring LoadFromMemory call")
		return
	}

	t.genAndConfigure(config)
	t.Width = width
	t.Height = height

	var ptr = gl.Ptr(nil)
	if len(pixels) > 0 {
		ptr = gl.Ptr(&pixels[0])
	}

	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(config.InternalFormat.ToGl()), width, height, 0, config.Format.ToGl(), gl.UNSIGNED_BYTE, ptr)
}

// LoadFromFile decodes an image file, flips it so the first row sits at the
// conventional bottom-left texture origin, and uploads it. The pixel format
// is inferred from the decoded channel count, overriding config.Format.
// A file that can't be read or decoded is fatal. Reconfiguring an already
// configured texture is an ignored no-op
func (t *Texture2D) LoadFromFile(filepath string, config Config) {

	if t.configured {
		logging.WarnLog.Println("Texture is already configured. Ignoring LoadFromFile call")
		return
	}

	pixels, width, height, channels := decodePixels(filepath)

	config.Format = formatForChannels(channels)
	flipPixelRows(pixels, int(width), int(height), channels)

	t.genAndConfigure(config)
	t.Width = width
	t.Height = height

	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(config.InternalFormat.ToGl()), width, height, 0, config.Format.ToGl(), gl.UNSIGNED_BYTE, gl.Ptr(&pixels[0]))

	if config.GenMipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
}

// WriteRegion overwrites a sub-region of an already configured texture using
// the pixel format chosen at configuration time. Writing to an unconfigured
// texture is an ignored no-op and performs no native calls
func (t *Texture2D) WriteRegion(xOffset, yOffset, width, height int32, pixels []byte) {

	if !t.configured {
		logging.WarnLog.Println("Texture must be configured before WriteRegion. Ignoring call")
		return
	}

	if len(pixels) == 0 {
		return
	}

	t.Bind()
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, xOffset, yOffset, width, height, t.Config.Format.ToGl(), gl.UNSIGNED_BYTE, gl.Ptr(&pixels[0]))
}

// Delete frees the texture once. The texture can not be reconfigured after
func (t *Texture2D) Delete() {

	if t.Id == 0 {
		return
	}

	gl.DeleteTextures(1, &t.Id)
	t.Id = 0
}

// decodePixels reads and decodes an image file into tightly packed rows.
// Grayscale images stay single channel; everything else is normalized to
// 4-channel NRGBA. Failure to read or decode is fatal
func decodePixels(filepath string) (pixels []byte, width, height int32, channels int) {

	f, err := os.Open(filepath)
	if err != nil {
		logging.ErrLog.Fatalf("Failed to load texture '%s'. Err: %v\n", filepath, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		logging.ErrLog.Fatalf("Failed to decode texture '%s'. Err: %v\n", filepath, err)
	}

	bounds := img.Bounds()
	width = int32(bounds.Dx())
	height = int32(bounds.Dy())

	if gray, ok := img.(*image.Gray); ok {
		return tightGrayPixels(gray), width, height, 1
	}

	nrgba := prism.ConvertImageToNRGBA(img, runtime.NumCPU())
	return nrgba.Pix, width, height, 4
}

// tightGrayPixels copies a grayscale image into a buffer with no row padding
func tightGrayPixels(gray *image.Gray) []byte {

	w := gray.Bounds().Dx()
	h := gray.Bounds().Dy()

	if gray.Stride == w {
		return gray.Pix
	}

	pixels := make([]byte, w*h)
	for y := 0; y < h; y++ {
		copy(pixels[y*w:(y+1)*w], gray.Pix[y*gray.Stride:y*gray.Stride+w])
	}

	return pixels
}

// formatForChannels maps a decoded channel count to an upload format.
// Counts outside 1 and 3 default to RGBA
func formatForChannels(channels int) Format {

	if channels == 1 {
		return Format_Red
	}

	if channels == 3 {
		return Format_RGB
	}

	return Format_RGBA
}

// flipPixelRows reverses the row order of tightly packed pixels in place so
// row 0 becomes the bottom row
func flipPixelRows(pixels []byte, width, height, channels int) {

	rowLen := width * channels
	tmp := make([]byte, rowLen)

	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {

		topRow := pixels[top*rowLen : (top+1)*rowLen]
		bottomRow := pixels[bottom*rowLen : (bottom+1)*rowLen]

		copy(tmp, topRow)
		copy(topRow, bottomRow)
		copy(bottomRow, tmp)
	}
}
