package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// gammaExponent approximates 1/2.2
const gammaExponent = 0.4545

var intensity = core.NewInterval(0.0, 0.999)

// encodeComponent gamma-encodes one linear channel into a byte
func encodeComponent(linear float64) uint8 {
	gamma := math.Pow(linear, gammaExponent)
	// Negative or NaN radiance has no meaningful encoding
	if math.IsNaN(gamma) {
		return 0
	}
	return uint8(256 * intensity.Clamp(gamma))
}

// decodeComponent returns the linear value at the center of a byte's bucket
func decodeComponent(b uint8) float64 {
	return math.Pow((float64(b)+0.5)/256, 1/gammaExponent)
}

// EncodeColor converts a linear HDR color to 8-bit sRGB-like output
func EncodeColor(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: encodeComponent(c.X),
		G: encodeComponent(c.Y),
		B: encodeComponent(c.Z),
		A: 255,
	}
}

// DecodeColor is the approximate inverse of EncodeColor
func DecodeColor(c color.RGBA) core.Vec3 {
	return core.NewVec3(decodeComponent(c.R), decodeComponent(c.G), decodeComponent(c.B))
}

// Framebuffer holds linear HDR pixel colors in row-major order, row 0 at the top
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// Set stores the color of pixel (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.Pixels[y*fb.Width+x] = c
}

// Clone returns a deep copy that is safe to hand to another goroutine
func (fb *Framebuffer) Clone() *Framebuffer {
	pixels := make([]core.Vec3, len(fb.Pixels))
	copy(pixels, fb.Pixels)
	return &Framebuffer{Width: fb.Width, Height: fb.Height, Pixels: pixels}
}

// Image encodes the framebuffer into an 8-bit image
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, EncodeColor(fb.At(x, y)))
		}
	}
	return img
}

// MeanLuminance returns the average linear luminance over all pixels
func (fb *Framebuffer) MeanLuminance() float64 {
	if len(fb.Pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range fb.Pixels {
		total += c.Luminance()
	}
	return total / float64(len(fb.Pixels))
}

// CalculateAverageLuminance returns the average luminance of an encoded image, in [0, 1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixelCount := bounds.Dx() * bounds.Dy()
	if pixelCount == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			total += core.NewVec3(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255).Luminance()
		}
	}
	return total / float64(pixelCount)
}
