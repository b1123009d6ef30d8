package loaders

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/disintegration/imaging"
)

// LoadImageTexture loads an image file (PNG, JPEG, GIF, BMP or TIFF) as an
// image texture. Channels are mapped linearly from [0,255] to [0,1].
func LoadImageTexture(filename string) (*material.ImageTexture, error) {
	img, err := imaging.Open(filename, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", filename, err)
	}

	// Normalize every source format to non-premultiplied 8-bit RGBA
	nrgba := imaging.Clone(img)
	width := nrgba.Rect.Dx()
	height := nrgba.Rect.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < width; x++ {
			pixels[y*width+x] = core.NewVec3(
				float64(row[4*x])/255.0,
				float64(row[4*x+1])/255.0,
				float64(row[4*x+2])/255.0,
			)
		}
	}

	return material.NewImageTexture(width, height, pixels), nil
}
