package output

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// DefaultPreviewSize bounds the longest edge of preview thumbnails
const DefaultPreviewSize = 256

// SaveImage writes img to path. The format follows the file extension
// (.png, .jpg, .jpeg, .gif, .tif, .tiff or .bmp). Missing directories are created.
func SaveImage(img image.Image, path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("cannot save %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// Thumbnail scales img down so that neither edge exceeds maxSize, keeping the
// aspect ratio. Images that already fit are returned unchanged.
func Thumbnail(img image.Image, maxSize uint) image.Image {
	if maxSize == 0 {
		maxSize = DefaultPreviewSize
	}
	return resize.Thumbnail(maxSize, maxSize, img, resize.Bilinear)
}

// SavePreview writes a thumbnail of img to path
func SavePreview(img image.Image, path string, maxSize uint) error {
	return SaveImage(Thumbnail(img, maxSize), path)
}

// PassFilename returns the file name of the preview written after a progressive pass,
// e.g. ("render.png", 3) -> "render_pass003.png"
func PassFilename(path string, pass int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_pass%03d%s", path[:len(path)-len(ext)], pass, ext)
}
