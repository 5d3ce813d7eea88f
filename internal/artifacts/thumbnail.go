package artifacts

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ThumbnailMaxDimension is the default maximum edge length for gallery
// previews.
const ThumbnailMaxDimension = 512

// Thumbnail renders a PNG preview of a stored artifact, downscaled so
// that neither edge exceeds maxDimension. The name must be a bare
// filename inside the output directory.
func (s *Store) Thumbnail(filename string, maxDimension int) ([]byte, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return nil, fmt.Errorf("invalid artifact name: %s", filename)
	}

	path := filepath.Join(s.dir, filename)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("artifact not found: %s", filename)
		}
		return nil, fmt.Errorf("failed to open artifact: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode artifact: %w", err)
	}

	bounds := img.Bounds()
	width, height := thumbnailDimensions(bounds.Dx(), bounds.Dy(), maxDimension)

	if width != bounds.Dx() || height != bounds.Dy() {
		resized := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)
		img = resized
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	log.Debug().
		Str("file", filename).
		Str("format", format).
		Int("width", width).
		Int("height", height).
		Int("output_size", buf.Len()).
		Msg("Thumbnail generated")

	return buf.Bytes(), nil
}

// thumbnailDimensions scales down to fit maxDimension while keeping the
// aspect ratio. Images already small enough are left alone.
func thumbnailDimensions(width, height, maxDimension int) (int, int) {
	if width <= maxDimension && height <= maxDimension {
		return width, height
	}

	if width > height {
		return maxDimension, max(1, int(float64(height)*float64(maxDimension)/float64(width)))
	}
	return max(1, int(float64(width)*float64(maxDimension)/float64(height))), maxDimension
}
