package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"os"
)

// ImageRGBA8 is a decoded image as a tightly packed RGBA8 pixel buffer,
// 4 bytes per pixel in row-major order.
type ImageRGBA8 struct {
	W, H int
	Pix  []byte
}

// LoadImage decodes the PNG file at path into an RGBA8 buffer. It fails if
// the file is missing or malformed.
func LoadImage(path string) (*ImageRGBA8, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	bounds := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)

	return &ImageRGBA8{
		W:   bounds.Dx(),
		H:   bounds.Dy(),
		Pix: rgba.Pix,
	}, nil
}
