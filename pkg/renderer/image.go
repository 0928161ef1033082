package renderer

import "github.com/df07/go-whitted-raytracer/pkg/core"

// FloatImage is a high dynamic range RGB image. Row 0 is the top row.
type FloatImage struct {
	Width  int
	Height int
	pixels []core.Vec3
}

// NewFloatImage creates a black image
func NewFloatImage(width, height int) *FloatImage {
	return &FloatImage{
		Width:  width,
		Height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// GetPixel returns the color at (x, y)
func (img *FloatImage) GetPixel(x, y int) core.Vec3 {
	return img.pixels[y*img.Width+x]
}

// PutPixel stores the color at (x, y)
func (img *FloatImage) PutPixel(x, y int, color core.Vec3) {
	img.pixels[y*img.Width+x] = color
}
