package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// DefaultGamma is the display gamma used for PNG previews
const DefaultGamma = 2.2

// WritePFM encodes img as a little-endian color PFM. PFM stores rows bottom
// to top.
func WritePFM(w io.Writer, img *renderer.FloatImage) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "PF\n%d %d\n-1.0\n", img.Width, img.Height); err != nil {
		return err
	}

	row := make([]float32, 3*img.Width)
	for y := img.Height - 1; y >= 0; y-- {
		for x := 0; x < img.Width; x++ {
			c := img.GetPixel(x, y)
			row[3*x], row[3*x+1], row[3*x+2] = float32(c.X), float32(c.Y), float32(c.Z)
		}
		if err := binary.Write(bw, binary.LittleEndian, row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadPFM decodes a color PFM written by WritePFM or any other encoder
func ReadPFM(r io.Reader) (*renderer.FloatImage, error) {
	br := bufio.NewReader(r)

	var magic string
	var width, height int
	var scale float64
	if _, err := fmt.Fscan(br, &magic, &width, &height, &scale); err != nil {
		return nil, fmt.Errorf("failed to read PFM header: %w", err)
	}
	if magic != "PF" {
		return nil, fmt.Errorf("unsupported PFM type %q", magic)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid PFM size %dx%d", width, height)
	}
	// Exactly one whitespace byte separates the header from the raster
	if _, err := br.ReadByte(); err != nil {
		return nil, fmt.Errorf("failed to read PFM header: %w", err)
	}

	var order binary.ByteOrder = binary.LittleEndian
	if scale > 0 {
		order = binary.BigEndian
	}

	img := renderer.NewFloatImage(width, height)
	row := make([]float32, 3*width)
	for y := height - 1; y >= 0; y-- {
		if err := binary.Read(br, order, row); err != nil {
			return nil, fmt.Errorf("failed to read PFM raster: %w", err)
		}
		for x := 0; x < width; x++ {
			img.PutPixel(x, y, core.NewVec3(float64(row[3*x]), float64(row[3*x+1]), float64(row[3*x+2])))
		}
	}
	return img, nil
}

// ToneMap clamps img to [0,1] after gamma correction and converts it to 8 bits
func ToneMap(img *renderer.FloatImage, gamma float64) *image.RGBA {
	if gamma <= 0 {
		gamma = DefaultGamma
	}
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.GetPixel(x, y).GammaCorrect(gamma).Clamp(0, 1)
			out.SetRGBA(x, y, color.RGBA{
				R: uint8(math.Round(c.X * 255)),
				G: uint8(math.Round(c.Y * 255)),
				B: uint8(math.Round(c.Z * 255)),
				A: 255,
			})
		}
	}
	return out
}

// SaveImage writes img to path. The extension picks the format: .png is tone
// mapped, .hdr is Radiance RGBE and anything else is PFM.
func SaveImage(path string, img *renderer.FloatImage) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(file, ToneMap(img, DefaultGamma))
	case ".hdr":
		err = WriteHDR(file, img)
	default:
		err = WritePFM(file, img)
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

