package loaders

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

const hdrFormat = "32-bit_rle_rgbe"

// WriteHDR encodes img as a Radiance RGBE file with flat (unencoded)
// scanlines, top row first. Negative components are stored as zero.
func WriteHDR(w io.Writer, img *renderer.FloatImage) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "#?RADIANCE\nFORMAT=%s\n\n-Y %d +X %d\n", hdrFormat, img.Height, img.Width); err != nil {
		return err
	}

	row := make([]byte, 4*img.Width)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			rgbe := toRGBE(img.GetPixel(x, y))
			copy(row[4*x:], rgbe[:])
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadHDR decodes a Radiance RGBE file in the standard -Y H +X W orientation.
// Both flat and run-length encoded scanlines are accepted.
func ReadHDR(r io.Reader) (*renderer.FloatImage, error) {
	br := bufio.NewReader(r)

	magic, err := br.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read HDR header: %w", err)
	}
	if !strings.HasPrefix(magic, "#?") {
		return nil, fmt.Errorf("unsupported HDR signature %q", strings.TrimSpace(magic))
	}
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("failed to read HDR header: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		if format, ok := strings.CutPrefix(line, "FORMAT="); ok && format != hdrFormat {
			return nil, fmt.Errorf("unsupported HDR format %q", format)
		}
	}

	var width, height int
	if _, err := fmt.Fscanf(br, "-Y %d +X %d\n", &height, &width); err != nil {
		return nil, fmt.Errorf("failed to read HDR resolution: %w", err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid HDR size %dx%d", width, height)
	}

	img := renderer.NewFloatImage(width, height)
	row := make([]byte, 4*width)
	for y := 0; y < height; y++ {
		if err := readScanline(br, row, width); err != nil {
			return nil, fmt.Errorf("failed to read HDR scanline %d: %w", y, err)
		}
		for x := 0; x < width; x++ {
			img.PutPixel(x, y, fromRGBE([4]byte{row[4*x], row[4*x+1], row[4*x+2], row[4*x+3]}))
		}
	}
	return img, nil
}

// readScanline fills row with width interleaved RGBE pixels
func readScanline(br *bufio.Reader, row []byte, width int) error {
	if _, err := io.ReadFull(br, row[:4]); err != nil {
		return err
	}
	encoded := width >= 8 && width < 0x8000 && row[0] == 2 && row[1] == 2 && row[2]&0x80 == 0
	if !encoded {
		_, err := io.ReadFull(br, row[4:])
		return err
	}
	if n := int(row[2])<<8 | int(row[3]); n != width {
		return fmt.Errorf("scanline width %d does not match image width %d", n, width)
	}

	// Each channel is stored as its own run-length encoded plane
	for c := 0; c < 4; c++ {
		for x := 0; x < width; {
			count, err := br.ReadByte()
			if err != nil {
				return err
			}
			n := int(count)
			run := n > 128
			if run {
				n -= 128
			}
			if n == 0 || x+n > width {
				return fmt.Errorf("bad run length %d", count)
			}
			if run {
				v, err := br.ReadByte()
				if err != nil {
					return err
				}
				for ; n > 0; n-- {
					row[4*x+c] = v
					x++
				}
				continue
			}
			for ; n > 0; n-- {
				v, err := br.ReadByte()
				if err != nil {
					return err
				}
				row[4*x+c] = v
				x++
			}
		}
	}
	return nil
}

// toRGBE packs c into a shared-exponent pixel
func toRGBE(c core.Vec3) [4]byte {
	r, g, b := math.Max(c.X, 0), math.Max(c.Y, 0), math.Max(c.Z, 0)
	v := math.Max(r, math.Max(g, b))
	if v < 1e-32 {
		return [4]byte{}
	}
	m, e := math.Frexp(v)
	scale := m * 256 / v
	return [4]byte{byte(r * scale), byte(g * scale), byte(b * scale), byte(e + 128)}
}

func fromRGBE(p [4]byte) core.Vec3 {
	if p[3] == 0 {
		return core.NewVec3(0, 0, 0)
	}
	f := math.Ldexp(1, int(p[3])-(128+8))
	return core.NewVec3(float64(p[0])*f, float64(p[1])*f, float64(p[2])*f)
}
