package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CheckerBoard alternates the base color with a second color on a (u,v) grid
type CheckerBoard struct {
	Size  float64   // Edge length of one check in uv units
	Other core.Vec3 // Color of the odd checks
}

// NewCheckerBoard creates a checkerboard texture
func NewCheckerBoard(size float64, other core.Vec3) *CheckerBoard {
	if size <= 0 {
		size = 1
	}
	return &CheckerBoard{Size: size, Other: other}
}

// Albedo returns base on even checks and Other on odd ones
func (c *CheckerBoard) Albedo(uv core.Vec2, base core.Vec3) core.Vec3 {
	checkU := int(math.Floor(uv.X / c.Size))
	checkV := int(math.Floor(uv.Y / c.Size))
	if (checkU+checkV)%2 == 0 {
		return base
	}
	return c.Other
}

// Perturb leaves the normal untouched
func (c *CheckerBoard) Perturb(normal, tangent, bitangent core.Vec3, uv core.Vec2) core.Vec3 {
	return normal
}

// Bumps tilts the shading normal with a sinusoidal height field
type Bumps struct {
	Amplitude float64
	Frequency float64 // Waves per uv unit
}

// NewBumps creates a bump texture
func NewBumps(amplitude, frequency float64) *Bumps {
	return &Bumps{Amplitude: amplitude, Frequency: frequency}
}

// Albedo returns the base color
func (b *Bumps) Albedo(uv core.Vec2, base core.Vec3) core.Vec3 {
	return base
}

// Perturb offsets the normal along the local tangent and bitangent by the
// partial derivatives of the height field
func (b *Bumps) Perturb(normal, tangent, bitangent core.Vec3, uv core.Vec2) core.Vec3 {
	w := 2 * math.Pi * b.Frequency
	du := b.Amplitude * math.Cos(w*uv.X)
	dv := b.Amplitude * math.Cos(w*uv.Y)

	perturbed := normal.Add(tangent.Multiply(du)).Add(bitangent.Multiply(dv)).Normalize()
	if perturbed.IsZero() {
		return normal
	}
	return perturbed
}
