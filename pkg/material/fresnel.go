package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Fresnel returns the fraction of light reflected at a dielectric boundary,
// the unpolarized average of the s and p reflectances. view points away from
// the surface on the side of normal; n1 is the index on that side. Total
// internal reflection returns exactly 1.
func Fresnel(view, normal core.Vec3, n1, n2 float64) float64 {
	if n1 == n2 {
		return 0
	}

	cosIncident := math.Min(math.Abs(view.Dot(normal)), 1.0)
	relative := n1 / n2
	discriminant := 1 - relative*relative*(1-cosIncident*cosIncident)
	if discriminant < 0 {
		return 1
	}

	cosRefracted := math.Sqrt(discriminant)

	sDenominator := n1*cosIncident + n2*cosRefracted
	pDenominator := n1*cosRefracted + n2*cosIncident
	if sDenominator == 0 || pDenominator == 0 {
		return 1
	}

	fs := math.Pow((n1*cosIncident-n2*cosRefracted)/sDenominator, 2)
	fp := math.Pow((n1*cosRefracted-n2*cosIncident)/pDenominator, 2)

	return math.Min((fs+fp)/2, 1)
}

// Schlick is the polynomial approximation of Fresnel. Leaving the denser
// medium it uses the refracted angle, and total internal reflection returns
// exactly 1.
func Schlick(view, normal core.Vec3, n1, n2 float64) float64 {
	if n1 == n2 {
		return 0
	}
	r0 := math.Pow((n1-n2)/(n1+n2), 2)
	cosTheta := math.Min(math.Abs(view.Dot(normal)), 1.0)
	if n1 > n2 {
		relative := n1 / n2
		sin2 := relative * relative * (1 - cosTheta*cosTheta)
		if sin2 > 1 {
			return 1
		}
		cosTheta = math.Sqrt(1 - sin2)
	}
	return r0 + (1-r0)*math.Pow(1-cosTheta, 5)
}

// Reflect mirrors v (pointing away from the surface) about normal
func Reflect(v, normal core.Vec3) core.Vec3 {
	return normal.Multiply(2 * v.Dot(normal)).Subtract(v)
}

// Refract bends view (pointing away from the surface, on the normal's side)
// through a boundary from index n1 into n2. ok is false on total internal
// reflection.
func Refract(view, normal core.Vec3, n1, n2 float64) (direction core.Vec3, ok bool) {
	relative := n1 / n2
	cosIncident := view.Dot(normal)
	discriminant := 1 - relative*relative*(1-cosIncident*cosIncident)
	if discriminant < 0 {
		return core.Vec3{}, false
	}

	cosRefracted := math.Sqrt(discriminant)
	direction = normal.Multiply(relative*cosIncident - cosRefracted).Subtract(view.Multiply(relative))
	return direction.Normalize(), true
}
