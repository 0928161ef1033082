package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CookTorrance is a microfacet specular model with a Beckmann distribution
type CookTorrance struct {
	KS        float64 // Specular coefficient
	KA        float64 // Ambient coefficient
	Roughness float64 // Beckmann slope m
}

// NewCookTorrance creates a new Cook-Torrance model. Roughness is kept away
// from zero, where the distribution degenerates to a delta.
func NewCookTorrance(ks, ka, roughness float64) *CookTorrance {
	return &CookTorrance{KS: ks, KA: ka, Roughness: max(roughness, 1e-3)}
}

// Shade implements the ReflectanceModel interface
func (ct *CookTorrance) Shade(ray core.Ray, hit *SurfaceInteraction, env Environment) core.Vec3 {
	if hit == nil {
		return env.Ambient
	}

	normal := hit.ShadingNormal(ray.Direction)
	view := ray.Direction.Negate()
	cosView := normal.Dot(view)

	ambient := env.Ambient.Multiply(ct.KA)
	specular := core.Vec3{}

	for _, light := range env.Lights {
		sample := light.Sample(hit.Point)
		cosLight := normal.Dot(sample.Direction)
		if cosLight <= 0 || cosView <= 0 {
			continue
		}
		if !env.Lit(hit.Point, sample) {
			continue
		}

		half := sample.Direction.Add(view).Normalize()
		cosHalf := normal.Dot(half)
		viewHalf := view.Dot(half)
		if cosHalf <= 0 || viewHalf <= 0 {
			continue
		}

		d := Beckmann(cosHalf, ct.Roughness)
		g := GeometricAttenuation(cosHalf, cosView, cosLight, viewHalf)

		specular = specular.Add(sample.Specular.Multiply(ct.KS * d * g / (4 * cosLight * cosView)))
	}

	return ambient.Add(specular).MultiplyVec(hit.Albedo())
}

// Beckmann evaluates the microfacet distribution D for cos(theta_h) = cosHalf
func Beckmann(cosHalf, m float64) float64 {
	cos2 := cosHalf * cosHalf
	if cos2 <= 0 {
		return 0
	}
	tan2 := (1 - cos2) / cos2
	m2 := m * m
	return math.Exp(-tan2/m2) / (math.Pi * m2 * cos2 * cos2)
}

// GeometricAttenuation is the Cook-Torrance masking/shadowing term G
func GeometricAttenuation(cosHalf, cosView, cosLight, viewHalf float64) float64 {
	masking := 2 * cosHalf * cosView / viewHalf
	shadowing := 2 * cosHalf * cosLight / viewHalf
	return min(1, masking, shadowing)
}
