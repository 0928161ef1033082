package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Phong is the classic ambient + diffuse + specular reflectance model
type Phong struct {
	KA    float64 // Ambient coefficient
	KD    float64 // Diffuse coefficient
	KS    float64 // Specular coefficient
	Alpha float64 // Shininess exponent
}

// NewPhong creates a new Phong model
func NewPhong(ka, kd, ks, alpha float64) *Phong {
	return &Phong{KA: ka, KD: kd, KS: ks, Alpha: alpha}
}

// Shade implements the ReflectanceModel interface
func (p *Phong) Shade(ray core.Ray, hit *SurfaceInteraction, env Environment) core.Vec3 {
	if hit == nil {
		return env.Ambient
	}

	normal := hit.ShadingNormal(ray.Direction)
	view := ray.Direction.Negate()

	ambient := env.Ambient.Multiply(p.KA)
	direct := core.Vec3{}

	for _, light := range env.Lights {
		sample := light.Sample(hit.Point)
		if !env.Lit(hit.Point, sample) {
			continue
		}

		toLight := sample.Direction
		reflected := Reflect(toLight, normal)

		diffuse := sample.Diffuse.Multiply(p.KD * max(toLight.Dot(normal), 0))
		specular := sample.Specular.Multiply(p.KS * math.Pow(max(reflected.Dot(view), 0), p.Alpha))

		direct = direct.Add(diffuse).Add(specular)
	}

	return ambient.Add(direct).MultiplyVec(hit.Albedo())
}
