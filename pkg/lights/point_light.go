package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLight emits equally in all directions from a single position
type PointLight struct {
	Position core.Vec3
	Diffuse  core.Vec3
	Specular core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, diffuse, specular core.Vec3) *PointLight {
	return &PointLight{Position: position, Diffuse: diffuse, Specular: specular}
}

// Type returns the light type
func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Sample returns direction and distance from point to the light position
func (pl *PointLight) Sample(point core.Vec3) LightSample {
	toLight := pl.Position.Subtract(point)
	return LightSample{
		Direction: toLight.Normalize(),
		Distance:  toLight.Length(),
		Diffuse:   pl.Diffuse,
		Specular:  pl.Specular,
	}
}

// Ray returns a ray from the light position toward point
func (pl *PointLight) Ray(point core.Vec3) core.Ray {
	return core.NewRay(pl.Position, point.Subtract(pl.Position))
}
