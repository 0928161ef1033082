package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DirectionalLight is infinitely far away; every point receives it from the same direction
type DirectionalLight struct {
	Direction core.Vec3 // Direction the light travels (normalized)
	Diffuse   core.Vec3
	Specular  core.Vec3
}

// NewDirectionalLight creates a new directional light travelling along direction
func NewDirectionalLight(direction, diffuse, specular core.Vec3) *DirectionalLight {
	return &DirectionalLight{
		Direction: direction.Normalize(),
		Diffuse:   diffuse,
		Specular:  specular,
	}
}

// Type returns the light type
func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Sample returns the reversed light direction and an infinite distance
func (dl *DirectionalLight) Sample(point core.Vec3) LightSample {
	return LightSample{
		Direction: dl.Direction.Negate(),
		Distance:  math.Inf(1),
		Diffuse:   dl.Diffuse,
		Specular:  dl.Specular,
	}
}

// Ray returns a ray that arrives at point travelling along the light direction
func (dl *DirectionalLight) Ray(point core.Vec3) core.Ray {
	return core.NewRay(point.Subtract(dl.Direction), dl.Direction)
}
