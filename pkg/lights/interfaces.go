package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// Light interface for sources that illuminate a shading point directly
type Light interface {
	Type() LightType

	// Sample returns the light as seen from point: the unit direction FROM the
	// point TO the light, and the distance to it (+Inf for directional lights)
	Sample(point core.Vec3) LightSample

	// Ray returns the notional ray cast by the light toward point
	Ray(point core.Vec3) core.Ray
}

// LightSample describes a light relative to a shading point
type LightSample struct {
	Direction core.Vec3 // Direction from shading point to light
	Distance  float64   // Distance to light
	Diffuse   core.Vec3 // Diffuse intensity
	Specular  core.Vec3 // Specular intensity
}
