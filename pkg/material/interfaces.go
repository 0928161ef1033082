package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// ReflectanceModel computes the local (direct + ambient) radiance leaving a
// surface toward the ray origin
type ReflectanceModel interface {
	// Shade returns the reflected color. A nil hit means nothing was struck
	// and yields the ambient color.
	Shade(ray core.Ray, hit *SurfaceInteraction, env Environment) core.Vec3
}

// Texture varies albedo and/or the shading normal over a surface
type Texture interface {
	// Albedo returns the surface color at uv, given the shape's base color
	Albedo(uv core.Vec2, base core.Vec3) core.Vec3

	// Perturb returns the shading normal at uv. tangent, bitangent and normal
	// form the local frame at the hit point.
	Perturb(normal, tangent, bitangent core.Vec3, uv core.Vec2) core.Vec3
}

// Occluder answers shadow queries against the scene geometry
type Occluder interface {
	// Occluded reports whether ray hits anything with 0 < t < maxDistance
	Occluded(ray core.Ray, maxDistance float64) bool
}

// Environment is the read-only scene state a reflectance model sees
type Environment struct {
	Ambient  core.Vec3
	Lights   []lights.Light
	Shadows  bool
	Occluder Occluder
}

// Lit reports whether the light sampled at point reaches it. Without shadows
// every light is visible.
func (env Environment) Lit(point core.Vec3, sample lights.LightSample) bool {
	if !env.Shadows || env.Occluder == nil {
		return true
	}
	shadowRay := core.NewOffsetRay(point, sample.Direction)
	return !env.Occluder.Occluded(shadowRay, sample.Distance-core.SurfaceBias)
}

// SurfaceInteraction contains information about a ray-object intersection
type SurfaceInteraction struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Outward geometric normal
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Surface parameterization
	Tangent   core.Vec3 // Local frame at the hit point
	Bitangent core.Vec3
	Color     core.Vec3 // Base color of the shape
	Texture   Texture   // Optional
	Material  *Material
}

// Outside reports whether the ray arrives from the side the normal points to
func (si *SurfaceInteraction) Outside(direction core.Vec3) bool {
	return core.IsOutside(si.Normal, direction)
}

// ShadingNormal returns the (possibly texture-perturbed) normal, flipped to
// face the incoming ray
func (si *SurfaceInteraction) ShadingNormal(direction core.Vec3) core.Vec3 {
	normal := si.Normal
	if si.Texture != nil {
		normal = si.Texture.Perturb(normal, si.Tangent, si.Bitangent, si.UV)
	}
	if !si.Outside(direction) {
		normal = normal.Negate()
	}
	return normal
}

// Albedo returns the texture sample if there is one, else the base color
func (si *SurfaceInteraction) Albedo() core.Vec3 {
	if si.Texture != nil {
		return si.Texture.Albedo(si.UV, si.Color)
	}
	return si.Color
}
