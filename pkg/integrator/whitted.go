package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// FresnelFunc returns the reflected fraction at a boundary from index n1
// into n2, with view on the side of normal
type FresnelFunc func(view, normal core.Vec3, n1, n2 float64) float64

// WhittedIntegrator implements recursive Whitted ray tracing: local shading
// at every hit plus Fresnel weighted mirror reflection and refraction
type WhittedIntegrator struct {
	Fresnel FresnelFunc // nil means material.Fresnel
}

// NewWhittedIntegrator creates a new Whitted integrator using the exact
// Fresnel equations
func NewWhittedIntegrator() *WhittedIntegrator {
	return &WhittedIntegrator{Fresnel: material.Fresnel}
}

// RayColor traces a primary ray
func (w *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene, ctx *RenderContext) core.Vec3 {
	return w.Trace(ray, s, ctx, 0)
}

// Trace returns the color carried back along ray at the given recursion
// depth. It recurses at most s.MaxDepth times below the primary ray.
func (w *WhittedIntegrator) Trace(ray core.Ray, s *scene.Scene, ctx *RenderContext, depth int) core.Vec3 {
	ctx.record(depth)

	in := s.Shapes.Cast(ray)
	hit := in.Interaction()
	if hit == nil {
		return s.Background
	}

	mat := hit.Material
	if mat == nil {
		mat = material.NewNeutral()
	}
	color := mat.Model.Shade(ray, hit, s.Environment())

	if depth >= s.MaxDepth || (!mat.Glossy && !mat.Transparent) {
		return color
	}

	// Bump textures only perturb local shading. Secondary rays use the
	// geometric normal so they never leave on the wrong side of the surface.
	view := ray.Direction.Negate()
	normal := hit.Normal
	if !hit.Outside(ray.Direction) {
		normal = normal.Negate()
	}
	n1, n2 := refractionIndices(in, hit, ray.Direction)
	reflectance := w.fresnel()(view, normal, n1, n2)

	if mat.Glossy && reflectance > 0 {
		reflected := core.NewOffsetRay(hit.Point, material.Reflect(view, normal))
		color = color.Add(w.Trace(reflected, s, ctx, depth+1).Multiply(reflectance))
	}

	if mat.Transparent && reflectance < 1 {
		if direction, ok := material.Refract(view, normal, n1, n2); ok {
			refracted := core.NewOffsetRay(hit.Point, direction)
			color = color.Add(w.Trace(refracted, s, ctx, depth+1).Multiply(1 - reflectance))
		}
	}

	return color
}

func (w *WhittedIntegrator) fresnel() FresnelFunc {
	if w.Fresnel == nil {
		return material.Fresnel
	}
	return w.Fresnel
}

// refractionIndices returns the index of the medium the ray travels through
// and the index of the medium beyond the hit surface
func refractionIndices(in *geometry.Intersections, hit *material.SurfaceInteraction, direction core.Vec3) (n1, n2 float64) {
	surrounding := in.MediumIndex()
	inner := 1.0
	if hit.Material != nil {
		inner = hit.Material.RefractionIndex
	}
	if hit.Outside(direction) {
		return surrounding, inner
	}
	return inner, surrounding
}
