package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Shape is the capability interface every renderable primitive implements
type Shape interface {
	// Intersect returns the ray parameters t > core.Epsilon where the ray
	// crosses the surface, sorted ascending, or nil when there are none
	Intersect(ray core.Ray) []float64

	// SurfaceNormal returns the outward unit normal at a point on the surface
	SurfaceNormal(point core.Vec3) core.Vec3

	// SurfaceUV returns the texture parameterization of a point on the surface
	SurfaceUV(point core.Vec3) core.Vec2

	// LocalFrame returns the tangent, bitangent and normal at a surface point
	LocalFrame(point core.Vec3) (tangent, bitangent, normal core.Vec3)

	// Closed reports whether the surface bounds a volume a ray can be inside of
	Closed() bool

	// Properties exposes the placement and appearance shared by all shapes
	Properties() *Base

	// Transform bakes an affine transform into the shape
	Transform(m mgl64.Mat4)
}
