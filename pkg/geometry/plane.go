package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Plane represents an infinite plane through Position. The normal is the
// local frame's Y axis; X and Z span the surface.
type Plane struct {
	Base
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat *material.Material) *Plane {
	p := &Plane{Base: defaultBase(point, 1, mat)}
	p.Frame = FrameFromY(normal)
	return p
}

// Normal returns the plane normal
func (p *Plane) Normal() core.Vec3 {
	return p.Frame.Y
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) []float64 {
	normal := p.Frame.Y
	denominator := ray.Direction.Dot(normal)

	// Parallel or grazing
	if math.Abs(denominator) <= core.Epsilon {
		return nil
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Position.Subtract(ray.Origin).Dot(normal) / denominator
	if t <= core.Epsilon {
		return nil
	}
	return []float64{t}
}

// SurfaceNormal returns the fixed plane normal
func (p *Plane) SurfaceNormal(point core.Vec3) core.Vec3 {
	return p.Frame.Y
}

// SurfaceUV projects the point onto the plane's (X,Z) basis, in units of the
// plane scale
func (p *Plane) SurfaceUV(point core.Vec3) core.Vec2 {
	local := point.Subtract(p.Position)
	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}
	return core.NewVec2(local.Dot(p.Frame.X)/scale, local.Dot(p.Frame.Z)/scale)
}

// LocalFrame returns the plane basis
func (p *Plane) LocalFrame(point core.Vec3) (tangent, bitangent, normal core.Vec3) {
	return p.Frame.X, p.Frame.Z, p.Frame.Y
}

// Closed reports that a plane does not enclose a volume
func (p *Plane) Closed() bool {
	return false
}
