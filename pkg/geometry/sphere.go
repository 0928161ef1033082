package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape. Its radius is the shape scale.
type Sphere struct {
	Base
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{Base: defaultBase(center, radius, mat)}
}

// Center returns the sphere center
func (s *Sphere) Center() core.Vec3 {
	return s.Position
}

// Radius returns the sphere radius
func (s *Sphere) Radius() float64 {
	return s.Scale
}

// Intersect solves |O + tD - C|^2 = R^2 for t
func (s *Sphere) Intersect(ray core.Ray) []float64 {
	oc := ray.Origin.Subtract(s.Position)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return nil
	}
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Scale*s.Scale

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	// Tangent ray
	if discriminant == 0 {
		t := -b / (2 * a)
		if t > core.Epsilon {
			return []float64{t}
		}
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	var roots []float64
	if t1 > core.Epsilon {
		roots = append(roots, t1)
	}
	if t2 > core.Epsilon {
		roots = append(roots, t2)
	}
	return roots
}

// SurfaceNormal returns the outward normal at point
func (s *Sphere) SurfaceNormal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Position).Normalize()
}

// SurfaceUV maps the point to longitude/latitude in the sphere's local frame.
// v runs from 0 at the -Y pole to 1 at the +Y pole.
func (s *Sphere) SurfaceUV(point core.Vec3) core.Vec2 {
	n := s.SurfaceNormal(point)
	y := math.Max(-1, math.Min(1, n.Dot(s.Frame.Y)))

	u := (math.Atan2(n.Dot(s.Frame.Z), n.Dot(s.Frame.X)) + math.Pi) / (2 * math.Pi)
	v := math.Acos(-y) / math.Pi
	return core.NewVec2(u, v)
}

// LocalFrame returns a tangent along the latitude circle, the bitangent
// toward the pole, and the normal
func (s *Sphere) LocalFrame(point core.Vec3) (tangent, bitangent, normal core.Vec3) {
	normal = s.SurfaceNormal(point)
	tangent = normal.Cross(s.Frame.Y)
	if tangent.LengthSquared() < 1e-12 {
		// At a pole the latitude circle collapses
		tangent = normal.Cross(s.Frame.X)
	}
	tangent = tangent.Normalize()
	bitangent = tangent.Cross(normal)
	return tangent, bitangent, normal
}

// Closed reports that a sphere encloses a volume
func (s *Sphere) Closed() bool {
	return true
}
