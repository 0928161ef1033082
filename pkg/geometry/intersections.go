package geometry

import (
	"slices"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Hit is a single crossing of a ray with a shape
type Hit struct {
	T     float64
	Shape Shape
}

// Intersections is a ray together with every crossing found along it,
// ordered by t. No two hits share the same t.
type Intersections struct {
	Ray  core.Ray
	Hits []Hit
}

// Add records a crossing at t. An exact tie with an existing hit is bumped
// forward by core.Epsilon until the parameter is unique.
func (in *Intersections) Add(t float64, shape Shape) {
	for {
		i, found := slices.BinarySearchFunc(in.Hits, t, func(h Hit, target float64) int {
			switch {
			case h.T < target:
				return -1
			case h.T > target:
				return 1
			}
			return 0
		})
		if !found {
			in.Hits = slices.Insert(in.Hits, i, Hit{T: t, Shape: shape})
			return
		}
		t += core.Epsilon
	}
}

// FirstHit returns the hit with the smallest t
func (in *Intersections) FirstHit() (Hit, bool) {
	if len(in.Hits) == 0 {
		return Hit{}, false
	}
	return in.Hits[0], true
}

// Count returns how many times the ray crosses shape
func (in *Intersections) Count(shape Shape) int {
	n := 0
	for _, h := range in.Hits {
		if h.Shape == shape {
			n++
		}
	}
	return n
}

// Contains reports whether the ray origin lies inside the closed shape, by
// the parity of its crossings ahead of the origin
func (in *Intersections) Contains(shape Shape) bool {
	return shape.Closed() && in.Count(shape)%2 == 1
}

// MediumIndex returns the refraction index of the medium the ray travels
// through before reaching its first hit, ignoring the first-hit shape itself.
// The innermost enclosing shape wins; with none the medium is air (1.0).
func (in *Intersections) MediumIndex() float64 {
	first, ok := in.FirstHit()
	if !ok {
		return 1.0
	}

	for _, h := range in.Hits {
		if h.Shape == first.Shape || !in.Contains(h.Shape) {
			continue
		}
		if mat := h.Shape.Properties().Material; mat != nil {
			return mat.RefractionIndex
		}
	}
	return 1.0
}

// Interaction returns the shading record of the first hit, or nil
func (in *Intersections) Interaction() *material.SurfaceInteraction {
	first, ok := in.FirstHit()
	if !ok {
		return nil
	}
	return Interact(first.Shape, in.Ray, first.T)
}

// ShapeList is a flat, brute-force collection of world-space shapes
type ShapeList []Shape

// Cast intersects ray with every shape
func (sl ShapeList) Cast(ray core.Ray) *Intersections {
	in := &Intersections{Ray: ray}
	if ray.IsDegenerate() {
		return in
	}
	for _, shape := range sl {
		for _, t := range shape.Intersect(ray) {
			in.Add(t, shape)
		}
	}
	return in
}

// Occluded reports whether any shape is crossed before maxDistance
func (sl ShapeList) Occluded(ray core.Ray, maxDistance float64) bool {
	if ray.IsDegenerate() {
		return false
	}
	for _, shape := range sl {
		roots := shape.Intersect(ray)
		if len(roots) > 0 && roots[0] < maxDistance {
			return true
		}
	}
	return false
}
