package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func vecNear(a, b core.Vec3) bool {
	return a.Subtract(b).Length() < 1e-9
}

func TestBase_TransformMovesPositionAndRotatesFrame(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 0, 0), 1, nil)

	// Rotate about Y first, then translate
	m := mgl64.Translate3D(0, 2, 0).Mul4(mgl64.HomogRotate3DY(math.Pi / 2))
	sphere.Transform(m)

	if !vecNear(sphere.Center(), core.NewVec3(0, 2, -1)) {
		t.Errorf("Expected center (0,2,-1), got %v", sphere.Center())
	}
	if !vecNear(sphere.Frame.X, core.NewVec3(0, 0, -1)) {
		t.Errorf("Expected rotated X axis (0,0,-1), got %v", sphere.Frame.X)
	}
	if !vecNear(sphere.Frame.Y, core.NewVec3(0, 1, 0)) {
		t.Errorf("Expected Y axis untouched by translation, got %v", sphere.Frame.Y)
	}
}

func TestPlane_TransformRotatesNormal(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), nil)
	plane.Transform(mgl64.Translate3D(0, 0, -3).Mul4(mgl64.HomogRotate3DX(math.Pi / 2)))

	if !vecNear(plane.Normal(), core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected normal (0,0,1), got %v", plane.Normal())
	}

	roots := plane.Intersect(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)))
	if len(roots) != 1 || math.Abs(roots[0]-8) > 1e-9 {
		t.Errorf("Expected single root 8 after transform, got %v", roots)
	}
}

func TestInteract(t *testing.T) {
	glass := material.NewGlass()
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, glass)
	sphere.Color = core.NewVec3(0.2, 0.4, 0.6)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	si := Interact(sphere, ray, 4)

	if !vecNear(si.Point, core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected point (0,0,1), got %v", si.Point)
	}
	if !vecNear(si.Normal, core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected normal (0,0,1), got %v", si.Normal)
	}
	if si.Material != glass || si.Color != sphere.Color {
		t.Error("Expected material and color to be carried into the interaction")
	}
	if !si.Outside(ray.Direction) {
		t.Error("Expected the ray to arrive from outside")
	}
}
