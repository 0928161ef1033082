package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestShapeList_CastOrdersHits(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	far := NewSphere(core.NewVec3(0, 0, -10), 1, nil)
	floor := NewPlane(core.NewVec3(0, 0, -20), core.NewVec3(0, 0, 1), nil)
	shapes := ShapeList{floor, far, near}

	in := shapes.Cast(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)))

	expected := []struct {
		t     float64
		shape Shape
	}{
		{4, near}, {6, near}, {14, far}, {16, far}, {25, floor},
	}
	if len(in.Hits) != len(expected) {
		t.Fatalf("Expected %d hits, got %d", len(expected), len(in.Hits))
	}
	for i, e := range expected {
		if math.Abs(in.Hits[i].T-e.t) > 1e-9 || in.Hits[i].Shape != e.shape {
			t.Errorf("Hit %d: expected t=%f on %T, got t=%f on %T", i, e.t, e.shape, in.Hits[i].T, in.Hits[i].Shape)
		}
	}

	first, ok := in.FirstHit()
	if !ok || first.Shape != near {
		t.Errorf("Expected first hit on the near sphere, got %v", first)
	}
}

func TestIntersections_EmptyHasNoFirstHit(t *testing.T) {
	in := ShapeList{}.Cast(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)))
	if _, ok := in.FirstHit(); ok {
		t.Error("Expected no first hit")
	}
	if in.Interaction() != nil {
		t.Error("Expected nil interaction")
	}
	if in.MediumIndex() != 1 {
		t.Errorf("Expected air index, got %f", in.MediumIndex())
	}
}

func TestIntersections_TiesAreBumped(t *testing.T) {
	a := NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	b := NewSphere(core.NewVec3(0, 0, 0), 1, nil)

	in := &Intersections{}
	in.Add(2, a)
	in.Add(2, b)
	in.Add(2, a)

	if len(in.Hits) != 3 {
		t.Fatalf("Expected 3 hits, got %d", len(in.Hits))
	}
	for i := 1; i < len(in.Hits); i++ {
		if in.Hits[i].T <= in.Hits[i-1].T {
			t.Errorf("Expected strictly increasing t, got %v", in.Hits)
		}
	}
	if in.Hits[0].Shape != a || in.Hits[1].Shape != b {
		t.Error("Expected earlier insertions to keep the smaller parameter")
	}
	if math.Abs(in.Hits[2].T-(2+2*core.Epsilon)) > 1e-12 {
		t.Errorf("Expected second bump to land at 2+2eps, got %f", in.Hits[2].T)
	}
}

func TestIntersections_MediumIndex(t *testing.T) {
	water := material.NewMaterial("water", 1.33, false, true, material.NewPhong(0, 0, 0, 0))
	glass := material.NewMaterial("glass", 1.5, false, true, material.NewPhong(0, 0, 0, 0))

	outer := NewSphere(core.NewVec3(0, 0, 0), 3, water)
	inner := NewSphere(core.NewVec3(0, 0, 0), 1, glass)
	ground := NewPlane(core.NewVec3(0, -10, 0), core.NewVec3(0, 1, 0), glass)
	shapes := ShapeList{outer, inner, ground}

	tests := []struct {
		name     string
		origin   core.Vec3
		dir      core.Vec3
		expected float64
	}{
		{"in air, entering water", core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1), 1.0},
		{"in water, entering glass", core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1), 1.33},
		{"in glass, exiting into water", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 1.33},
		{"in water, exiting into air", core.NewVec3(0, 2, 0), core.NewVec3(1, 0, 0), 1.0},
		{"planes never enclose", core.NewVec3(5, 0, 5), core.NewVec3(0, -1, 0), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := shapes.Cast(core.NewRay(tt.origin, tt.dir))
			if got := in.MediumIndex(); got != tt.expected {
				t.Errorf("Expected medium index %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestShapeList_Occluded(t *testing.T) {
	blocker := NewSphere(core.NewVec3(0, 5, 0), 1, nil)
	shapes := ShapeList{blocker}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	if !shapes.Occluded(ray, 10) {
		t.Error("Expected blocker in front of the light to occlude")
	}
	if shapes.Occluded(ray, 3) {
		t.Error("Expected light closer than the blocker to be visible")
	}
	if !shapes.Occluded(ray, math.Inf(1)) {
		t.Error("Expected directional light to be occluded")
	}
}
