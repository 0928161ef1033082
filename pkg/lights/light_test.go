package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPointLight_Sample(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 4, 0), core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.5, 0.5))

	sample := light.Sample(core.NewVec3(0, 1, 0))

	if sample.Direction != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected direction (0,1,0), got %v", sample.Direction)
	}
	if math.Abs(sample.Distance-3.0) > 1e-12 {
		t.Errorf("Expected distance 3, got %f", sample.Distance)
	}
	if sample.Specular != core.NewVec3(0.5, 0.5, 0.5) {
		t.Errorf("Expected specular intensity to be carried, got %v", sample.Specular)
	}
}

func TestPointLight_RayPointsTowardQuery(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 4, 0), core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1))
	ray := light.Ray(core.NewVec3(0, 0, 0))

	if ray.Origin != light.Position {
		t.Errorf("Expected origin at light, got %v", ray.Origin)
	}
	if ray.Direction != core.NewVec3(0, -1, 0) {
		t.Errorf("Expected direction (0,-1,0), got %v", ray.Direction)
	}
}

func TestDirectionalLight_Sample(t *testing.T) {
	light := NewDirectionalLight(core.NewVec3(0, -2, 0), core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1))

	for _, point := range []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(100, -50, 3)} {
		sample := light.Sample(point)
		if sample.Direction != core.NewVec3(0, 1, 0) {
			t.Errorf("Expected direction (0,1,0) at %v, got %v", point, sample.Direction)
		}
		if !math.IsInf(sample.Distance, 1) {
			t.Errorf("Expected infinite distance, got %f", sample.Distance)
		}
	}
	if light.Type() != LightTypeDirectional {
		t.Errorf("Expected directional type, got %s", light.Type())
	}
}
