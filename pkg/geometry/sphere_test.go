package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestSphere_Intersect(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expected  []float64
	}{
		{"two roots", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), []float64{4, 6}},
		{"facing away", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1), nil},
		{"miss", core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1), nil},
		{"tangent", core.NewVec3(1, 0, 5), core.NewVec3(0, 0, -1), []float64{5}},
		{"origin inside", core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), []float64{1}},
		{"origin on surface", core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), []float64{2}},
		{"degenerate direction", core.NewVec3(0, 0, 5), core.Vec3{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := sphere.Intersect(core.NewRay(tt.origin, tt.direction))
			if len(roots) != len(tt.expected) {
				t.Fatalf("Expected roots %v, got %v", tt.expected, roots)
			}
			for i := range roots {
				if math.Abs(roots[i]-tt.expected[i]) > 1e-9 {
					t.Errorf("Root %d: expected %f, got %f", i, tt.expected[i], roots[i])
				}
			}
		})
	}
}

func TestSphere_IntersectScaledDirection(t *testing.T) {
	// Roots are in units of the direction length when it is not normalized
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.Ray{Origin: core.NewVec3(0, 0, 5), Direction: core.NewVec3(0, 0, -2)}

	roots := sphere.Intersect(ray)
	if len(roots) != 2 || math.Abs(roots[0]-2) > 1e-9 || math.Abs(roots[1]-3) > 1e-9 {
		t.Errorf("Expected roots [2 3], got %v", roots)
	}
}

func TestSphere_SurfaceNormal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2.0, nil)
	n := sphere.SurfaceNormal(core.NewVec3(1, 4, 3))
	if n != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected normal (0,1,0), got %v", n)
	}
}

func TestSphere_SurfaceUV(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name  string
		point core.Vec3
		u, v  float64
	}{
		{"south pole", core.NewVec3(0, -1, 0), -1, 0},
		{"north pole", core.NewVec3(0, 1, 0), -1, 1},
		{"equator -x", core.NewVec3(-1, 0, 0), 0.0, 0.5},
		{"equator +x", core.NewVec3(1, 0, 0), 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv := sphere.SurfaceUV(tt.point)
			if uv.X < 0 || uv.X > 1 || uv.Y < 0 || uv.Y > 1 {
				t.Fatalf("Expected uv in [0,1]^2, got %v", uv)
			}
			if math.Abs(uv.Y-tt.v) > 1e-9 {
				t.Errorf("Expected v=%f, got %f", tt.v, uv.Y)
			}
			if tt.u >= 0 && math.Abs(uv.X-tt.u) > 1e-9 && math.Abs(uv.X-tt.u-1) > 1e-9 {
				t.Errorf("Expected u=%f, got %f", tt.u, uv.X)
			}
		})
	}
}

func TestSphere_LocalFrameIsOrthonormal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	points := []core.Vec3{
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, 1, 0), // pole
		core.NewVec3(1, 1, 1).Normalize(),
	}

	for _, p := range points {
		tangent, bitangent, normal := sphere.LocalFrame(p)
		for _, v := range []core.Vec3{tangent, bitangent, normal} {
			if math.Abs(v.Length()-1) > 1e-9 {
				t.Errorf("Point %v: expected unit axis, got %v", p, v)
			}
		}
		if math.Abs(tangent.Dot(normal)) > 1e-9 || math.Abs(bitangent.Dot(normal)) > 1e-9 || math.Abs(tangent.Dot(bitangent)) > 1e-9 {
			t.Errorf("Point %v: frame not orthogonal: %v %v %v", p, tangent, bitangent, normal)
		}
	}
}
