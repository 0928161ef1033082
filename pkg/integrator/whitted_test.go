package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func newTestScene(maxDepth int, shapes ...geometry.Shape) *scene.Scene {
	return &scene.Scene{
		Plane:      scene.PlaneConfig{Width: 1, Height: 1, SamplesPerPixel: 1},
		Background: core.NewVec3(0.25, 0.5, 0.75),
		WorldUp:    core.NewVec3(0, 1, 0),
		MaxDepth:   maxDepth,
		Shapes:     shapes,
	}
}

func TestTrace_MissReturnsBackground(t *testing.T) {
	s := newTestScene(5)
	ctx := NewRenderContext(1, nil)

	got := NewWhittedIntegrator().RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), s, ctx)
	if got != s.Background {
		t.Errorf("Expected background %v, got %v", s.Background, got)
	}
	if ctx.Stats.Rays != 1 || ctx.Stats.DeepestDepth != 0 {
		t.Errorf("Expected a single primary ray, got %+v", ctx.Stats)
	}
}

func TestTrace_RecursionIsBounded(t *testing.T) {
	// Two facing mirrors bounce the ray forever
	mirror := material.NewMirror()
	floor := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), mirror)
	ceiling := geometry.NewPlane(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0), mirror)

	for _, maxDepth := range []int{0, 1, 4, 12} {
		s := newTestScene(maxDepth, floor, ceiling)
		ctx := NewRenderContext(1, nil)

		NewWhittedIntegrator().RayColor(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0)), s, ctx)

		if ctx.Stats.DeepestDepth != maxDepth {
			t.Errorf("maxDepth=%d: expected deepest depth %d, got %d", maxDepth, maxDepth, ctx.Stats.DeepestDepth)
		}
		if ctx.Stats.Rays != int64(maxDepth+1) {
			t.Errorf("maxDepth=%d: expected %d traced rays, got %d", maxDepth, maxDepth+1, ctx.Stats.Rays)
		}
	}
}

func TestTrace_AirSphereIsInvisible(t *testing.T) {
	s := newTestScene(5, geometry.NewSphere(core.Vec3{}, 1, material.NewAir()))
	s.Ambient = core.NewVec3(1, 1, 1)
	ctx := NewRenderContext(1, nil)

	got := NewWhittedIntegrator().RayColor(core.NewRay(core.NewVec3(0.3, 0.2, 5), core.NewVec3(0, 0, -1)), s, ctx)
	if got.Subtract(s.Background).Length() > 1e-12 {
		t.Errorf("Expected background %v through air, got %v", s.Background, got)
	}
	if ctx.Stats.Rays != 3 {
		t.Errorf("Expected primary, inner and exit rays, got %d", ctx.Stats.Rays)
	}
}

func TestTrace_DepthZeroIsLocalShadingOnly(t *testing.T) {
	sphere := geometry.NewSphere(core.Vec3{}, 1, material.NewMirror())
	s := newTestScene(0, sphere)
	s.Ambient = core.NewVec3(1, 1, 1)
	s.Lights = []lights.Light{lights.NewPointLight(core.NewVec3(0, 0, 10), core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1))}
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	got := NewWhittedIntegrator().RayColor(ray, s, NewRenderContext(1, nil))

	in := s.Shapes.Cast(ray)
	expected := sphere.Material.Model.Shade(ray, in.Interaction(), s.Environment())
	if got != expected {
		t.Errorf("Expected local shading %v, got %v", expected, got)
	}
}

func TestTrace_GlassReflectsAndRefracts(t *testing.T) {
	s := newTestScene(6, geometry.NewSphere(core.Vec3{}, 1, material.NewGlass()))
	ctx := NewRenderContext(1, nil)

	got := NewWhittedIntegrator().RayColor(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), s, ctx)

	// No lights and no ambient: everything seen is background, attenuated
	// by the energy the Fresnel split loses to the depth cutoff
	for _, c := range []struct{ got, bg float64 }{{got.X, s.Background.X}, {got.Y, s.Background.Y}, {got.Z, s.Background.Z}} {
		if c.got <= 0 || c.got > c.bg+1e-9 {
			t.Errorf("Expected 0 < channel <= %f, got %f", c.bg, c.got)
		}
	}
	if !got.IsFinite() {
		t.Errorf("Expected finite color, got %v", got)
	}
	if ctx.Stats.Rays < 3 {
		t.Errorf("Expected reflected and refracted rays, got %d", ctx.Stats.Rays)
	}
}

func TestTrace_BumpsDoNotBendSecondaryRays(t *testing.T) {
	// A grazing ray off a mirror floor. Steep bumps would tip the shading
	// normal far enough to send the reflection under the floor.
	flat := geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), material.NewMirror())
	bumped := geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), material.NewMirror())
	bumped.Texture = material.NewBumps(5, 3)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -0.2, 0.3).Normalize())

	flatCtx := NewRenderContext(1, nil)
	want := NewWhittedIntegrator().RayColor(ray, newTestScene(5, flat), flatCtx)
	bumpedCtx := NewRenderContext(1, nil)
	got := NewWhittedIntegrator().RayColor(ray, newTestScene(5, bumped), bumpedCtx)

	if got.Subtract(want).Length() > 1e-12 {
		t.Errorf("Expected bumped mirror to reflect like a flat one, got %v vs %v", got, want)
	}
	if bumpedCtx.Stats.Rays != 2 || flatCtx.Stats.Rays != 2 {
		t.Errorf("Expected the reflection to escape upward, got %d and %d rays", bumpedCtx.Stats.Rays, flatCtx.Stats.Rays)
	}
}

func TestTrace_UsesConfiguredFresnel(t *testing.T) {
	s := newTestScene(3, geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), material.NewMirror()))
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -0.5, 0).Normalize())

	calls := 0
	none := &WhittedIntegrator{Fresnel: func(view, normal core.Vec3, n1, n2 float64) float64 {
		calls++
		return 0
	}}
	ctx := NewRenderContext(1, nil)
	if got := none.RayColor(ray, s, ctx); got != (core.Vec3{}) {
		t.Errorf("Expected no reflected light with zero reflectance, got %v", got)
	}
	if calls != 1 || ctx.Stats.Rays != 1 {
		t.Errorf("Expected one Fresnel evaluation and no secondary ray, got %d calls and %d rays", calls, ctx.Stats.Rays)
	}

	exact := NewWhittedIntegrator().RayColor(ray, s, NewRenderContext(1, nil))
	schlick := (&WhittedIntegrator{Fresnel: material.Schlick}).RayColor(ray, s, NewRenderContext(1, nil))
	defaulted := (&WhittedIntegrator{}).RayColor(ray, s, NewRenderContext(1, nil))
	if defaulted != exact {
		t.Errorf("Expected a nil Fresnel to fall back to the exact term, got %v vs %v", defaulted, exact)
	}
	if schlick == exact {
		t.Errorf("Expected Schlick to differ from the exact term off normal incidence, both %v", exact)
	}
}

func TestRefractionIndices(t *testing.T) {
	glass := material.NewMaterial("glass", 1.5, false, true, material.NewPhong(0, 0, 0, 0))
	water := material.NewMaterial("water", 1.33, false, true, material.NewPhong(0, 0, 0, 0))
	inner := geometry.NewSphere(core.Vec3{}, 1, glass)
	outer := geometry.NewSphere(core.Vec3{}, 3, water)

	tests := []struct {
		name   string
		shapes geometry.ShapeList
		origin core.Vec3
		dir    core.Vec3
		n1, n2 float64
	}{
		{"air into glass", geometry.ShapeList{inner}, core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 1, 1.5},
		{"glass into air", geometry.ShapeList{inner}, core.NewVec3(0, 0, 0.5), core.NewVec3(0, 0, -1), 1.5, 1},
		{"water into glass", geometry.ShapeList{inner, outer}, core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1), 1.33, 1.5},
		{"glass into water", geometry.ShapeList{inner, outer}, core.NewVec3(0, 0, 0.5), core.NewVec3(0, 0, -1), 1.5, 1.33},
		{"water into air", geometry.ShapeList{inner, outer}, core.NewVec3(0, 2, 0), core.NewVec3(0, 1, 0), 1.33, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.shapes.Cast(core.NewRay(tt.origin, tt.dir))
			hit := in.Interaction()
			if hit == nil {
				t.Fatal("Expected a hit")
			}

			n1, n2 := refractionIndices(in, hit, in.Ray.Direction)
			if math.Abs(n1-tt.n1) > 1e-12 || math.Abs(n2-tt.n2) > 1e-12 {
				t.Errorf("Expected (%f, %f), got (%f, %f)", tt.n1, tt.n2, n1, n2)
			}
		})
	}
}

func TestNewRenderContext_IsDeterministic(t *testing.T) {
	a := NewRenderContext(42, nil)
	b := NewRenderContext(42, nil)
	for range 10 {
		if a.Random.Float64() != b.Random.Float64() {
			t.Fatal("Expected contexts with equal seeds to produce equal sequences")
		}
	}
}
