package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// pixelSink receives finished pixels
type pixelSink interface {
	PutPixel(x, y int, color core.Vec3)
}

// RowRenderer renders single image rows with an integrator. It only reads the
// scene, so several rows may render at once as long as each has its own
// RenderContext.
type RowRenderer struct {
	scene      *scene.Scene
	camera     *Camera
	plane      ProjectionPlane
	integrator integrator.Integrator
}

// NewRowRenderer creates a new row renderer with the given scene and integrator
func NewRowRenderer(s *scene.Scene, integratorInst integrator.Integrator) *RowRenderer {
	return &RowRenderer{
		scene:      s,
		camera:     NewCamera(s.Camera, s.WorldUp),
		plane:      NewProjectionPlane(s.Plane),
		integrator: integratorInst,
	}
}

// RenderRow traces every pixel of row y and writes the averaged colors to out.
// It returns the number of primary rays cast.
func (rr *RowRenderer) RenderRow(y int, out pixelSink, ctx *integrator.RenderContext) int64 {
	var primary int64
	for x := 0; x < rr.plane.Width; x++ {
		rays := rr.camera.CastRay(rr.plane, x, y, rr.plane.SamplesPerPixel, ctx.Random)

		var ps PixelStats
		for _, ray := range rays {
			ps.AddSample(rr.integrator.RayColor(ray, rr.scene, ctx))
		}
		primary += int64(ps.SampleCount)
		out.PutPixel(x, y, ps.GetColor())
	}
	return primary
}
