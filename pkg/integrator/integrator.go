package integrator

import (
	"log/slog"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along a primary ray
	RayColor(ray core.Ray, s *scene.Scene, ctx *RenderContext) core.Vec3
}

// RenderContext is the per-worker state threaded through a trace. A context
// must not be shared between goroutines.
type RenderContext struct {
	Random *rand.Rand
	Stats  TraceStats
	Logger *slog.Logger
}

// TraceStats counts the work done through one context
type TraceStats struct {
	Rays         int64 // Every call to Trace, primary rays included
	DeepestDepth int   // Largest recursion depth reached
}

// NewRenderContext creates a context with its own generator seeded by seed
func NewRenderContext(seed int64, logger *slog.Logger) *RenderContext {
	return &RenderContext{
		Random: rand.New(rand.NewSource(seed)),
		Logger: core.LoggerOrNop(logger),
	}
}

func (ctx *RenderContext) record(depth int) {
	ctx.Stats.Rays++
	if depth > ctx.Stats.DeepestDepth {
		ctx.Stats.DeepestDepth = depth
	}
}
